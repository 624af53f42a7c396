// Package dto holds the shapes that cross the HTTP boundary: per-resource
// request and response bodies, and the v2 envelopes that wrap them.
package dto

import (
	"time"

	"github.com/google/uuid"
)

// APIRequest is the v2 request envelope without a payload. RequestID and
// Timestamp belong to the server: Stamp overwrites whatever the client sent.
type APIRequest struct {
	RequestID string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"userId" validate:"required"`
	AuthToken string    `json:"authToken" validate:"required"`
}

// APIRequestWith is the v2 request envelope carrying a typed payload.
type APIRequestWith[T any] struct {
	APIRequest
	Data T `json:"data"`
}

// APIResponse is the v2 response envelope without a payload.
type APIResponse struct {
	Success    bool      `json:"success"`
	RequestID  string    `json:"requestId"`
	Timestamp  time.Time `json:"timestamp"`
	Message    string    `json:"message"`
	StatusCode int       `json:"statusCode"`
	Errors     []string  `json:"errors"`
}

// APIResponseWith is the v2 response envelope carrying a typed payload.
type APIResponseWith[T any] struct {
	APIResponse
	Data T `json:"data"`
}

// Stamp assigns a fresh request id and the current UTC time.
func (r *APIRequest) Stamp() {
	r.RequestID = uuid.NewString()
	r.Timestamp = time.Now().UTC()
}

// ToResponse builds a payload-less response echoing the request id.
func (r APIRequest) ToResponse(success bool, message string, statusCode int) APIResponse {
	return APIResponse{
		Success:    success,
		RequestID:  r.RequestID,
		Timestamp:  time.Now().UTC(),
		Message:    message,
		StatusCode: statusCode,
		Errors:     []string{},
	}
}

// ToResponseWith is ToResponse with a payload.
func ToResponseWith[T any](r APIRequest, success bool, message string, statusCode int, data T) APIResponseWith[T] {
	return APIResponseWith[T]{
		APIResponse: r.ToResponse(success, message, statusCode),
		Data:        data,
	}
}
