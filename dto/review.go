package dto

import (
	"time"

	"cinevault-backend/models"
)

type ReviewRequest struct {
	MovieID int    `json:"movieId" validate:"required"`
	UserID  int    `json:"userId" validate:"required"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type ReviewResponse struct {
	ID         int       `json:"id"`
	MovieID    int       `json:"movieId"`
	MovieTitle string    `json:"movieTitle"`
	UserID     int       `json:"userId"`
	Username   string    `json:"username"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (r ReviewRequest) Apply(review *models.Review) {
	review.MovieID = r.MovieID
	review.UserID = r.UserID
	review.Rating = r.Rating
	review.Comment = r.Comment
}

// NewReviewResponse reads the title and username from the preloaded Movie
// and User associations when present.
func NewReviewResponse(review *models.Review) ReviewResponse {
	resp := ReviewResponse{
		ID:        review.ID,
		MovieID:   review.MovieID,
		UserID:    review.UserID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
	if review.Movie != nil {
		resp.MovieTitle = review.Movie.Title
	}
	if review.User != nil {
		resp.Username = review.User.Username
	}
	return resp
}
