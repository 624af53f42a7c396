package dto

import "cinevault-backend/models"

type UserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required,max=72"`
}

type UserResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Apply overwrites username, email and password. The password is stored as
// a bcrypt hash.
func (r UserRequest) Apply(user *models.User) error {
	user.Username = r.Username
	user.Email = r.Email
	return user.SetPassword(r.Password)
}

func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}
