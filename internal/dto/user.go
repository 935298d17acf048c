package dto

import (
	"time"

	"github.com/parishlife/parish_community_app/internal/core/domain"
)

// UserResponse is the public shape of a user.
type UserResponse struct {
	UserID     string     `json:"id"`
	Email      string     `json:"email"`
	Username   string     `json:"username"`
	Name       string     `json:"name"`
	Phone      string     `json:"phone,omitempty"`
	Role       string     `json:"role"`
	IsVerified bool       `json:"isVerified"`
	LastLogin  *time.Time `json:"lastLogin,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:     u.UserID,
		Email:      u.Email,
		Username:   u.Username,
		Name:       u.Name,
		Phone:      u.Phone,
		Role:       string(u.Role),
		IsVerified: u.IsVerified,
		LastLogin:  u.LastLogin,
		CreatedAt:  u.CreatedAt,
	}
}

// UserSummary is the compact user shape embedded in other responses.
type UserSummary struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// ToUserSummary converts a domain.User to its compact embedded shape.
func ToUserSummary(u *domain.User) UserSummary {
	return UserSummary{UserID: u.UserID, Username: u.Username, Name: u.Name}
}

// UpdateProfileRequest updates the caller's own profile. Pointers
// distinguish omitted fields from zero values.
type UpdateProfileRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=255"`
	Phone *string `json:"phone" binding:"omitempty,max=50"`
}
