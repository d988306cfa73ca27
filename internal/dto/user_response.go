package dto

import "github.com/SscSPs/finance_tracker/internal/core/domain"

type UserResponse struct {
	UserID       string              `json:"userID"`
	Username     string              `json:"username"`
	Name         string              `json:"name"`
	Email        string              `json:"email,omitempty"`
	AuthProvider domain.AuthProvider `json:"authProvider"`
}

func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:       user.UserID,
		Username:     user.Username,
		Name:         user.Name,
		Email:        user.Email,
		AuthProvider: user.AuthProvider,
	}
}
