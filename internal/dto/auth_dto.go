package dto

import "github.com/josebazania/restaurantepos/internal/model"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1,max=50"`
	Password string `json:"password" validate:"required,max=72"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UserResponse struct {
	ID           string              `json:"id"`
	Username     string              `json:"username"`
	Name         string              `json:"name"`
	Role         model.Role          `json:"role"`
	Avatar       string              `json:"avatar"`
	Destinations []model.Destination `json:"destinations"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"` // seconds
	User        UserResponse `json:"user"`
}

func NewUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		Name:         u.Name,
		Role:         u.Role,
		Avatar:       u.Avatar,
		Destinations: u.Role.Reachable(),
	}
}
