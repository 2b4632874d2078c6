package dto

import "time"

// Request DTOs

type ExchangeTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// Response DTOs

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

type TokenResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
