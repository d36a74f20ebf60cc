package dto

import "servis_backend/internal/models"

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Success     bool   `json:"success"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"` // seconds
}

type CekTokenResponse struct {
	Valid bool         `json:"valid"`
	User  *models.User `json:"user"`
}
