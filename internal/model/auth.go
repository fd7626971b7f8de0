package model

import "github.com/google/uuid"

type LoginRequest struct {
	Email    string `json:"emailId" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         *User  `json:"user"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type ForgetPasswordRequest struct {
	Email string `json:"emailId" binding:"required,email"`
}

type ResetPasswordRequest struct {
	ResetToken  string `json:"resetToken" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// TokenClaims is the decoded identity carried by an access token.
type TokenClaims struct {
	UserID uuid.UUID
	Role   string
}
