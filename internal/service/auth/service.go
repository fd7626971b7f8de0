package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/email"
	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/model"
	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/repository"
	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/pkg/auth"
	apperrors "github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/pkg/errors"
)

const (
	bcryptCost       = 12
	resetTokenExpiry = 1 * time.Hour
)

type Service struct {
	userRepo repository.UserRepository
	jwtSvc   auth.JWTService
	emailSvc email.Service
}

func NewService(userRepo repository.UserRepository, jwtSvc auth.JWTService, emailSvc email.Service) *Service {
	return &Service{
		userRepo: userRepo,
		jwtSvc:   jwtSvc,
		emailSvc: emailSvc,
	}
}

// Login verifies the credentials and issues an access/refresh token pair.
// The refresh token is persisted on the user record; only one is live at a
// time.
func (s *Service) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.Unauthorized("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.Unauthorized("invalid credentials")
	}

	accessToken, err := s.jwtSvc.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := s.jwtSvc.GenerateRefreshToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	now := time.Now()
	user.RefreshToken = &refreshToken
	user.LastLoginAt = &now
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return &model.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// ValidateAccessToken decodes a bearer token into its identity claims.
func (s *Service) ValidateAccessToken(ctx context.Context, token string) (*model.TokenClaims, error) {
	claims, err := s.jwtSvc.ValidateAccessToken(token)
	if err != nil {
		return nil, apperrors.Unauthorized("invalid token")
	}
	return claims, nil
}

// RefreshAccessToken mints a new access token when the refresh token is valid
// and still matches the stored value.
func (s *Service) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwtSvc.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", apperrors.Forbidden("invalid refresh token")
	}

	user, err := s.userRepo.Get(ctx, claims.UserID)
	if err != nil || user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		return "", apperrors.Forbidden("invalid refresh token")
	}

	accessToken, err := s.jwtSvc.GenerateAccessToken(user)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return accessToken, nil
}

// Logout invalidates the stored refresh token; a subsequent refresh call with
// the same token is rejected.
func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.jwtSvc.ValidateRefreshToken(refreshToken)
	if err != nil {
		return apperrors.Forbidden("invalid refresh token")
	}

	user, err := s.userRepo.Get(ctx, claims.UserID)
	if err != nil || user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		return apperrors.Forbidden("invalid refresh token")
	}

	user.RefreshToken = nil
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to invalidate refresh token: %w", err)
	}
	return nil
}

// ForgetPassword stores a reset token with a one hour expiry and emails it.
func (s *Service) ForgetPassword(ctx context.Context, emailID string) error {
	user, err := s.userRepo.GetByEmail(ctx, emailID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("user")
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	token := uuid.New().String()
	expiry := time.Now().Add(resetTokenExpiry)
	user.ResetToken = &token
	user.ResetTokenExpiry = &expiry
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	if err := s.emailSvc.SendPasswordReset(ctx, user.Email, token); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}
	return nil
}

// ResetPassword consumes a valid reset token and replaces the password hash.
func (s *Service) ResetPassword(ctx context.Context, req *model.ResetPasswordRequest) error {
	user, err := s.userRepo.GetByResetToken(ctx, req.ResetToken)
	if err != nil {
		return apperrors.BadRequest("invalid or expired reset token")
	}
	if user.ResetTokenExpiry == nil || user.ResetTokenExpiry.Before(time.Now()) {
		return apperrors.BadRequest("invalid or expired reset token")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = string(hash)
	user.ResetToken = nil
	user.ResetTokenExpiry = nil
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	log.Info().Str("user_id", user.ID.String()).Msg("password reset")
	return nil
}

// InviteUser sends an invitation email. No invite record is persisted.
func (s *Service) InviteUser(ctx context.Context, req *model.InviteUserRequest) error {
	if !model.ValidRole(req.Role) {
		return apperrors.BadRequest("invalid role")
	}

	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return apperrors.Conflict("user with this email already exists")
	}

	if err := s.emailSvc.SendInvite(ctx, req.Email, req.FullName); err != nil {
		return fmt.Errorf("failed to send invite email: %w", err)
	}
	return nil
}
