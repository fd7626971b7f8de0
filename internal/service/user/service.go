package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/model"
	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/repository"
	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/pkg/cache"
	apperrors "github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/pkg/errors"
)

const (
	bcryptCost   = 12
	userCacheKey = "all_users"
)

type Service struct {
	repo     repository.UserRepository
	cache    cache.Store
	cacheTTL time.Duration
}

// NewService builds the user service. cache may be nil, in which case the
// list endpoint always hits the database.
func NewService(repo repository.UserRepository, store cache.Store, cacheTTL time.Duration) *Service {
	return &Service{
		repo:     repo,
		cache:    store,
		cacheTTL: cacheTTL,
	}
}

// CreateUser hashes the password and persists the user. photoPath is the
// stored upload path, empty when no photo was provided.
func (s *Service) CreateUser(ctx context.Context, req *model.CreateUserRequest, photoPath string) (*model.User, error) {
	if !model.ValidRole(req.Role) {
		return nil, apperrors.BadRequest("invalid role")
	}

	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.Conflict("email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Phone:        req.Phone,
		Address:      req.Address,
		Role:         req.Role,
	}
	if photoPath != "" {
		user.Photo = &photoPath
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.Conflict("email already exists")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.invalidateCache(ctx)
	return user, nil
}

func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("user")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// UpdateUser merges the provided fields. Users may update themselves; admins
// may update anyone.
func (s *Service) UpdateUser(ctx context.Context, actor *model.TokenClaims, id uuid.UUID, req *model.UpdateUserRequest, photoPath string) (*model.User, error) {
	if actor.Role != model.RoleAdmin && actor.UserID != id {
		return nil, apperrors.Forbidden("you are not authorized to update this user")
	}

	user, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("user")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.Role != nil {
		if !model.ValidRole(*req.Role) {
			return nil, apperrors.BadRequest("invalid role")
		}
		user.Role = *req.Role
	}
	if req.Email != nil && *req.Email != user.Email {
		if existing, err := s.repo.GetByEmail(ctx, *req.Email); err == nil && existing.ID != id {
			return nil, apperrors.Conflict("email is already taken by another user")
		}
		user.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}
	if photoPath != "" {
		user.Photo = &photoPath
	}

	if err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.Conflict("email is already taken by another user")
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.invalidateCache(ctx)
	return user, nil
}

// DeleteUser removes a user. Users may delete themselves; admins may delete
// anyone.
func (s *Service) DeleteUser(ctx context.Context, actor *model.TokenClaims, id uuid.UUID) error {
	if actor.Role != model.RoleAdmin && actor.UserID != id {
		return apperrors.Forbidden("you are not authorized to delete this user")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("user")
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.invalidateCache(ctx)
	return nil
}

// ListUsers is admin only. Reads through the cache when one is configured;
// every write path invalidates the cached list.
func (s *Service) ListUsers(ctx context.Context, actor *model.TokenClaims) ([]*model.User, error) {
	if actor.Role != model.RoleAdmin {
		return nil, apperrors.Forbidden("you are not authorized to fetch users")
	}

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, userCacheKey); err == nil {
			var users []*model.User
			if err := json.Unmarshal([]byte(cached), &users); err == nil {
				return users, nil
			}
		} else if !errors.Is(err, cache.ErrMiss) {
			log.Warn().Err(err).Msg("user list cache read failed")
		}
	}

	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	if s.cache != nil {
		if data, err := json.Marshal(users); err == nil {
			if err := s.cache.Set(ctx, userCacheKey, string(data), s.cacheTTL); err != nil {
				log.Warn().Err(err).Msg("user list cache write failed")
			}
		}
	}
	return users, nil
}

// ListAllUsers bypasses the role check for the export endpoint.
func (s *Service) ListAllUsers(ctx context.Context) ([]*model.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *Service) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, userCacheKey); err != nil {
		log.Warn().Err(err).Msg("user list cache invalidation failed")
	}
}
