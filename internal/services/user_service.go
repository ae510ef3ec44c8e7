package services

import (
	"context"
	"errors"
	"log"
	"time"

	"userbase/internal/caching"
	"userbase/internal/common"
	"userbase/internal/models"
	"userbase/internal/repositories"
	"userbase/internal/validation"

	"github.com/google/uuid"
)

const userCacheTTL = 5 * time.Minute

type UserService interface {
	Create(ctx context.Context, input *validation.CreateUserInput) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	List(ctx context.Context, skip, take int) ([]*models.User, int64, error)
	Update(ctx context.Context, id uuid.UUID, input *validation.UpdateUserInput) (*models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ToggleStatus(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type userService struct {
	repo   repositories.UserRepository
	hasher PasswordHasher
	cache  caching.CacheService // optional; nil disables caching
}

func NewUserService(repo repositories.UserRepository, hasher PasswordHasher, cache caching.CacheService) UserService {
	return &userService{
		repo:   repo,
		hasher: hasher,
		cache:  cache,
	}
}

// Create hashes the password and inserts the user. The pre-check on email is
// a fast path for a friendly error; the unique index on users.email is the
// real guarantee, so a racing duplicate insert still maps to a conflict.
func (s *userService) Create(ctx context.Context, input *validation.CreateUserInput) (*models.User, error) {
	existing, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, common.Conflict("User with this email already exists")
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         input.Role,
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, common.Conflict("User with this email already exists")
		}
		return nil, err
	}

	s.cacheSet(ctx, user)
	return user, nil
}

// GetByID returns nil without error when the user does not exist; the caller
// decides whether absence is a 404.
func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if s.cache != nil {
		cached, err := s.cache.GetUser(ctx, id)
		if err != nil {
			log.Printf("WARN: user cache read failed: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user != nil {
		s.cacheSet(ctx, user)
	}
	return user, nil
}

// List returns a page ordered by creation time descending plus the total
// count for pagination math.
func (s *userService) List(ctx context.Context, skip, take int) ([]*models.User, int64, error) {
	users, err := s.repo.List(ctx, take, skip)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// Update overwrites the supplied fields, re-hashing the password only when a
// new one was provided.
func (s *userService) Update(ctx context.Context, id uuid.UUID, input *validation.UpdateUserInput) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, common.NotFound("User not found")
	}

	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Password != nil {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, common.Conflict("User with this email already exists")
		}
		return nil, err
	}

	s.cacheInvalidate(ctx, id)
	return user, nil
}

// Delete removes the user, reporting not-found when no row was affected so a
// repeated delete of the same id fails.
func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return common.NotFound("User not found")
	}
	s.cacheInvalidate(ctx, id)
	return nil
}

// ToggleStatus flips is_active and returns the updated record.
func (s *userService) ToggleStatus(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, common.NotFound("User not found")
	}

	user.IsActive = !user.IsActive
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.cacheInvalidate(ctx, id)
	return user, nil
}

// Cache writes are best effort; a failed cache never fails the request.
func (s *userService) cacheSet(ctx context.Context, user *models.User) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetUser(ctx, user, userCacheTTL); err != nil {
		log.Printf("WARN: user cache write failed: %v", err)
	}
}

func (s *userService) cacheInvalidate(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteUser(ctx, id); err != nil {
		log.Printf("WARN: user cache invalidation failed: %v", err)
	}
}
