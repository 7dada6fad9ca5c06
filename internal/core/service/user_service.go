package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/markethub/catalog-api/internal/core/domain"
	"github.com/markethub/catalog-api/internal/core/ports"
)

// UserService applies the authorization policy around user persistence.
type UserService struct {
	users  ports.UserRepository
	items  ports.ItemRepository
	hasher *PasswordHasher
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, items ports.ItemRepository, hasher *PasswordHasher, logger zerolog.Logger) *UserService {
	return &UserService{users: users, items: items, hasher: hasher, logger: logger}
}

// Register creates a new account. Duplicate emails are rejected before any
// write; the repository enforces the same invariant at the store level.
func (s *UserService) Register(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.New(),
		Email:        input.Email,
		FullName:     input.FullName,
		IsActive:     true,
		Role:         role,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID.String()).Str("role", string(created.Role)).Msg("user registered")
	return created, nil
}

// Profile returns the actor's own record with their items.
func (s *UserService) Profile(ctx context.Context, actor *domain.User) (*ports.UserDetail, error) {
	items, err := s.items.FindByOwner(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return &ports.UserDetail{User: *actor, Items: items}, nil
}

// List returns users matching the filter. Admin only.
func (s *UserService) List(ctx context.Context, actor *domain.User, filter ports.UserFilter) ([]domain.User, error) {
	if err := domain.Authorize(actor, domain.ActionListUsers, nil).Err(); err != nil {
		return nil, err
	}
	return s.users.List(ctx, filter)
}

// Get returns the target user. Self or admin receive the full detail including
// owned items; any other actor gets the record narrowed to the public view,
// a visibility degradation rather than a denial.
func (s *UserService) Get(ctx context.Context, actor *domain.User, id uuid.UUID) (*ports.UserDetail, bool, error) {
	target, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, false, err
	}

	if !domain.Authorize(actor, domain.ActionReadUser, target).Allowed {
		return &ports.UserDetail{User: *target}, true, nil
	}

	items, err := s.items.FindByOwner(ctx, target.ID)
	if err != nil {
		return nil, false, err
	}
	return &ports.UserDetail{User: *target, Items: items}, false, nil
}

// Update applies a partial update to the target user. Self or admin only;
// role changes are admin only even on the actor's own record.
func (s *UserService) Update(ctx context.Context, actor *domain.User, id uuid.UUID, input ports.UpdateUserInput) (*domain.User, error) {
	target, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.Authorize(actor, domain.ActionUpdateUser, target).Err(); err != nil {
		return nil, err
	}
	if input.Role != nil {
		if err := domain.Authorize(actor, domain.ActionChangeUserRole, target).Err(); err != nil {
			return nil, err
		}
	}

	if input.Email != nil && *input.Email != target.Email {
		if _, err := s.users.FindByEmail(ctx, *input.Email); err == nil {
			return nil, domain.ErrEmailTaken
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		target.Email = *input.Email
	}
	if input.FullName != nil {
		target.FullName = *input.FullName
	}
	if input.Password != nil {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		target.PasswordHash = hash
	}
	if input.IsActive != nil {
		target.IsActive = *input.IsActive
	}
	if input.Role != nil {
		target.Role = *input.Role
	}
	target.UpdatedAt = time.Now().UTC()

	updated, err := s.users.Update(ctx, target)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", updated.ID.String()).Msg("user updated")
	return updated, nil
}

// Delete removes a user account and, by cascade, their items. Admin only.
// Admins may not delete their own account; this prevents lockout and is a
// business-rule error rather than an authorization denial.
func (s *UserService) Delete(ctx context.Context, actor *domain.User, id uuid.UUID) error {
	target, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := domain.Authorize(actor, domain.ActionDeleteUser, target).Err(); err != nil {
		return err
	}
	if actor.ID == target.ID {
		return domain.ErrSelfDelete
	}

	if err := s.users.Delete(ctx, target.ID); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", target.ID.String()).Msg("user deleted")
	return nil
}
