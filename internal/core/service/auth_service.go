package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/markethub/catalog-api/internal/core/domain"
	"github.com/markethub/catalog-api/internal/core/ports"
)

// AuthService implements login and credential lifecycle.
type AuthService struct {
	users  ports.UserRepository
	hasher *PasswordHasher
	tokens *TokenService
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, hasher *PasswordHasher, tokens *TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, logger: logger}
}

// Login verifies the email/password pair and issues a bearer token. An unknown
// email and a wrong password are indistinguishable to the caller; an inactive
// account is reported separately after the credential has been verified.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", nil, domain.ErrInactiveAccount
	}

	token, err := s.tokens.Issue(user.ID, s.tokens.DefaultTTL())
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", user.ID.String()).Msg("user logged in")
	return token, user, nil
}

// ChangePassword requires re-proof of the current credential before accepting
// the new one.
func (s *AuthService) ChangePassword(ctx context.Context, actor *domain.User, currentPassword, newPassword string) error {
	if !s.hasher.Verify(currentPassword, actor.PasswordHash) {
		return domain.ErrWrongPassword
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	actor.PasswordHash = hash
	actor.UpdatedAt = time.Now().UTC()
	if _, err := s.users.Update(ctx, actor); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", actor.ID.String()).Msg("password changed")
	return nil
}
