package service

import (
	"context"
	"errors"

	"github.com/markethub/catalog-api/internal/core/domain"
	"github.com/markethub/catalog-api/internal/core/ports"
)

// IdentityService resolves bearer tokens to active user records. It is the
// hard gate applied before any action-specific authorization check.
type IdentityService struct {
	tokens *TokenService
	users  ports.UserRepository
}

func NewIdentityService(tokens *TokenService, users ports.UserRepository) *IdentityService {
	return &IdentityService{tokens: tokens, users: users}
}

// Resolve validates the token, loads the subject and enforces the active-account
// gate. A token whose subject no longer exists is treated the same as an
// invalid token.
func (s *IdentityService) Resolve(ctx context.Context, rawToken string) (*domain.User, error) {
	subjectID, err := s.tokens.Validate(rawToken)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, domain.ErrInactiveAccount
	}
	return user, nil
}
