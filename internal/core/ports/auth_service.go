package ports

import (
	"context"

	"github.com/markethub/catalog-api/internal/core/domain"
)

// AuthService implements the credential-based entry points.
type AuthService interface {
	// Login verifies email/password and returns a signed bearer token along
	// with the authenticated user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// ChangePassword re-proves the current credential before accepting a new one.
	ChangePassword(ctx context.Context, actor *domain.User, currentPassword, newPassword string) error
}

// IdentityResolver maps a raw bearer token to an active user record.
type IdentityResolver interface {
	Resolve(ctx context.Context, rawToken string) (*domain.User, error)
}
