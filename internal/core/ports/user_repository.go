package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/markethub/catalog-api/internal/core/domain"
)

// UserFilter narrows a user listing. Nil fields are ignored.
type UserFilter struct {
	Role     *domain.Role
	IsActive *bool
	Skip     int
	Limit    int
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
	List(ctx context.Context, filter UserFilter) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
