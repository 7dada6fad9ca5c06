package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/markethub/catalog-api/internal/core/domain"
)

// CreateUserInput carries a registration request.
type CreateUserInput struct {
	Email    string
	FullName string
	Password string
	Role     domain.Role
}

// UpdateUserInput is a partial update: nil fields are left unchanged.
type UpdateUserInput struct {
	Email    *string
	FullName *string
	Password *string
	IsActive *bool
	Role     *domain.Role
}

// UserDetail is a user together with the items they own.
type UserDetail struct {
	User  domain.User
	Items []domain.Item
}

// UserService applies the authorization policy around user persistence.
type UserService interface {
	Register(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Profile(ctx context.Context, actor *domain.User) (*UserDetail, error)
	List(ctx context.Context, actor *domain.User, filter UserFilter) ([]domain.User, error)
	// Get returns the target user. For a non-self, non-admin actor the result
	// is narrowed: Items is omitted and narrowed reports true.
	Get(ctx context.Context, actor *domain.User, id uuid.UUID) (detail *UserDetail, narrowed bool, err error)
	Update(ctx context.Context, actor *domain.User, id uuid.UUID, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, actor *domain.User, id uuid.UUID) error
}
