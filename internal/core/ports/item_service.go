package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/markethub/catalog-api/internal/core/domain"
)

// CreateItemInput carries a new listing. Defaults are applied at the transport
// layer, so every field arrives populated.
type CreateItemInput struct {
	Title       string
	Description string
	Price       float64
	Quantity    int
	Category    domain.ItemCategory
	Status      domain.ItemStatus
	IsAvailable bool
}

// UpdateItemInput is a partial update: nil fields are left unchanged.
type UpdateItemInput struct {
	Title       *string
	Description *string
	Price       *float64
	Quantity    *int
	Category    *domain.ItemCategory
	Status      *domain.ItemStatus
	IsAvailable *bool
}

// ItemWithOwner pairs an item with its owner for the expanded read views.
// Owner may be nil when the owning account no longer resolves.
type ItemWithOwner struct {
	Item  domain.Item
	Owner *domain.User
}

// ItemService applies the authorization policy around item persistence.
type ItemService interface {
	Create(ctx context.Context, actor *domain.User, input CreateItemInput) (*domain.Item, error)
	List(ctx context.Context, filter ItemFilter) ([]ItemWithOwner, error)
	ListByOwner(ctx context.Context, actor *domain.User, skip, limit int) ([]domain.Item, error)
	Get(ctx context.Context, id uuid.UUID) (*ItemWithOwner, error)
	Update(ctx context.Context, actor *domain.User, id uuid.UUID, input UpdateItemInput) (*domain.Item, error)
	Delete(ctx context.Context, actor *domain.User, id uuid.UUID) error
	Publish(ctx context.Context, actor *domain.User, id uuid.UUID) (*domain.Item, error)
}
