package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/markethub/catalog-api/internal/core/domain"
)

// ItemFilter narrows an item listing. Nil fields are ignored; Search matches a
// substring of title or description.
type ItemFilter struct {
	Status      *domain.ItemStatus
	Category    *domain.ItemCategory
	IsAvailable *bool
	MinPrice    *float64
	MaxPrice    *float64
	Search      string
	OwnerID     *uuid.UUID
	Skip        int
	Limit       int
}

// ItemRepository defines persistence operations for catalog items.
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Item, error)
	List(ctx context.Context, filter ItemFilter) ([]domain.Item, error)
	Update(ctx context.Context, item *domain.Item) (*domain.Item, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
