package ports

import (
	"context"

	"github.com/google/uuid"
)

// ItemCache is a read-through cache for item detail views. Implementations are
// best-effort: a miss or a backend failure only costs a store round trip.
type ItemCache interface {
	Get(ctx context.Context, id uuid.UUID) (*ItemWithOwner, bool)
	Set(ctx context.Context, view *ItemWithOwner)
	Invalidate(ctx context.Context, id uuid.UUID)
}
