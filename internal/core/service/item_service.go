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

// ItemService applies the authorization policy around item persistence.
// cache may be nil, in which case every read hits the store.
type ItemService struct {
	items  ports.ItemRepository
	users  ports.UserRepository
	cache  ports.ItemCache
	logger zerolog.Logger
}

func NewItemService(items ports.ItemRepository, users ports.UserRepository, cache ports.ItemCache, logger zerolog.Logger) *ItemService {
	return &ItemService{items: items, users: users, cache: cache, logger: logger}
}

// Create stores a new listing owned by the actor. The price is normalized to
// two decimal places before persistence.
func (s *ItemService) Create(ctx context.Context, actor *domain.User, input ports.CreateItemInput) (*domain.Item, error) {
	now := time.Now().UTC()
	item := &domain.Item{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Price:       domain.NormalizePrice(input.Price),
		Quantity:    input.Quantity,
		Category:    input.Category,
		Status:      input.Status,
		IsAvailable: input.IsAvailable,
		OwnerID:     actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.items.Create(ctx, item)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("item_id", created.ID.String()).Str("owner_id", actor.ID.String()).Msg("item created")
	return created, nil
}

// List returns items matching the filter, each paired with its owner's record.
func (s *ItemService) List(ctx context.Context, filter ports.ItemFilter) ([]ports.ItemWithOwner, error) {
	items, err := s.items.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	owners, err := s.loadOwners(ctx, items)
	if err != nil {
		return nil, err
	}

	result := make([]ports.ItemWithOwner, 0, len(items))
	for _, item := range items {
		result = append(result, ports.ItemWithOwner{Item: item, Owner: owners[item.OwnerID]})
	}
	return result, nil
}

// ListByOwner returns the actor's own items.
func (s *ItemService) ListByOwner(ctx context.Context, actor *domain.User, skip, limit int) ([]domain.Item, error) {
	ownerID := actor.ID
	return s.items.List(ctx, ports.ItemFilter{OwnerID: &ownerID, Skip: skip, Limit: limit})
}

// Get returns a single item with its owner, served from cache when possible.
func (s *ItemService) Get(ctx context.Context, id uuid.UUID) (*ports.ItemWithOwner, error) {
	if s.cache != nil {
		if view, ok := s.cache.Get(ctx, id); ok {
			return view, nil
		}
	}

	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	view := &ports.ItemWithOwner{Item: *item}
	owner, err := s.users.FindByID(ctx, item.OwnerID)
	switch {
	case err == nil:
		view.Owner = owner
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, view)
	}
	return view, nil
}

// Update applies a partial update. Owner or admin only. Status changes must
// follow the draft → published → archived state machine.
func (s *ItemService) Update(ctx context.Context, actor *domain.User, id uuid.UUID, input ports.UpdateItemInput) (*domain.Item, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.Authorize(actor, domain.ActionUpdateItem, item).Err(); err != nil {
		return nil, err
	}

	if input.Status != nil && *input.Status != item.Status {
		if !item.Status.CanTransitionTo(*input.Status) {
			return nil, domain.ErrInvalidTransition
		}
		item.Status = *input.Status
	}
	if input.Title != nil {
		item.Title = *input.Title
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Price != nil {
		item.Price = domain.NormalizePrice(*input.Price)
	}
	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}
	item.UpdatedAt = time.Now().UTC()

	updated, err := s.items.Update(ctx, item)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, updated.ID)
	s.logger.Info().Str("item_id", updated.ID.String()).Msg("item updated")
	return updated, nil
}

// Delete removes an item. Owner or admin only.
func (s *ItemService) Delete(ctx context.Context, actor *domain.User, id uuid.UUID) error {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := domain.Authorize(actor, domain.ActionDeleteItem, item).Err(); err != nil {
		return err
	}

	if err := s.items.Delete(ctx, item.ID); err != nil {
		return err
	}

	s.invalidate(ctx, item.ID)
	s.logger.Info().Str("item_id", item.ID.String()).Msg("item deleted")
	return nil
}

// Publish transitions an item to published. Owner or admin only. Publishing an
// already-published item is a state conflict, not an authorization error.
func (s *ItemService) Publish(ctx context.Context, actor *domain.User, id uuid.UUID) (*domain.Item, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.Authorize(actor, domain.ActionPublishItem, item).Err(); err != nil {
		return nil, err
	}
	if item.Status == domain.StatusPublished {
		return nil, domain.ErrAlreadyPublished
	}
	if !item.Status.CanTransitionTo(domain.StatusPublished) {
		return nil, domain.ErrInvalidTransition
	}

	item.Status = domain.StatusPublished
	item.UpdatedAt = time.Now().UTC()

	updated, err := s.items.Update(ctx, item)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, updated.ID)
	s.logger.Info().Str("item_id", updated.ID.String()).Msg("item published")
	return updated, nil
}

func (s *ItemService) loadOwners(ctx context.Context, items []domain.Item) (map[uuid.UUID]*domain.User, error) {
	ids := make([]uuid.UUID, 0, len(items))
	seen := make(map[uuid.UUID]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.OwnerID]; ok {
			continue
		}
		seen[item.OwnerID] = struct{}{}
		ids = append(ids, item.OwnerID)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	owners, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*domain.User, len(owners))
	for i := range owners {
		byID[owners[i].ID] = &owners[i]
	}
	return byID, nil
}

func (s *ItemService) invalidate(ctx context.Context, id uuid.UUID) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
}
