package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/markethub/catalog-api/internal/core/domain"
	"github.com/markethub/catalog-api/internal/core/ports"
)

// In-memory stand-ins for the PostgreSQL repositories.

type stubUserRepo struct {
	users map[uuid.UUID]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]domain.User, error) {
	var out []domain.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, *cloneUser(u))
		}
	}
	return out, nil
}

func (r *stubUserRepo) List(_ context.Context, filter ports.UserFilter) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.users {
		if filter.Role != nil && u.Role != *filter.Role {
			continue
		}
		if filter.IsActive != nil && u.IsActive != *filter.IsActive {
			continue
		}
		out = append(out, *cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

var _ ports.UserRepository = (*stubUserRepo)(nil)

type stubItemRepo struct {
	items map[uuid.UUID]*domain.Item
}

func newStubItemRepo() *stubItemRepo {
	return &stubItemRepo{items: make(map[uuid.UUID]*domain.Item)}
}

func cloneItem(it *domain.Item) *domain.Item {
	if it == nil {
		return nil
	}
	clone := *it
	return &clone
}

func (r *stubItemRepo) Create(_ context.Context, item *domain.Item) (*domain.Item, error) {
	r.items[item.ID] = cloneItem(item)
	return cloneItem(item), nil
}

func (r *stubItemRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Item, error) {
	if it, ok := r.items[id]; ok {
		return cloneItem(it), nil
	}
	return nil, domain.ErrItemNotFound
}

func (r *stubItemRepo) FindByOwner(_ context.Context, ownerID uuid.UUID) ([]domain.Item, error) {
	var out []domain.Item
	for _, it := range r.items {
		if it.OwnerID == ownerID {
			out = append(out, *cloneItem(it))
		}
	}
	return out, nil
}

func (r *stubItemRepo) List(_ context.Context, filter ports.ItemFilter) ([]domain.Item, error) {
	var out []domain.Item
	for _, it := range r.items {
		if filter.Status != nil && it.Status != *filter.Status {
			continue
		}
		if filter.Category != nil && it.Category != *filter.Category {
			continue
		}
		if filter.IsAvailable != nil && it.IsAvailable != *filter.IsAvailable {
			continue
		}
		if filter.MinPrice != nil && it.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && it.Price > *filter.MaxPrice {
			continue
		}
		if filter.OwnerID != nil && it.OwnerID != *filter.OwnerID {
			continue
		}
		out = append(out, *cloneItem(it))
	}
	return out, nil
}

func (r *stubItemRepo) Update(_ context.Context, item *domain.Item) (*domain.Item, error) {
	if _, ok := r.items[item.ID]; !ok {
		return nil, domain.ErrItemNotFound
	}
	r.items[item.ID] = cloneItem(item)
	return cloneItem(item), nil
}

func (r *stubItemRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrItemNotFound
	}
	delete(r.items, id)
	return nil
}

var _ ports.ItemRepository = (*stubItemRepo)(nil)

// seedUser inserts an account with a real bcrypt hash for the given password.
func seedUser(repo *stubUserRepo, email, password string, role domain.Role, active bool) *domain.User {
	hasher := NewPasswordHasher(4)
	hash, _ := hasher.Hash(password)
	now := time.Now().UTC()
	u := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		FullName:     "Test User",
		IsActive:     active,
		Role:         role,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	repo.users[u.ID] = u
	return cloneUser(u)
}
