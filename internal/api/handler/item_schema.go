package handler

import (
	"time"

	"github.com/google/uuid"
)

// --- Request types ---

type createItemRequest struct {
	Title       string  `json:"title"        validate:"required,min=1,max=255"`
	Description string  `json:"description"  validate:"omitempty,max=1000"`
	Price       float64 `json:"price"        validate:"gte=0,lte=1000000"`
	Quantity    *int    `json:"quantity"     validate:"omitempty,gte=0,lte=10000"`
	Category    string  `json:"category"     validate:"omitempty,oneof=electronics clothing books food other"`
	Status      string  `json:"status"       validate:"omitempty,oneof=draft published archived"`
	IsAvailable *bool   `json:"is_available"`
}

// updateItemRequest is a partial update: absent fields stay nil and are ignored.
type updateItemRequest struct {
	Title       *string  `json:"title"        validate:"omitempty,min=1,max=255"`
	Description *string  `json:"description"  validate:"omitempty,max=1000"`
	Price       *float64 `json:"price"        validate:"omitempty,gte=0,lte=1000000"`
	Quantity    *int     `json:"quantity"     validate:"omitempty,gte=0,lte=10000"`
	Category    *string  `json:"category"     validate:"omitempty,oneof=electronics clothing books food other"`
	Status      *string  `json:"status"       validate:"omitempty,oneof=draft published archived"`
	IsAvailable *bool    `json:"is_available"`
}

// --- Response types ---

type itemResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	IsAvailable bool      `json:"is_available"`
	OwnerID     uuid.UUID `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// itemWithOwnerResponse is the flat item view composed with the public user
// view. Owner is omitted when the owning account no longer resolves.
type itemWithOwnerResponse struct {
	itemResponse
	Owner *userResponse `json:"owner,omitempty"`
}
