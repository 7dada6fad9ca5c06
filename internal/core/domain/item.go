package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// ItemStatus represents the lifecycle state of a listing.
type ItemStatus string

const (
	StatusDraft     ItemStatus = "draft"
	StatusPublished ItemStatus = "published"
	StatusArchived  ItemStatus = "archived"
)

// validTransitions defines the allowed state machine transitions.
// Archived is terminal.
var validTransitions = map[ItemStatus][]ItemStatus{
	StatusDraft:     {StatusPublished, StatusArchived},
	StatusPublished: {StatusArchived},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s ItemStatus) CanTransitionTo(next ItemStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsValid reports whether s is one of the known statuses.
func (s ItemStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// ItemCategory enumerates the catalog categories.
type ItemCategory string

const (
	CategoryElectronics ItemCategory = "electronics"
	CategoryClothing    ItemCategory = "clothing"
	CategoryBooks       ItemCategory = "books"
	CategoryFood        ItemCategory = "food"
	CategoryOther       ItemCategory = "other"
)

// IsValid reports whether c is one of the known categories.
func (c ItemCategory) IsValid() bool {
	switch c {
	case CategoryElectronics, CategoryClothing, CategoryBooks, CategoryFood, CategoryOther:
		return true
	}
	return false
}

// Bounds enforced on item fields before any persistence attempt.
const (
	MaxPrice    = 1_000_000
	MaxQuantity = 10_000
)

// NormalizePrice rounds a price to two decimal places.
func NormalizePrice(p float64) float64 {
	return math.Round(p*100) / 100
}

// Item is a catalog listing owned by a user.
type Item struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Price       float64      `json:"price"`
	Quantity    int          `json:"quantity"`
	Category    ItemCategory `json:"category"`
	Status      ItemStatus   `json:"status"`
	IsAvailable bool         `json:"is_available"`
	OwnerID     uuid.UUID    `json:"owner_id"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
