package handler

import (
	"time"

	"github.com/google/uuid"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse acknowledges an operation with no other payload.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Request types ---

type createUserRequest struct {
	Email    string `json:"email"     validate:"required,email,max=255"`
	FullName string `json:"full_name" validate:"omitempty,min=1,max=255"`
	Password string `json:"password"  validate:"required,min=8,max=100"`
	Role     string `json:"role"      validate:"omitempty,oneof=admin user guest"`
}

// updateUserRequest is a partial update: absent fields stay nil and are ignored.
type updateUserRequest struct {
	Email    *string `json:"email"     validate:"omitempty,email,max=255"`
	FullName *string `json:"full_name" validate:"omitempty,min=1,max=255"`
	Password *string `json:"password"  validate:"omitempty,min=8,max=100"`
	IsActive *bool   `json:"is_active"`
	Role     *string `json:"role"      validate:"omitempty,oneof=admin user guest"`
}

// --- Response types ---
// Response-only types owned by the transport layer. These are intentionally
// separate from domain types so the JSON contract is not coupled to internal
// service changes.

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	IsActive  bool      `json:"is_active"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// userDetailResponse is the public user view composed with the flat item view.
type userDetailResponse struct {
	userResponse
	Items []itemResponse `json:"items"`
}
