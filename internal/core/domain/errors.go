package domain

import "errors"

// Sentinel errors shared across services. The API layer maps each to a
// deterministic HTTP status code in a single place.
var (
	// ErrUnauthenticated covers missing, malformed, tampered or expired tokens.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrInvalidCredentials is returned when an email/password pair does not match.
	ErrInvalidCredentials = errors.New("incorrect email or password")
	// ErrInactiveAccount is returned when a deactivated account attempts any
	// operation requiring an active one.
	ErrInactiveAccount = errors.New("user account is inactive")
	// ErrForbidden is an authorization denial.
	ErrForbidden = errors.New("not enough permissions")

	ErrUserNotFound = errors.New("user not found")
	ErrItemNotFound = errors.New("item not found")

	// ErrEmailTaken is returned on registration or update with a duplicate email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrAlreadyPublished rejects a publish attempt on an already-published item.
	ErrAlreadyPublished = errors.New("item is already published")
	// ErrInvalidTransition rejects a status change the state machine does not allow.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrSelfDelete prevents an admin from deleting their own account.
	ErrSelfDelete = errors.New("cannot delete yourself")
	// ErrWrongPassword is returned by change-password when the current
	// credential does not verify.
	ErrWrongPassword = errors.New("incorrect current password")
)
