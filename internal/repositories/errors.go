package repositories

import "errors"

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists is returned when a create would violate the unique
	// email constraint.
	ErrUserExists = errors.New("user already exists")
	// ErrProductNotFound is returned when no product matches the given id.
	ErrProductNotFound = errors.New("product not found")
	// ErrCartNotFound is returned when a user has no cart yet.
	ErrCartNotFound = errors.New("cart not found")
)
