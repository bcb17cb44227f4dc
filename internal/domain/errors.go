package domain

import "errors"

var (
	// ErrHouseholdNotFound is returned when a household id is unknown
	ErrHouseholdNotFound = errors.New("household not found")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrRecipeSourceFailure is returned when the external recipe database request fails
	ErrRecipeSourceFailure = errors.New("external recipe source request failed")

	// ErrRecipeNotFound is returned when the external recipe database has no results
	ErrRecipeNotFound = errors.New("recipe not found in external source")
)
