package services

import (
	"errors"
)

// Sentinel errors returned by the store layer. Controllers map these onto
// HTTP statuses; anything else is surfaced as a store failure with its
// original message.
var (
	ErrNotFound                 = errors.New("not found")
	ErrInvalidInput             = errors.New("invalid input")
	ErrInvalidCategoryReference = errors.New("invalid category reference")
	ErrCategoryInUse            = errors.New("category is in use")
)
