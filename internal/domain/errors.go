package domain

import "errors"

// Domain-level errors
var (
	ErrProductNotFound = errors.New("product not found")
	ErrProductInactive = errors.New("product is inactive")
	ErrCodeExists      = errors.New("product code already exists")
)
