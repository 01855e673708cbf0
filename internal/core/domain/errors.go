package domain

import "errors"

var (
	ErrPartNotFound        = errors.New("part not found")
	ErrDuplicatePartNumber = errors.New("part number already exists")
	ErrInvalidCategory     = errors.New("invalid category")
	ErrValidation          = errors.New("validation error")
)
