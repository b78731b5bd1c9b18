package usecase

import "errors"

var (
	ErrMalformedPayload = errors.New("malformed payload")
	ErrInvalidInput     = errors.New("invalid input")
	ErrForbidden        = errors.New("forbidden")
	ErrNotFound         = errors.New("resource not found")
)
