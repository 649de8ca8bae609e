package api

import "errors"

// Sentinel kinds for API errors.
var (
	ErrInvalidLimit   = errors.New("limit must be a non-negative integer")
	ErrMissingCompany = errors.New("developer or publisher required")
)
