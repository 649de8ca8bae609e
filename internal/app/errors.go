package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrEmptyQuery = errors.New("empty search query")
)
