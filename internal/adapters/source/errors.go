package source

import "errors"

// Sentinel kinds for supplier errors.
var (
	ErrNoSuppliers        = errors.New("no suppliers configured")
	ErrAllSuppliersFailed = errors.New("all suppliers failed")
)
