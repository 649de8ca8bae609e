package classify

import "errors"

// Sentinel kinds for classification errors.
var (
	ErrLoadTable    = errors.New("load classification table failed")
	ErrUnknownLevel = errors.New("unknown enforcement level")
)
