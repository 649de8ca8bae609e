package configstore

import "errors"

// Sentinel kinds for configuration store errors.
var (
	ErrUnknownConfig = errors.New("unknown scoring configuration")
	ErrLoadConfigs   = errors.New("load scoring configurations failed")
)
