package readkey

import "errors"

var (
	ErrConfigFormat  = errors.New("unknown config format")
	ErrConfigInvalid = errors.New("invalid config")
)
