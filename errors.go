package firetoken

import "errors"

var (
	ErrMissingSecret   = errors.New("firetoken: missing secret")
	ErrUnsupportedType = errors.New("firetoken: unsupported claim value type")
)
