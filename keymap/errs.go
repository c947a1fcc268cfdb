package keymap

import "errors"

var (
	ErrMissingKey = errors.New("missing key")
	ErrBadValue   = errors.New("bad value")
)
