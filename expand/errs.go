package expand

import "errors"

var (
	ErrUnknownDirective  = errors.New("unknown directive")
	ErrInsufficientRange = errors.New("insufficient range")
	ErrBadRange          = errors.New("bad range")
	ErrBadPair           = errors.New("incomplete pair")
)
