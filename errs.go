package sqxpatch

import "errors"

var (
	ErrSchema = errors.New("unexpected template schema")
	ErrVerify = errors.New("verification failed")
)
