package template

import "errors"

var ErrParse = errors.New("parse error")
