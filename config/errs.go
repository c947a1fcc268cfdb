package config

import "errors"

var ErrParse = errors.New("config parse error")
