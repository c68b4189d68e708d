package engine

import "errors"

var ErrInvalidIVLength = errors.New("invalid IV length")
var ErrInvalidHex = errors.New("invalid hex")
var ErrNotImplemented = errors.New("not implemented")
