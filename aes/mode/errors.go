package mode

import (
	"errors"
	"fmt"
)

var ErrEmptyInput = errors.New("empty input")
var ErrUnsupportedMode = errors.New("unsupported mode")

// UnsupportedModeError is returned for modes that are recognized but have no implementation
type UnsupportedModeError struct {
	Mode Mode
}

func (e *UnsupportedModeError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnsupportedMode, e.Mode)
}

func (e *UnsupportedModeError) Is(target error) bool {
	return target == ErrUnsupportedMode
}
