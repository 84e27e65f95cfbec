package powermate

import (
	"errors"
	"fmt"
)

// ErrTimeout is returned by ReadEvent when no event arrived within the timeout. It is an expected condition.
var ErrTimeout = errors.New("no knob event before timeout")

// IOError is any failure reading from the device. Once a knob has failed, every later read returns the same error.
type IOError struct {
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("powermate read failed: %v", e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
