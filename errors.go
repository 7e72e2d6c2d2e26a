package fspath

import (
	"fmt"

	"github.com/targodan/go-errors"
)

// ErrInvalidArgument is matched by errors.Is for any value that cannot
// be interpreted as a path.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrNotImplemented is matched by errors.Is for operations the current
// platform does not support.
var ErrNotImplemented = errors.New("not implemented")

// InvalidArgumentError is returned when a non-textual value is used
// where a path is expected.
type InvalidArgumentError struct {
	Value interface{}
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("path must be a string, got %T", e.Value)
}

func (e *InvalidArgumentError) Is(err error) bool {
	if err == ErrInvalidArgument {
		return true
	}
	_, ok := err.(*InvalidArgumentError)
	return ok
}

// NotImplementedError is returned by operations which have no
// implementation on the running platform.
type NotImplementedError struct {
	Op string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("%s not available on this platform", e.Op)
}

func (e *NotImplementedError) Is(err error) bool {
	if err == ErrNotImplemented {
		return true
	}
	_, ok := err.(*NotImplementedError)
	return ok
}
