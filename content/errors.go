package content

import (
	"errors"
	"fmt"
)

// Common errors returned while building content
var (
	// ErrUnknownTag indicates an element tag outside the API vocabulary
	ErrUnknownTag = errors.New("unknown tag")
	// ErrUnknownAttr indicates an attribute outside the API vocabulary
	ErrUnknownAttr = errors.New("unknown attribute")
	// ErrInvalidNode indicates a JSON value that is neither a string nor an object
	ErrInvalidNode = errors.New("node must be a string or an object")
)

// Error is returned when content cannot be built from, or encoded to, JSON
type Error struct {
	Value string
	Err   error
}

func (e *Error) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("build content: %v", e.Err)
	}
	return fmt.Sprintf("build content: %v: %q", e.Err, e.Value)
}

func (e *Error) Unwrap() error {
	return e.Err
}
