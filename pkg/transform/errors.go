package transform

import (
	"errors"
	"fmt"

	"github.com/context-maximiser/sampleproc/pkg/models"
)

// ErrTypeMismatch is matched by every *TypeMismatchError via errors.Is
var ErrTypeMismatch = errors.New("type mismatch")

// TypeMismatchError reports an element an operation could not process
type TypeMismatchError struct {
	Op    string
	Index int
	Value models.Value
	Want  models.Kind
	// Err is the coercion failure, if any
	Err error
}

func (e *TypeMismatchError) Error() string {
	msg := fmt.Sprintf("%s: type mismatch at index %d: got %s %s, want %s",
		e.Op, e.Index, e.Value.Kind, e.Value, e.Want)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the sentinel and the underlying coercion error
func (e *TypeMismatchError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrTypeMismatch}
	}
	return []error{ErrTypeMismatch, e.Err}
}
