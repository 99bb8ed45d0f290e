package phparray

import (
	"errors"
	"fmt"
)

// ErrUnsupportedValue is matched by every UnsupportedValueError.
var ErrUnsupportedValue = errors.New("unsupported value")

// UnsupportedValueError reports an input value whose kind is none of null,
// bool, number, text, sequence or mapping.
type UnsupportedValueError struct {
	// Kind names the offending kind (e.g. "func", "chan", "function").
	Kind string
	// Repr is a textual representation of the value.
	Repr string
}

// Error implements the error interface.
func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("unsupported value of type '%s' with value '%s'", e.Kind, e.Repr)
}

// Is reports whether target is ErrUnsupportedValue.
func (e *UnsupportedValueError) Is(target error) bool {
	return target == ErrUnsupportedValue
}
