package iterable

import (
	"fmt"

	"go.trai.ch/zerr"
)

// Sentinel errors returned by the iteration helpers.
var (
	// ErrNotIterable is returned when an operation that must iterate
	// receives a value that does not support iteration.
	ErrNotIterable = zerr.New("iterable: value is not iterable")

	// ErrIndexOutOfRange is returned by ItemAt when the index, after
	// negative normalisation, does not address an element.
	ErrIndexOutOfRange = zerr.New("iterable: index out of range")

	// ErrElementType is returned by Ensure when an element cannot be
	// represented as the requested type.
	ErrElementType = zerr.New("iterable: element has the wrong type")
)

func notIterable(v any) error {
	return zerr.With(zerr.Wrap(ErrNotIterable, "iterate"), "type", fmt.Sprintf("%T", v))
}
