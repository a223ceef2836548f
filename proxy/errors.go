package proxy

import (
	"fmt"
	"reflect"

	"go.trai.ch/zerr"
)

// Sentinel errors returned by proxy construction and member calls.
var (
	// ErrNoMember is returned when a proxy, or its bound target, has no
	// member with the requested name.
	ErrNoMember = zerr.New("proxy: no such member")

	// ErrUnbound is returned when an unbound proxy calls a member that has
	// no static implementation, such as a method of an interface base.
	ErrUnbound = zerr.New("proxy: member has no implementation")

	// ErrBadArguments is returned when arguments, or a requested function
	// type, do not match a member's signature.
	ErrBadArguments = zerr.New("proxy: arguments do not match the member")

	// ErrInvalidBase is returned when a base is neither a reflect.Type nor
	// a path resolving to one.
	ErrInvalidBase = zerr.New("proxy: base is not a type")

	// ErrInvalidContent is returned when a content member is not a
	// function.
	ErrInvalidContent = zerr.New("proxy: content member is not a function")
)

func noMember(name string) error {
	return zerr.With(zerr.Wrap(ErrNoMember, "lookup member"), "member", name)
}

func badArguments(name string, want reflect.Type) error {
	err := zerr.With(zerr.Wrap(ErrBadArguments, "call member"), "member", name)
	return zerr.With(err, "want", want.String())
}

func invalidBase(base any) error {
	return zerr.With(zerr.Wrap(ErrInvalidBase, "resolve base"), "base", fmt.Sprintf("%v (%T)", base, base))
}
