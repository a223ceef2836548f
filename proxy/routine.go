package proxy

import (
	"reflect"

	"go.trai.ch/zerr"
)

// Get returns a proxy of target.
//
// A non-nil function, method values included, gives a function of the same
// type forwarding every call to it, as [Func] does. Anything else gives a
// *Proxy built by [New] with the given bases and content.
func Get(target any, bases []any, content map[string]any) (any, error) {
	if rv := reflect.ValueOf(target); rv.Kind() == reflect.Func && !rv.IsNil() {
		return forward(rv).Interface(), nil
	}
	p, err := New(target, WithBases(bases...), WithContent(content))
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Func returns a function of the same type as fn that forwards every call
// to fn and returns its results unchanged.
func Func[F any](fn F) (F, error) {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		var zero F
		return zero, zerr.With(zerr.Wrap(ErrBadArguments, "proxy function"), "want", "non-nil function")
	}
	return forward(rv).Interface().(F), nil
}

// Method returns a function forwarding to the method name of receiver,
// bound to receiver.
func Method(receiver any, name string) (any, error) {
	rv := reflect.ValueOf(receiver)
	if !rv.IsValid() {
		return nil, noMember(name)
	}
	m := rv.MethodByName(name)
	if !m.IsValid() {
		return nil, zerr.With(noMember(name), "target", typeName(receiver))
	}
	return forward(m).Interface(), nil
}

// Bind returns a function of type F calling the member name of p.
//
// The implementation is chosen when Bind is called: the target's member
// for a bound proxy, the static implementation otherwise. F must have
// exactly the signature of that implementation.
func Bind[F any](p *Proxy, name string) (F, error) {
	var zero F
	ft := reflect.TypeFor[F]()
	fn, err := p.routine(name)
	if err != nil {
		return zero, err
	}
	if ft.Kind() != reflect.Func || !sameSignature(fn.Type(), ft) {
		return zero, badArguments(name, fn.Type())
	}
	return reflect.MakeFunc(ft, call(fn)).Interface().(F), nil
}

func forward(fn reflect.Value) reflect.Value {
	return reflect.MakeFunc(fn.Type(), call(fn))
}

func call(fn reflect.Value) func([]reflect.Value) []reflect.Value {
	if fn.Type().IsVariadic() {
		return fn.CallSlice
	}
	return fn.Call
}

func sameSignature(a, b reflect.Type) bool {
	if a.NumIn() != b.NumIn() || a.NumOut() != b.NumOut() || a.IsVariadic() != b.IsVariadic() {
		return false
	}
	for i := range a.NumIn() {
		if a.In(i) != b.In(i) {
			return false
		}
	}
	for i := range a.NumOut() {
		if a.Out(i) != b.Out(i) {
			return false
		}
	}
	return true
}
