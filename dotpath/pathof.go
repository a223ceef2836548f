package dotpath

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"go.trai.ch/zerr"
)

// Named is implemented by elements that know their own name.
type Named interface {
	Name() string
}

// Owned is implemented by named elements that know the module they belong
// to.
type Owned interface {
	Module() string
}

type ownerIndex interface {
	Owner(element any) (module, member string, ok bool)
}

// PathOf returns the dotted path under which element can be looked up, the
// reverse of [Resolver.Lookup].
//
// Modules map to their name. Functions and named types registered with the
// resolver's [Registry] map to "<module>.<member>". Other top-level
// functions and named types fall back to the Go package path and symbol
// name. [Named] elements use their [Owned] module, or the registered module
// exposing them under that name.
//
// Elements without a top-level name (closures, method values, anonymous
// types, plain values) yield [ErrInvalidArgument]. Nested members are not
// handled.
func (r *Resolver) PathOf(element any) (string, error) {
	switch e := element.(type) {
	case nil:
		return "", invalidElement(element)
	case *Module:
		return e.Name(), nil
	case reflect.Type:
		return r.typePath(e)
	case Named:
		name := e.Name()
		if name == "" {
			return "", invalidElement(element)
		}
		if o, ok := element.(Owned); ok && o.Module() != "" {
			return o.Module() + "." + name, nil
		}
		if reg, ok := r.importer.(*Registry); ok {
			if mod, ok := reg.exposes(name, element); ok {
				return mod + "." + name, nil
			}
		}
		return "", invalidElement(element)
	}

	if rv := reflect.ValueOf(element); rv.Kind() == reflect.Func && !rv.IsNil() {
		return r.funcPath(element, rv)
	}
	return "", invalidElement(element)
}

func (r *Resolver) typePath(t reflect.Type) (string, error) {
	if idx, ok := r.importer.(ownerIndex); ok {
		if mod, member, ok := idx.Owner(t); ok {
			return mod + "." + member, nil
		}
	}
	if t.Name() == "" || t.PkgPath() == "" {
		return "", invalidElement(t)
	}
	return t.PkgPath() + "." + t.Name(), nil
}

func (r *Resolver) funcPath(element any, rv reflect.Value) (string, error) {
	if idx, ok := r.importer.(ownerIndex); ok {
		if mod, member, ok := idx.Owner(element); ok {
			return mod + "." + member, nil
		}
	}

	fn := runtime.FuncForPC(rv.Pointer())
	if fn == nil {
		return "", invalidElement(element)
	}
	pkg, name, ok := splitSymbol(fn.Name())
	if !ok {
		return "", invalidElement(element)
	}
	return pkg + "." + name, nil
}

// splitSymbol splits a runtime symbol such as "example.com/a/b.Func" into
// its package path and function name. Closures, method values and methods
// are rejected.
func splitSymbol(symbol string) (pkg, name string, ok bool) {
	symbol = strings.TrimSuffix(symbol, "[...]")
	slash := strings.LastIndex(symbol, "/")
	dot := strings.Index(symbol[slash+1:], ".")
	if dot < 0 {
		return "", "", false
	}
	dot += slash + 1
	pkg, name = symbol[:dot], symbol[dot+1:]
	if name == "" || strings.ContainsAny(name, ".()-") {
		return "", "", false
	}
	return pkg, name, true
}

func invalidElement(element any) error {
	return zerr.With(zerr.Wrap(ErrInvalidArgument, "path of"), "element", fmt.Sprintf("%T", element))
}
