package reflection

import (
	"reflect"

	"github.com/samber/lo"
)

// MethodRef names a method of a type. It is the input [BaseElements] uses
// to look up base methods.
type MethodRef struct {
	Type reflect.Type
	Name string
}

// Bases returns the types embedded directly in t, in declaration order.
// Pointers to structs are followed; any other type has no bases.
func Bases(t reflect.Type) []reflect.Type {
	t = structType(t)
	if t == nil {
		return nil
	}
	var bases []reflect.Type
	for i := range t.NumField() {
		if f := t.Field(i); f.Anonymous {
			bases = append(bases, f.Type)
		}
	}
	return bases
}

// BaseMethods returns, for every direct base of t that defines a method
// called name, that method. A base contributes through its value method
// set, or through its pointer method set when the value set lacks name.
func BaseMethods(t reflect.Type, name string) []reflect.Method {
	return lo.FilterMap(Bases(t), func(base reflect.Type, _ int) (reflect.Method, bool) {
		return methodOf(base, name)
	})
}

func methodOf(t reflect.Type, name string) (reflect.Method, bool) {
	if m, ok := t.MethodByName(name); ok {
		return m, true
	}
	if t.Kind() == reflect.Pointer || t.Kind() == reflect.Interface {
		return reflect.Method{}, false
	}
	return reflect.PointerTo(t).MethodByName(name)
}

// BaseElements returns the base elements of elt:
//   - reflect.Type: its [Bases];
//   - [MethodRef]: the [BaseMethods] of the referenced method;
//   - reflect.Method of a concrete type: the base methods of its receiver
//     type with the same name.
//
// Anything else, including methods obtained from interface types, has no
// base elements and yields an empty result.
func BaseElements(elt any) []any {
	switch e := elt.(type) {
	case reflect.Type:
		return lo.Map(Bases(e), func(t reflect.Type, _ int) any { return t })
	case MethodRef:
		return methods(BaseMethods(e.Type, e.Name))
	case reflect.Method:
		if !e.Func.IsValid() || e.Type.NumIn() == 0 {
			return nil
		}
		return methods(BaseMethods(e.Type.In(0), e.Name))
	}
	return nil
}

func methods(ms []reflect.Method) []any {
	return lo.Map(ms, func(m reflect.Method, _ int) any { return m })
}

func structType(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	return t
}
