package dotpath

import "reflect"

// Attributer is implemented by values that expose named attributes
// themselves rather than through reflection.
type Attributer interface {
	Attr(name string) (any, bool)
}

// Attr returns the attribute called name on value, the way the resolver
// walks the non-module part of a path.
//
// In order of precedence it consults:
//   - [Attributer] implementations (including *Module);
//   - reflect.Type values: the method called name, as a method expression
//     (receiver first), or the reflect.Method itself for interface types;
//   - maps keyed by a string kind: the entry under name;
//   - structs, through pointers and interfaces: the exported field name;
//   - the method set of the value, then of its address when addressable.
//
// The boolean result is false when nothing matches; a nil attribute that
// exists is reported as (nil, true).
func Attr(value any, name string) (any, bool) {
	if value == nil {
		return nil, false
	}
	if a, ok := value.(Attributer); ok {
		return a.Attr(name)
	}
	if t, ok := value.(reflect.Type); ok {
		return typeAttr(t, name)
	}
	return valueAttr(reflect.ValueOf(value), name)
}

func typeAttr(t reflect.Type, name string) (any, bool) {
	if m, ok := t.MethodByName(name); ok {
		if t.Kind() == reflect.Interface {
			return m, true
		}
		return m.Func.Interface(), true
	}
	if t.Kind() != reflect.Pointer && t.Kind() != reflect.Interface {
		if m, ok := reflect.PointerTo(t).MethodByName(name); ok {
			return m.Func.Interface(), true
		}
	}
	return nil, false
}

func valueAttr(orig reflect.Value, name string) (any, bool) {
	v := orig
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		kt := v.Type().Key()
		if kt.Kind() == reflect.String {
			if e := v.MapIndex(reflect.ValueOf(name).Convert(kt)); e.IsValid() && e.CanInterface() {
				return e.Interface(), true
			}
		}
	case reflect.Struct:
		if f, ok := v.Type().FieldByName(name); ok && f.IsExported() {
			fv, err := v.FieldByIndexErr(f.Index)
			if err == nil && fv.CanInterface() {
				return fv.Interface(), true
			}
		}
	}

	if m := orig.MethodByName(name); m.IsValid() {
		return m.Interface(), true
	}
	if v.CanAddr() {
		if m := v.Addr().MethodByName(name); m.IsValid() {
			return m.Interface(), true
		}
	}
	return nil, false
}
