package reflection

import (
	"cmp"
	"reflect"
	"slices"

	"github.com/samber/lo"

	"github.com/hasbyte1/go-reflect-utils/dotpath"
)

// FindEmbedding returns the chain of elements through which target is
// reachable from root: root first, then every container on the way, then
// target itself. It returns nil when target cannot be reached.
//
// The walk is depth-first in sorted name order and visits each container
// once. Containers are:
//   - *dotpath.Module values: their members;
//   - reflect.Type values: the method expressions of the type, covering
//     both value and pointer receivers;
//   - structs and pointers to structs: their exported fields;
//   - maps keyed by a string kind: their values.
//
// Functions compare by code pointer, so a method expression found on a
// type matches the same expression obtained elsewhere.
func FindEmbedding(root *dotpath.Module, target any) []any {
	if root == nil {
		return nil
	}
	w := &walker{target: target, visited: map[any]struct{}{}}
	if !w.walk(root) {
		return nil
	}
	return w.chain
}

type walker struct {
	target  any
	visited map[any]struct{}
	chain   []any
}

func (w *walker) walk(elt any) bool {
	w.chain = append(w.chain, elt)
	if same(elt, w.target) {
		return true
	}
	if key, ok := visitKey(elt); ok {
		if _, seen := w.visited[key]; seen {
			w.chain = w.chain[:len(w.chain)-1]
			return false
		}
		w.visited[key] = struct{}{}
	}
	for _, child := range children(elt) {
		if w.walk(child) {
			return true
		}
	}
	w.chain = w.chain[:len(w.chain)-1]
	return false
}

// children lists the elements directly contained in elt.
func children(elt any) []any {
	switch e := elt.(type) {
	case nil:
		return nil
	case *dotpath.Module:
		return lo.FilterMap(e.Members(), func(name string, _ int) (any, bool) {
			return e.Member(name)
		})
	case reflect.Type:
		return typeMembers(e)
	}

	rv := reflect.ValueOf(elt)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Struct:
		return fieldValues(rv)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil
		}
		keys := rv.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			return cmp.Compare(a.String(), b.String())
		})
		return lo.Map(keys, func(k reflect.Value, _ int) any { return rv.MapIndex(k).Interface() })
	}
	return nil
}

// typeMembers returns the method expressions declared on t's base type:
// its value methods, then the methods only in its pointer method set.
// Promoted wrappers of value methods on the pointer type are skipped so that
// expressions compare equal to the declared functions.
func typeMembers(t reflect.Type) []any {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() == reflect.Interface {
		return nil
	}
	var out []any
	for i := range t.NumMethod() {
		out = append(out, t.Method(i).Func.Interface())
	}
	ptr := reflect.PointerTo(t)
	for i := range ptr.NumMethod() {
		m := ptr.Method(i)
		if _, ok := t.MethodByName(m.Name); !ok {
			out = append(out, m.Func.Interface())
		}
	}
	return out
}

func fieldValues(rv reflect.Value) []any {
	var out []any
	for i := range rv.NumField() {
		if rv.Type().Field(i).IsExported() {
			out = append(out, rv.Field(i).Interface())
		}
	}
	return out
}

// visitKey returns a comparable identity for containers. Leaves and values
// without identity are never recorded.
func visitKey(elt any) (any, bool) {
	switch e := elt.(type) {
	case nil:
		return nil, false
	case reflect.Type:
		return e, true
	}
	rv := reflect.ValueOf(elt)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map:
		if rv.IsNil() {
			return nil, false
		}
		return identity{rv.Type(), rv.Pointer()}, true
	}
	return nil, false
}

type identity struct {
	t reflect.Type
	p uintptr
}

func same(a, b any) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || ta == nil {
		return ta == tb
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch va.Kind() {
	case reflect.Func, reflect.Map, reflect.Slice:
		return va.Pointer() == vb.Pointer()
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	}
	if va.Comparable() && vb.Comparable() {
		return va.Equal(vb)
	}
	return false
}
