package iterable

import (
	"cmp"
	"fmt"
	"iter"
	"reflect"
	"slices"

	"go.trai.ch/zerr"
)

// Sequence is implemented by custom containers that want to be iterated by
// this package. A nil pointer implementing Sequence is not iterable.
type Sequence interface {
	All() iter.Seq[any]
}

// Rebuilder is optionally implemented by a [Sequence] that [Slice] can
// reconstruct from a subset of its values.
type Rebuilder interface {
	Rebuild(values []any) (any, error)
}

// Lener is optionally implemented by a [Sequence] whose length is known
// without iterating it.
type Lener interface {
	Len() int
}

// Builder turns collected values into a container. See [EnsureIterable].
type Builder func(values []any) any

// ToSlice is the default [Builder]: it returns the values as []any.
func ToSlice(values []any) any { return values }

// ToSet builds a map[any]struct{} from the comparable values. Values of
// non-comparable types are skipped.
func ToSet(values []any) any {
	set := make(map[any]struct{}, len(values))
	for _, v := range values {
		if v == nil || reflect.TypeOf(v).Comparable() {
			set[v] = struct{}{}
		}
	}
	return set
}

// Values returns a sequence over the elements of v.
//
// Supported values:
//   - strings (and named string types): their runes;
//   - slices, arrays and pointers to arrays: their elements;
//   - maps: their keys, sorted when the key kind is ordered;
//   - channels that can receive: values until the channel is closed
//     (iterating drains the channel);
//   - range-over-func sequences (iter.Seq and iter.Seq2 shapes of any
//     element type): the yielded values, keys for iter.Seq2;
//   - [Sequence] implementations.
//
// Any other value, nil included, yields [ErrNotIterable]. The returned
// sequence is lazy: nothing is read until it is ranged over.
func Values(v any) (iter.Seq[any], error) {
	switch s := v.(type) {
	case nil:
		return nil, notIterable(v)
	case Sequence:
		if isNilPointer(s) {
			return nil, notIterable(v)
		}
		return s.All(), nil
	case iter.Seq[any]:
		return s, nil
	case []any:
		return slices.Values(s), nil
	case string:
		return runes(s), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return runes(rv.String()), nil
	case reflect.Slice, reflect.Array:
		return indexed(rv), nil
	case reflect.Pointer:
		if rv.Type().Elem().Kind() == reflect.Array && !rv.IsNil() {
			return indexed(rv.Elem()), nil
		}
	case reflect.Map:
		return func(yield func(any) bool) {
			for _, k := range sortedKeys(rv) {
				if !yield(k.Interface()) {
					return
				}
			}
		}, nil
	case reflect.Chan:
		if rv.Type().ChanDir()&reflect.RecvDir == 0 {
			break
		}
		if rv.IsNil() {
			return func(func(any) bool) {}, nil
		}
		return func(yield func(any) bool) {
			for {
				x, ok := rv.Recv()
				if !ok || !yield(x.Interface()) {
					return
				}
			}
		}, nil
	case reflect.Func:
		if isSeqFunc(rv.Type()) && !rv.IsNil() {
			return funcSeq(rv), nil
		}
	}
	return nil, notIterable(v)
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func runes(s string) iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, r := range s {
			if !yield(r) {
				return
			}
		}
	}
}

func indexed(rv reflect.Value) iter.Seq[any] {
	return func(yield func(any) bool) {
		for i := range rv.Len() {
			if !yield(rv.Index(i).Interface()) {
				return
			}
		}
	}
}

// isSeqFunc reports whether t has the shape func(yield func(K[, V]) bool).
func isSeqFunc(t reflect.Type) bool {
	if t.NumIn() != 1 || t.NumOut() != 0 || t.IsVariadic() {
		return false
	}
	y := t.In(0)
	return y.Kind() == reflect.Func &&
		(y.NumIn() == 1 || y.NumIn() == 2) &&
		y.NumOut() == 1 && y.Out(0).Kind() == reflect.Bool
}

func funcSeq(rv reflect.Value) iter.Seq[any] {
	yieldType := rv.Type().In(0)
	return func(yield func(any) bool) {
		fn := reflect.MakeFunc(yieldType, func(args []reflect.Value) []reflect.Value {
			more := reflect.ValueOf(yield(args[0].Interface()))
			return []reflect.Value{more.Convert(yieldType.Out(0))}
		})
		rv.Call([]reflect.Value{fn})
	}
}

func sortedKeys(rv reflect.Value) []reflect.Value {
	keys := rv.MapKeys()
	slices.SortFunc(keys, compareValues)
	return keys
}

func compareValues(a, b reflect.Value) int {
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	case reflect.String:
		return cmp.Compare(a.String(), b.String())
	case reflect.Bool:
		if a.Bool() == b.Bool() {
			return 0
		}
		if a.Bool() {
			return 1
		}
		return -1
	}
	return cmp.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
}

// IsIterable reports whether v can be iterated by [Values] and its type is
// not excluded. An excluded interface type excludes every type that
// implements it.
//
//	IsIterable([]int{})                          // true
//	IsIterable("abc", reflect.TypeFor[string]()) // false
//	IsIterable(42)                               // false
func IsIterable(v any, exclude ...reflect.Type) bool {
	if excluded(reflect.TypeOf(v), exclude) {
		return false
	}
	_, err := Values(v)
	return err == nil
}

func excluded(t reflect.Type, exclude []reflect.Type) bool {
	if t == nil {
		return false
	}
	for _, ex := range exclude {
		if ex == nil {
			continue
		}
		if t == ex || (ex.Kind() == reflect.Interface && t.Implements(ex)) {
			return true
		}
	}
	return false
}

// EnsureIterable returns v rebuilt by build when v is iterable and not
// excluded, and v wrapped as a single element otherwise. A nil build uses
// [ToSlice].
//
//	EnsureIterable([]int{1, 2}, nil)                          // []any{1, 2}
//	EnsureIterable("ab", nil, reflect.TypeFor[string]())      // []any{"ab"}
//	EnsureIterable(7, nil)                                    // []any{7}
func EnsureIterable(v any, build Builder, exclude ...reflect.Type) any {
	if build == nil {
		build = ToSlice
	}
	if IsIterable(v, exclude...) {
		seq, _ := Values(v)
		return build(slices.AppendSeq([]any{}, seq))
	}
	return build([]any{v})
}

// Ensure is the typed counterpart of [EnsureIterable]: a []T is copied, a
// non-iterable T (or any T when T is a concrete type) is wrapped, and any
// other iterable is collected with every element asserted to T.
func Ensure[T any](v any) ([]T, error) {
	if s, ok := v.([]T); ok {
		return slices.Clone(s), nil
	}
	if x, ok := v.(T); ok && (reflect.TypeFor[T]().Kind() != reflect.Interface || !IsIterable(v)) {
		return []T{x}, nil
	}

	seq, err := Values(v)
	if err != nil {
		var zero T
		if v == nil && reflect.TypeFor[T]().Kind() == reflect.Interface {
			return []T{zero}, nil
		}
		return nil, elementType[T](v)
	}

	var out []T
	for x := range seq {
		t, ok := x.(T)
		if !ok {
			return nil, elementType[T](x)
		}
		out = append(out, t)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func elementType[T any](x any) error {
	err := zerr.With(zerr.Wrap(ErrElementType, "ensure"), "element", fmt.Sprintf("%T", x))
	return zerr.With(err, "want", reflect.TypeFor[T]().String())
}

// Len returns the number of elements of v when it is known without
// iterating: strings (in runes), slices, arrays, maps and [Lener]
// sequences.
func Len(v any) (int, bool) {
	if l, ok := v.(Lener); ok {
		if isNilPointer(l) {
			return 0, false
		}
		return l.Len(), true
	}
	if s, ok := v.(string); ok {
		return len([]rune(s)), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return len([]rune(rv.String())), true
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	case reflect.Pointer:
		if rv.Type().Elem().Kind() == reflect.Array {
			return rv.Type().Elem().Len(), true
		}
	}
	return 0, false
}
