package iterable

import (
	"math"
	"reflect"
	"slices"

	"github.com/samber/lo"
)

// MaxIndex is the open upper bound for [Slice].
const MaxIndex = math.MaxInt

// Slice returns the elements of v at positions [lower, upper).
//
// Negative bounds count from the end and out-of-range bounds are clamped;
// the result is empty when lower >= upper after normalisation. The shape of
// the result follows v:
//   - strings: a string of the selected runes, of the same string type;
//   - slices: a new slice of the same type;
//   - arrays and pointers to arrays: a slice of the element type;
//   - maps: a map of the same type holding the selected keys (in sorted key
//     order) with their original values;
//   - [Rebuilder] sequences: the result of Rebuild;
//   - anything else iterable, or a failed Rebuild: []any.
func Slice(v any, lower, upper int) (any, error) {
	if s, ok := v.(string); ok {
		return sliceRunes(s, lower, upper), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		s := sliceRunes(rv.String(), lower, upper)
		return reflect.ValueOf(s).Convert(rv.Type()).Interface(), nil
	case reflect.Slice:
		from, to := bounds(rv.Len(), lower, upper)
		out := reflect.MakeSlice(rv.Type(), 0, to-from)
		return reflect.AppendSlice(out, rv.Slice(from, to)).Interface(), nil
	case reflect.Pointer:
		if rv.Type().Elem().Kind() == reflect.Array && !rv.IsNil() {
			return sliceArray(rv.Elem(), lower, upper), nil
		}
	case reflect.Array:
		return sliceArray(rv, lower, upper), nil
	case reflect.Map:
		keys := sortedKeys(rv)
		from, to := bounds(len(keys), lower, upper)
		out := reflect.MakeMapWithSize(rv.Type(), to-from)
		for _, k := range keys[from:to] {
			out.SetMapIndex(k, rv.MapIndex(k))
		}
		return out.Interface(), nil
	}

	values, err := window(v, lower, upper)
	if err != nil {
		return nil, err
	}
	if r, ok := v.(Rebuilder); ok {
		if rebuilt, err := r.Rebuild(values); err == nil {
			return rebuilt, nil
		}
	}
	return values, nil
}

func sliceRunes(s string, lower, upper int) string {
	r := []rune(s)
	from, to := bounds(len(r), lower, upper)
	return string(lo.Slice(r, from, to))
}

func sliceArray(rv reflect.Value, lower, upper int) any {
	from, to := bounds(rv.Len(), lower, upper)
	out := reflect.MakeSlice(reflect.SliceOf(rv.Type().Elem()), to-from, to-from)
	for i := from; i < to; i++ {
		out.Index(i - from).Set(rv.Index(i))
	}
	return out.Interface()
}

// window collects the values of an arbitrary iterable in [lower, upper).
// The sequence is walked once, and only up to upper when both bounds are
// non-negative; negative bounds need the length, which is taken from [Len]
// or by buffering.
func window(v any, lower, upper int) ([]any, error) {
	seq, err := Values(v)
	if err != nil {
		return nil, err
	}

	if lower < 0 || upper < 0 {
		n, ok := Len(v)
		if !ok {
			all := slices.Collect(seq)
			from, to := bounds(len(all), lower, upper)
			return lo.Slice(all, from, to), nil
		}
		lower, upper = bounds(n, lower, upper)
	}

	values := []any{}
	if lower >= upper {
		return values, nil
	}
	i := 0
	for x := range seq {
		if i >= upper {
			break
		}
		if i >= lower {
			values = append(values, x)
		}
		i++
	}
	return values, nil
}

// bounds normalises possibly negative slice bounds against a length n.
func bounds(n, lower, upper int) (int, int) {
	norm := func(i int) int {
		if i < 0 {
			i += n
		}
		return min(max(i, 0), n)
	}
	lower, upper = norm(lower), norm(upper)
	return lower, max(lower, upper)
}
