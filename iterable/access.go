package iterable

import (
	"slices"

	"go.trai.ch/zerr"
)

// First returns the first element of v, or def when v is empty.
// It fails only when v is not iterable.
//
//	First("tests", nil)    // 't'
//	First([]int{}, "none") // "none"
func First(v any, def any) (any, error) {
	seq, err := Values(v)
	if err != nil {
		return nil, err
	}
	for x := range seq {
		return x, nil
	}
	return def, nil
}

// Last returns the last element of v, or def when v is empty.
//
// Last always walks the whole sequence, even when the length is known.
func Last(v any, def any) (any, error) {
	seq, err := Values(v)
	if err != nil {
		return nil, err
	}
	result := def
	for x := range seq {
		result = x
	}
	return result, nil
}

// ItemAt returns the element at index, walking v from the start.
//
// A negative index counts from the end: the length is taken from [Len]
// when known, otherwise the sequence is buffered first. An index that does
// not address an element yields [ErrIndexOutOfRange] (with "index"
// metadata), so a nil element is never confused with a missing one.
func ItemAt(v any, index int) (any, error) {
	seq, err := Values(v)
	if err != nil {
		return nil, err
	}

	pos := index
	if pos < 0 {
		n, ok := Len(v)
		if !ok {
			buffered := slices.Collect(seq)
			n, seq = len(buffered), slices.Values(buffered)
		}
		pos += n
	}

	if pos >= 0 {
		i := 0
		for x := range seq {
			if i == pos {
				return x, nil
			}
			i++
		}
	}
	return nil, zerr.With(zerr.Wrap(ErrIndexOutOfRange, "item at"), "index", index)
}
