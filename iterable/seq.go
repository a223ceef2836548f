package iterable

import (
	"iter"
	"slices"
)

// This file contains typed counterparts of First, Last, ItemAt and Slice for
// callers that already hold an iter.Seq[T]. They never fail: emptiness and
// out-of-range indices are reported through the boolean result.

// Head returns the first value of seq.
func Head[T any](seq iter.Seq[T]) (T, bool) {
	for v := range seq {
		return v, true
	}
	var zero T
	return zero, false
}

// Tail returns the last value of seq, walking all of it.
func Tail[T any](seq iter.Seq[T]) (T, bool) {
	var (
		last T
		ok   bool
	)
	for v := range seq {
		last, ok = v, true
	}
	return last, ok
}

// At returns the value at index. Negative indices count from the end and
// buffer seq.
func At[T any](seq iter.Seq[T], index int) (T, bool) {
	var zero T
	if index < 0 {
		all := slices.Collect(seq)
		index += len(all)
		if index < 0 {
			return zero, false
		}
		return all[index], true
	}
	i := 0
	for v := range seq {
		if i == index {
			return v, true
		}
		i++
	}
	return zero, false
}

// Window returns a lazy sequence over the values of seq at positions
// [lower, upper). Negative bounds count from the end; in that case seq is
// buffered when the window is ranged over.
func Window[T any](seq iter.Seq[T], lower, upper int) iter.Seq[T] {
	if lower < 0 || upper < 0 {
		return func(yield func(T) bool) {
			all := slices.Collect(seq)
			from, to := bounds(len(all), lower, upper)
			for _, v := range all[from:to] {
				if !yield(v) {
					return
				}
			}
		}
	}
	return func(yield func(T) bool) {
		if lower >= upper {
			return
		}
		i := 0
		for v := range seq {
			if i >= upper {
				return
			}
			if i >= lower && !yield(v) {
				return
			}
			i++
		}
	}
}
