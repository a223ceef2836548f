// Package iterable provides element access helpers that work on any
// iterable value: strings, slices, arrays, maps, channels, range-over-func
// sequences and custom [Sequence] implementations.
//
// # Introspection
//
//	iterable.IsIterable([]int{1, 2})                         // true
//	iterable.IsIterable("abc", reflect.TypeFor[string]())    // false: excluded
//	iterable.EnsureIterable(42, nil)                         // []any{42}
//
// # Element access
//
// [First] and [Last] take a default returned for empty values. [ItemAt]
// accepts negative indices and reports a missing element with
// [ErrIndexOutOfRange]:
//
//	iterable.First("go", nil)         // 'g'
//	iterable.Last([]int{}, -1)        // -1
//	iterable.ItemAt([]int{1, 2, 3}, -1) // 3
//
// # Slicing
//
// [Slice] accepts negative bounds, clamps out-of-range ones and
// returns a container shaped like its input where it can:
//
//	iterable.Slice("héllo", 1, 3)               // "él"
//	iterable.Slice([]int{1, 2, 3, 4}, -2, iterable.MaxIndex) // []int{3, 4}
//
// # Typed sequences
//
// [Head], [Tail], [At] and [Window] are the generic counterparts for code
// that already holds an iter.Seq[T].
//
// Strings are sequences of runes throughout the package. Map iteration
// yields keys, in sorted order when the key kind is ordered. Iterating a
// channel consumes it.
package iterable
