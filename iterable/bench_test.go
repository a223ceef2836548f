package iterable_test

import (
	"testing"

	"github.com/hasbyte1/go-reflect-utils/iterable"
)

func makeInts(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func BenchmarkItemAtNegative(b *testing.B) {
	items := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = iterable.ItemAt(items, -1)
	}
}

func BenchmarkSliceSeq(b *testing.B) {
	seq := seqOf(makeInts(10_000)...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = iterable.Slice(seq, 100, 200)
	}
}

func BenchmarkLast(b *testing.B) {
	items := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = iterable.Last(items, nil)
	}
}
