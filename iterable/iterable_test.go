package iterable_test

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"reflect"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-reflect-utils/iterable"
)

// ─────────────────────────────────────────────────────────────────────────────
// Fixtures
// ─────────────────────────────────────────────────────────────────────────────

// bag is a custom container that can be rebuilt by Slice.
type bag struct{ items []any }

func (b *bag) All() iter.Seq[any] { return slices.Values(b.items) }

func (b *bag) Len() int { return len(b.items) }

func (b *bag) Rebuild(values []any) (any, error) { return &bag{items: values}, nil }

// stubborn refuses to be rebuilt.
type stubborn struct{ bag }

func (s *stubborn) Rebuild([]any) (any, error) { return nil, errors.New("no") }

type label string

func chanOf(values ...int) <-chan int {
	ch := make(chan int, len(values))
	for _, v := range values {
		ch <- v
	}
	close(ch)
	return ch
}

func seqOf(values ...int) iter.Seq[int] { return slices.Values(values) }

// ─────────────────────────────────────────────────────────────────────────────
// Values / IsIterable / EnsureIterable
// ─────────────────────────────────────────────────────────────────────────────

func TestValues(t *testing.T) {
	arr := [3]int{1, 2, 3}
	tests := []struct {
		name  string
		value any
		want  []any
	}{
		{"slice", []int{1, 2, 3}, []any{1, 2, 3}},
		{"any slice", []any{"a", nil}, []any{"a", nil}},
		{"string runes", "hé", []any{'h', 'é'}},
		{"named string", label("ab"), []any{'a', 'b'}},
		{"array", arr, []any{1, 2, 3}},
		{"pointer to array", &arr, []any{1, 2, 3}},
		{"map keys sorted", map[string]int{"b": 2, "a": 1, "c": 3}, []any{"a", "b", "c"}},
		{"int map keys sorted", map[int]bool{3: true, 1: true, 2: false}, []any{1, 2, 3}},
		{"channel", chanOf(4, 5), []any{4, 5}},
		{"typed seq", seqOf(7, 8), []any{7, 8}},
		{"seq2 yields keys", maps.All(map[string]int{"k": 1}), []any{"k"}},
		{"custom sequence", &bag{items: []any{1, "x"}}, []any{1, "x"}},
		{"nil slice", []int(nil), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := iterable.Values(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, slices.Collect(seq))
		})
	}
}

func TestValues_NotIterable(t *testing.T) {
	var nilFn func(func(int) bool)
	sendOnly := make(chan<- int)
	for _, v := range []any{nil, 42, 3.5, struct{}{}, func() {}, nilFn, sendOnly, (*[2]int)(nil)} {
		_, err := iterable.Values(v)
		assert.ErrorIs(t, err, iterable.ErrNotIterable, "%T", v)
	}
}

func TestValues_NilSequence(t *testing.T) {
	var b *bag
	assert.NotPanics(t, func() {
		_, err := iterable.Values(b)
		assert.ErrorIs(t, err, iterable.ErrNotIterable)
	})
	assert.False(t, iterable.IsIterable(b))
	assert.Equal(t, []any{b}, iterable.EnsureIterable(b, nil))

	n, ok := iterable.Len(b)
	assert.False(t, ok)
	assert.Zero(t, n)
}

func TestValues_StopsEarly(t *testing.T) {
	calls := 0
	seq := func(yield func(int) bool) {
		for i := range 10 {
			calls++
			if !yield(i) {
				return
			}
		}
	}
	first, err := iterable.First(seq, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, calls)
}

func TestIsIterable(t *testing.T) {
	assert.True(t, iterable.IsIterable([]int{}))
	assert.True(t, iterable.IsIterable(map[string]int{}))
	assert.True(t, iterable.IsIterable(""))
	assert.False(t, iterable.IsIterable(nil))
	assert.False(t, iterable.IsIterable(1))

	assert.False(t, iterable.IsIterable([]int{}, reflect.TypeFor[[]int]()))
	assert.False(t, iterable.IsIterable("abc", reflect.TypeFor[int](), reflect.TypeFor[string]()))
	assert.True(t, iterable.IsIterable([]int{}, reflect.TypeFor[string]()))
	assert.True(t, iterable.IsIterable([]int{}, nil))

	seqType := reflect.TypeFor[iterable.Sequence]()
	assert.False(t, iterable.IsIterable(&bag{}, seqType), "interface exclusion covers implementations")
}

func TestEnsureIterable(t *testing.T) {
	assert.Equal(t, []any{}, iterable.EnsureIterable([]int{}, nil))
	assert.Equal(t, []any{1, 2}, iterable.EnsureIterable([]int{1, 2}, nil))
	assert.Equal(t, []any{'a', 'b'}, iterable.EnsureIterable("ab", nil))
	assert.Equal(t, []any{"ab"}, iterable.EnsureIterable("ab", nil, reflect.TypeFor[string]()))
	assert.Equal(t, []any{7}, iterable.EnsureIterable(7, nil))
	assert.Equal(t, []any{nil}, iterable.EnsureIterable(nil, nil))

	set := iterable.EnsureIterable([]any{1, 1, 2, []int{3}}, iterable.ToSet)
	assert.Equal(t, map[any]struct{}{1: {}, 2: {}}, set)

	count := iterable.EnsureIterable([]int{1, 2, 3}, func(values []any) any { return len(values) })
	assert.Equal(t, 3, count)
}

func TestEnsure(t *testing.T) {
	got, err := iterable.Ensure[string]("abc")
	require.NoError(t, err)
	assert.Equal(t, []string{"abc"}, got)

	src := []int{1, 2}
	ints, err := iterable.Ensure[int](src)
	require.NoError(t, err)
	src[0] = 9
	assert.Equal(t, []int{1, 2}, ints, "slices are copied")

	ints, err = iterable.Ensure[int](map[int]string{2: "b", 1: "a"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ints)

	anys, err := iterable.Ensure[any]("ab")
	require.NoError(t, err)
	assert.Equal(t, []any{'a', 'b'}, anys)

	anys, err = iterable.Ensure[any](nil)
	require.NoError(t, err)
	assert.Equal(t, []any{nil}, anys)

	_, err = iterable.Ensure[string]([]any{"a", 1})
	assert.ErrorIs(t, err, iterable.ErrElementType)

	_, err = iterable.Ensure[string](42)
	assert.ErrorIs(t, err, iterable.ErrElementType)
}

func TestLen(t *testing.T) {
	arr := [4]int{}
	tests := []struct {
		value  any
		want   int
		wantOK bool
	}{
		{"héllo", 5, true},
		{[]int{1, 2}, 2, true},
		{arr, 4, true},
		{&arr, 4, true},
		{map[int]int{1: 1}, 1, true},
		{&bag{items: []any{1}}, 1, true},
		{seqOf(1, 2), 0, false},
		{chanOf(1), 0, false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%T", tt.value), func(t *testing.T) {
			n, ok := iterable.Len(tt.value)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, n)
		})
	}
}
