package iterable_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"

	"github.com/hasbyte1/go-reflect-utils/iterable"
)

func TestFirst(t *testing.T) {
	tests := []struct {
		name  string
		value any
		def   any
		want  any
	}{
		{"string", "tests", nil, 't'},
		{"empty string", "", "none", "none"},
		{"slice", []int{5, 6}, nil, 5},
		{"empty slice", []int{}, -1, -1},
		{"nil element", []any{nil, 1}, "def", nil},
		{"map", map[string]int{"z": 1, "a": 2}, nil, "a"},
		{"channel", chanOf(9, 8), nil, 9},
		{"seq", seqOf(3), nil, 3},
		{"empty sequence", &bag{}, "empty", "empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := iterable.First(tt.value, tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLast(t *testing.T) {
	tests := []struct {
		name  string
		value any
		def   any
		want  any
	}{
		{"string", "tests", nil, 's'},
		{"empty string", "", "none", "none"},
		{"slice", []int{5, 6}, nil, 6},
		{"nil element", []any{1, nil}, "def", nil},
		{"array", [2]string{"a", "b"}, nil, "b"},
		{"channel", chanOf(9, 8), nil, 8},
		{"seq", seqOf(), 0, 0},
		{"sequence", &bag{items: []any{1, 2, 3}}, nil, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := iterable.Last(tt.value, tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFirstLast_NotIterable(t *testing.T) {
	_, err := iterable.First(42, nil)
	assert.ErrorIs(t, err, iterable.ErrNotIterable)

	_, err = iterable.Last(nil, "x")
	assert.ErrorIs(t, err, iterable.ErrNotIterable)

	var zerrErr *zerr.Error
	require.True(t, errors.As(err, &zerrErr))
	assert.Equal(t, "<nil>", zerrErr.Metadata()["type"])
}

func TestItemAt(t *testing.T) {
	tests := []struct {
		name  string
		value any
		index int
		want  any
	}{
		{"string", "abc", 1, 'b'},
		{"string negative", "abc", -1, 'c'},
		{"slice", []int{1, 2, 3}, 0, 1},
		{"slice negative", []int{1, 2, 3}, -3, 1},
		{"map", map[int]string{2: "b", 1: "a"}, 1, 2},
		{"channel", chanOf(1, 2, 3), 2, 3},
		{"channel negative", chanOf(1, 2, 3), -2, 2},
		{"seq negative", seqOf(4, 5, 6), -1, 6},
		{"sequence negative", &bag{items: []any{"x", "y"}}, -2, "x"},
		{"nil element", []any{nil}, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := iterable.ItemAt(tt.value, tt.index)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestItemAt_OutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		value any
		index int
	}{
		{"past end", []int{1, 2}, 2},
		{"before start", []int{1, 2}, -3},
		{"empty", "", 0},
		{"seq past end", seqOf(1), 5},
		{"seq before start", seqOf(1), -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := iterable.ItemAt(tt.value, tt.index)
			require.ErrorIs(t, err, iterable.ErrIndexOutOfRange)

			var zerrErr *zerr.Error
			require.True(t, errors.As(err, &zerrErr))
			assert.Equal(t, tt.index, zerrErr.Metadata()["index"])
		})
	}

	_, err := iterable.ItemAt(3.14, 0)
	assert.ErrorIs(t, err, iterable.ErrNotIterable)
}
