package arr_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-toolkit/arr"
)

func TestMinByEmpty(t *testing.T) {
	calls := 0
	v, ok := arr.MinBy([]int{}, func(n int) int { calls++; return n })
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.Equal(t, -1, arr.MinByIndex([]int(nil), func(n int) int { calls++; return n }))
	assert.Zero(t, calls)
}

func TestMinBy(t *testing.T) {
	tests := []struct {
		name  string
		items []float64
		want  int
	}{
		{"ascending", []float64{1, 2, 3}, 0},
		{"descending", []float64{3, 2, 1}, 2},
		{"tie", []float64{4, 1, 1}, 1},
		{"all positive infinity", []float64{math.Inf(1), math.Inf(1)}, 0},
		{"positive infinity then real", []float64{math.Inf(1), 1e300}, 1},
		{"NaN first", []float64{math.NaN(), 5, 3}, 2},
		{"NaN between", []float64{2, math.NaN(), 3}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, arr.MinByIndex(tt.items, func(f float64) float64 { return f }))
		})
	}
}

func TestMinByFirstWinsTie(t *testing.T) {
	ptrs := []*point{{a: 2}, {a: 0}, {a: 0}}
	got, ok := arr.MinBy(ptrs, func(p *point) int { return p.a })
	require.True(t, ok)
	assert.Same(t, ptrs[1], got)
}

func TestMinByAllNaN(t *testing.T) {
	v, ok := arr.MinBy([]int{1, 2}, func(int) float64 { return math.NaN() })
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestMinByCallOrder(t *testing.T) {
	var seen []int
	arr.MinBy([]int{10, 20, 30}, func(n int) int {
		seen = append(seen, n)
		return n
	})
	assert.Equal(t, []int{10, 20, 30}, seen)
}

func TestMustMinBy(t *testing.T) {
	assert.Equal(t, "g", arr.MustMinBy([]string{"go", "gopher", "g"}, func(s string) int { return len(s) }))
	assert.PanicsWithValue(t, arr.ErrEmptySlice, func() {
		arr.MustMinBy[string, int](nil, func(s string) int { return len(s) })
	})
}

func TestTryMinBy(t *testing.T) {
	errBad := errors.New("bad element")
	v, ok, err := arr.TryMinBy([]int{5, -2, 7}, func(n int) (int, error) { return n, nil })
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, -2, v)

	calls := 0
	_, ok, err = arr.TryMinBy([]int{5, -2, 7}, func(n int) (int, error) {
		calls++
		return 0, errBad
	})
	assert.ErrorIs(t, err, errBad)
	assert.False(t, ok)
	assert.Equal(t, 1, calls)
}

func TestMaxMinDuality(t *testing.T) {
	inputs := [][]float64{
		{1},
		{3, 1, 2},
		{2, 2, 2},
		{-1, math.Inf(-1), math.Inf(1)},
		{math.NaN(), 4, math.NaN(), 4},
		{math.NaN(), math.NaN()},
		{0, math.Copysign(0, -1)},
	}
	for _, items := range inputs {
		f := func(x float64) float64 { return x }
		neg := func(x float64) float64 { return -f(x) }
		assert.Equal(t, arr.MaxByIndex(items, f), arr.MinByIndex(items, neg), "items=%v", items)
	}
}

func FuzzMaxMinDuality(f *testing.F) {
	f.Add([]byte{1, 3, 3, 2})
	f.Add([]byte{0})
	f.Add([]byte{255, 0, 255})
	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) == 0 {
			return
		}
		items := make([]int, len(data))
		for i, b := range data {
			items[i] = int(b) - 128
		}
		score := func(n int) int { return n }
		maxIdx := arr.MaxByIndex(items, score)
		minIdx := arr.MinByIndex(items, func(n int) int { return -score(n) })
		if maxIdx != minIdx {
			t.Fatalf("MaxByIndex = %d, MinByIndex of negated = %d for %v", maxIdx, minIdx, items)
		}
		for i, n := range items {
			if n > items[maxIdx] || (n == items[maxIdx] && i < maxIdx) {
				t.Fatalf("index %d (%d) beats chosen index %d (%d)", i, n, maxIdx, items[maxIdx])
			}
		}
	})
}
