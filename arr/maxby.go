package arr

import "math"

// MaxBy returns the element of items with the largest score.
// Returns the zero value and false if items is empty.
//
// score is called exactly once per element, in order. When several elements
// share the largest score the first of them is returned. A NaN score never
// replaces the running maximum; when no score rises above negative infinity
// items[0] is returned:
//
//	arr.MaxBy([]float64{1, 2}, func(float64) float64 { return math.NaN() }) // → 1, true
func MaxBy[T any, N Number](items []T, score func(T) N) (T, bool) {
	i := MaxByIndex(items, score)
	if i < 0 {
		var zero T
		return zero, false
	}
	return items[i], true
}

// MaxByIndex is like [MaxBy] but returns the index of the winning element,
// or -1 if items is empty.
func MaxByIndex[T any, N Number](items []T, score func(T) N) int {
	if len(items) == 0 {
		return -1
	}
	// Until bounded, the running maximum is -Inf and best is the initial guess.
	best, bounded := 0, false
	var top N
	for i, item := range items {
		v := score(item)
		if bounded && v > top || !bounded && aboveNegInf(v) {
			top, best, bounded = v, i, true
		}
	}
	return best
}

// MustMaxBy is like [MaxBy] for callers that know items is non-empty.
// It panics with [ErrEmptySlice] otherwise.
func MustMaxBy[T any, N Number](items []T, score func(T) N) T {
	i := MaxByIndex(items, score)
	if i < 0 {
		panic(ErrEmptySlice)
	}
	return items[i]
}

// TryMaxBy is like [MaxBy] for scoring functions that can fail. The scan
// stops at the first error, which is returned unchanged along with the zero
// value and false.
func TryMaxBy[T any, N Number](items []T, score func(T) (N, error)) (T, bool, error) {
	var zero T
	if len(items) == 0 {
		return zero, false, nil
	}
	best, bounded := 0, false
	var top N
	for i, item := range items {
		v, err := score(item)
		if err != nil {
			return zero, false, err
		}
		if bounded && v > top || !bounded && aboveNegInf(v) {
			top, best, bounded = v, i, true
		}
	}
	return items[best], true, nil
}

// aboveNegInf reports v > -Inf. It is false only for NaN and -Inf, and
// always true for integer types.
func aboveNegInf[N Number](v N) bool {
	return float64(v) > math.Inf(-1)
}
