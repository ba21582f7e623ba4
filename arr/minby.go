package arr

import "math"

// MinBy returns the element of items with the smallest score.
// Returns the zero value and false if items is empty.
//
// It mirrors [MaxBy]: one call to score per element, in order, the first of
// several equally small elements wins, and NaN scores never win a
// comparison.
func MinBy[T any, N Number](items []T, score func(T) N) (T, bool) {
	i := MinByIndex(items, score)
	if i < 0 {
		var zero T
		return zero, false
	}
	return items[i], true
}

// MinByIndex is like [MinBy] but returns the index of the winning element,
// or -1 if items is empty.
func MinByIndex[T any, N Number](items []T, score func(T) N) int {
	if len(items) == 0 {
		return -1
	}
	// Until bounded, the running minimum is +Inf and best is the initial guess.
	best, bounded := 0, false
	var bottom N
	for i, item := range items {
		v := score(item)
		if bounded && v < bottom || !bounded && belowPosInf(v) {
			bottom, best, bounded = v, i, true
		}
	}
	return best
}

// MustMinBy is like [MinBy] for callers that know items is non-empty.
// It panics with [ErrEmptySlice] otherwise.
func MustMinBy[T any, N Number](items []T, score func(T) N) T {
	i := MinByIndex(items, score)
	if i < 0 {
		panic(ErrEmptySlice)
	}
	return items[i]
}

// TryMinBy is like [MinBy] for scoring functions that can fail. The scan
// stops at the first error, which is returned unchanged.
func TryMinBy[T any, N Number](items []T, score func(T) (N, error)) (T, bool, error) {
	var zero T
	if len(items) == 0 {
		return zero, false, nil
	}
	best, bounded := 0, false
	var bottom N
	for i, item := range items {
		v, err := score(item)
		if err != nil {
			return zero, false, err
		}
		if bounded && v < bottom || !bounded && belowPosInf(v) {
			bottom, best, bounded = v, i, true
		}
	}
	return items[best], true, nil
}

func belowPosInf[N Number](v N) bool {
	return float64(v) < math.Inf(1)
}
