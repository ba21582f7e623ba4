// Package arr provides standalone generic helpers for Go slices, written as
// drop-in replacements for the equivalent functions of general-purpose
// utility libraries such as github.com/samber/lo.
//
// # Selecting by score
//
// [MaxBy] and [MinBy] pick the element with the largest or smallest derived
// numeric score in a single pass:
//
//	oldest, ok := arr.MaxBy(users, func(u User) int { return u.Age })
//	cheapest, ok := arr.MinBy(items, func(i Item) float64 { return i.Price })
//
// The scoring function is called exactly once per element, in order, and the
// first element reaching the extreme score wins ties. An empty slice yields
// the zero value and false; it is never an error.
//
// Variants cover the remaining call shapes:
//
//   - [MaxByIndex], [MinByIndex] return the winning index, or -1.
//   - [MustMaxBy], [MustMinBy] return a bare value and panic with
//     [ErrEmptySlice] when the caller's non-empty guarantee is broken.
//   - [TryMaxBy], [TryMinBy] accept a scoring function that returns an error
//     and stop at the first failure.
//
// # Iteration
//
// [ForEach] and [ForEachRight] visit every element front-to-back and
// back-to-front respectively, passing each element's original index.
//
// No helper modifies its input slice.
package arr
