package collections

import "github.com/hasbyte1/go-toolkit/arr"

// Go generics do not allow methods to introduce their own type parameters, so
// selection by an arbitrary numeric score lives in package-level functions.

// MaxBy returns the item of c with the largest score.
//
//	longest, _ := collections.MaxBy(words, func(s string) int { return len(s) })
func MaxBy[T any, N arr.Number](c *Collection[T], score func(T) N) (T, bool) {
	return arr.MaxBy(c.items, score)
}

// MinBy returns the item of c with the smallest score.
func MinBy[T any, N arr.Number](c *Collection[T], score func(T) N) (T, bool) {
	return arr.MinBy(c.items, score)
}

// MaxByIndex returns the index of the item of c with the largest score, or
// -1 for an empty collection. The item is then available through
// [Collection.Get].
func MaxByIndex[T any, N arr.Number](c *Collection[T], score func(T) N) int {
	return arr.MaxByIndex(c.items, score)
}

// MinByIndex returns the index of the item of c with the smallest score, or
// -1 for an empty collection.
func MinByIndex[T any, N arr.Number](c *Collection[T], score func(T) N) int {
	return arr.MinByIndex(c.items, score)
}
