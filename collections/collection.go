package collections

import "github.com/hasbyte1/go-toolkit/arr"

// Collection is a generic wrapper around a private copy of a slice of T.
//
// No method modifies the collection, so a single value may be read from
// several goroutines without locking.
//
//	c := collections.New(3, 1, 4, 1, 5)
//	top, _ := c.Max(func(n int) float64 { return float64(n) }) // → 5
//
// Methods take float64 scores. Use the package-level [MaxBy] and [MinBy] for
// integer or float32 scores.
type Collection[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] {
	return From(items)
}

// From creates a Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Collection[T]{items: dst}
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{items: []T{}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (c *Collection[T]) All() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Count returns the number of items in the collection.
func (c *Collection[T]) Count() int { return len(c.items) }

// IsEmpty reports whether the collection contains no items.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// Get returns the item at index together with a presence flag.
func (c *Collection[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(c.items) {
		return zero, false
	}
	return c.items[index], true
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn for every item, first to last.
func (c *Collection[T]) Each(fn func(T, int)) { arr.ForEach(c.items, fn) }

// EachRight calls fn for every item, last to first, with each item's
// original index.
func (c *Collection[T]) EachRight(fn func(T, int)) { arr.ForEachRight(c.items, fn) }

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Sum returns the sum of all items using fn to extract numeric values.
func (c *Collection[T]) Sum(fn func(T) float64) float64 {
	var sum float64
	c.Each(func(item T, _ int) { sum += fn(item) })
	return sum
}

// Average returns the arithmetic mean of all items, or 0 for an empty
// collection.
func (c *Collection[T]) Average(fn func(T) float64) float64 {
	if len(c.items) == 0 {
		return 0
	}
	return c.Sum(fn) / float64(len(c.items))
}

// Max returns the item with the largest value extracted by fn.
// Returns the zero value and false if the collection is empty.
// Ties and NaN values are resolved as by [arr.MaxBy].
func (c *Collection[T]) Max(fn func(T) float64) (T, bool) { return arr.MaxBy(c.items, fn) }

// Min returns the item with the smallest value extracted by fn.
// Returns the zero value and false if the collection is empty.
func (c *Collection[T]) Min(fn func(T) float64) (T, bool) { return arr.MinBy(c.items, fn) }

// MaxOrFail is like [Collection.Max] but returns [ErrEmptyCollection]
// instead of a presence flag.
func (c *Collection[T]) MaxOrFail(fn func(T) float64) (T, error) {
	item, ok := c.Max(fn)
	if !ok {
		return item, ErrEmptyCollection
	}
	return item, nil
}

// MinOrFail is like [Collection.Min] but returns [ErrEmptyCollection]
// instead of a presence flag.
func (c *Collection[T]) MinOrFail(fn func(T) float64) (T, error) {
	item, ok := c.Min(fn)
	if !ok {
		return item, ErrEmptyCollection
	}
	return item, nil
}
