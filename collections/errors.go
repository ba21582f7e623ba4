package collections

import "errors"

// ErrEmptyCollection is returned when an operation requires at least one
// element but the collection is empty.
var ErrEmptyCollection = errors.New("collections: operation on empty collection")
