package arr

import "errors"

// ErrEmptySlice is the panic value of [MustMaxBy] and [MustMinBy] when they
// are called with an empty slice.
var ErrEmptySlice = errors.New("arr: operation on empty slice")
