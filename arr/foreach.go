package arr

// ForEach calls fn for every element of items, from the first to the last.
func ForEach[T any](items []T, fn func(T, int)) {
	for i, item := range items {
		fn(item, i)
	}
}

// ForEachRight calls fn for every element of items, from the last to the
// first. The index passed to fn is the element's position in items.
//
//	arr.ForEachRight([]string{"a", "b", "c"}, func(s string, i int) {
//	    fmt.Print(i, s, " ")
//	}) // → 2c 1b 0a
func ForEachRight[T any](items []T, fn func(T, int)) {
	for i := len(items) - 1; i >= 0; i-- {
		fn(items[i], i)
	}
}
