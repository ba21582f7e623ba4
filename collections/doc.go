// Package collections provides a small generic Collection type whose
// selection and iteration methods are backed by package arr.
//
//	c := collections.New(
//	    Product{Name: "pen", Price: 1.5},
//	    Product{Name: "book", Price: 12},
//	    Product{Name: "mug", Price: 12},
//	)
//	top, _ := c.Max(func(p Product) float64 { return p.Price }) // → book (first of the tie)
//	_, err := collections.Empty[Product]().MaxOrFail(nil)      // → ErrEmptyCollection
//
// The collection copies its input on construction and is never modified
// afterwards.
//
// Package-level functions: [MaxBy], [MinBy], [MaxByIndex], [MinByIndex].
package collections
