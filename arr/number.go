package arr

import "golang.org/x/exp/constraints"

// Number is the set of score types accepted by [MaxBy], [MinBy] and their
// variants. Derived types such as `type Score float64` are included.
type Number interface {
	constraints.Integer | constraints.Float
}
