package random

import "golang.org/x/exp/constraints"

// Float is satisfied only by types whose underlying type is float32 or
// float64. Integer types cannot instantiate it, even where a conversion
// would be legal.
type Float interface {
	constraints.Float
}
