// Package dice provides the randomness abstraction shared by the geoscape
// simulation: a Source of uniform integers and the helpers built on it.
package dice

// Source is the randomness provider for every random draw in the simulation.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// Generate returns a uniform random int in the inclusive range [min, max].
//
// Precondition: max >= min; src must be non-nil.
// Postcondition: min <= result <= max.
func Generate(src Source, min, max int) int {
	if max < min {
		panic("dice: Generate called with max < min")
	}
	return min + src.Intn(max-min+1)
}

// Pick returns a uniformly chosen element of items.
// It returns the zero value and false when items is empty, without drawing.
//
// Precondition: src must be non-nil.
// Postcondition: ok is true iff len(items) > 0; when ok, v is an element of items.
func Pick[T any](src Source, items []T) (v T, ok bool) {
	if len(items) == 0 {
		return v, false
	}
	return items[Generate(src, 0, len(items)-1)], true
}
