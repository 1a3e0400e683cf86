package randgen

import (
	"fmt"
	"math/rand"

	gofuzz "github.com/google/gofuzz"
)

var _ rand.Source64 = (*v1Source)(nil)

// Fuzzed draws values of any type by filling them with gofuzz, driven by
// the engine. Unlike Default it also reaches maps, pointers and unexported
// fields, so it is never chosen implicitly.
type Fuzzed[T any] struct {
	// NilChance is the probability of leaving a pointer, map or slice nil.
	NilChance float64
	// MinElements and MaxElements bound the length of maps and slices.
	MinElements int
	MaxElements int
}

// NewFuzzed creates a new fuzzed distribution with gofuzz's defaults.
func NewFuzzed[T any]() Fuzzed[T] {
	return Fuzzed[T]{
		NilChance:   0.2,
		MinElements: 1,
		MaxElements: 10,
	}
}

// Sample draws one value.
func (d Fuzzed[T]) Sample(eng Engine) T {
	var v T
	gofuzz.New().
		RandSource(&v1Source{eng: eng}).
		NilChance(d.NilChance).
		NumElements(d.MinElements, d.MaxElements).
		Fuzz(&v)
	return v
}

// Equal returns true iff other is a fuzzed distribution with the same
// parameters.
func (d Fuzzed[T]) Equal(other Distribution[T]) bool {
	o, ok := other.(Fuzzed[T])
	return ok && o == d
}

func (d Fuzzed[T]) String() string {
	return fmt.Sprintf("fuzzed(nil=%g, elements=[%d, %d])", d.NilChance, d.MinElements, d.MaxElements)
}

// v1Source presents an engine as a math/rand source, as gofuzz requires.
type v1Source struct {
	eng Engine
}

func (s *v1Source) Int63() int64 {
	return int64(s.eng.Uint64() & ((1 << 63) - 1))
}

func (s *v1Source) Seed(int64) {
	// The engine is seeded by its owner.
}

func (s *v1Source) Uint64() uint64 {
	return s.eng.Uint64()
}
