// Package randgen implements composable random value generators for
// property-based and fuzz-style testing.
//
// A Distribution shapes the raw words of an Engine into values of one type.
// A Variable binds an engine to a distribution so values can be drawn with
// no arguments. Default resolves a canonical distribution for a type from
// its shape, recursing into the components of structured types:
//
//	eng := engine.NewPCG(42)
//	v := randgen.MustDefaultVariable[[]int32](eng)
//	xs := v.Next()
//
// Distributions are immutable value objects: drawing only advances the
// engine. Engines are not synchronized, so a session should own its engine.
package randgen

import (
	"math/rand/v2"

	"golang.org/x/exp/constraints"

	"github.com/oasisprotocol/randgen/common/errors"
	"github.com/oasisprotocol/randgen/common/logging"
)

// ModuleName is the module name used for error registration and logging.
const ModuleName = "randgen"

var (
	// ErrUnclassified is the error returned when a type has no default
	// distribution.
	ErrUnclassified = errors.New(ModuleName, 1, "randgen: no default distribution for type")
	// ErrEmptyCollection is the error returned when a position distribution
	// is bound to an empty collection.
	ErrEmptyCollection = errors.New(ModuleName, 2, "randgen: collection is empty")
	// ErrInvalidArgument is the error returned for invalid distribution
	// parameters.
	ErrInvalidArgument = errors.New(ModuleName, 3, "randgen: invalid distribution parameter")

	logger = logging.GetLogger(ModuleName)
)

// Engine is a stateful source of uniformly distributed 64-bit words.
//
// Any math/rand/v2 Source is an Engine.
type Engine interface {
	Uint64() uint64
}

// Distribution shapes engine output into values of type T.
type Distribution[T any] interface {
	// Sample draws one value, advancing the engine.
	Sample(eng Engine) T

	// Equal returns true iff other is the same generator configuration,
	// i.e. it is of the same type and all of its parameters are equal.
	Equal(other Distribution[T]) bool
}

// Number is the set of types with a uniform default distribution.
type Number interface {
	constraints.Integer | constraints.Float
}

// generator wraps eng in a math/rand/v2 generator held by value, so a draw
// does not allocate.
func generator(eng Engine) rand.Rand {
	return *rand.New(eng)
}

// sameDistribution is Equal extended to unset distributions.
func sameDistribution[T any](a, b Distribution[T]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}
