package randgen

import (
	"fmt"
	"math"
	"reflect"

	"golang.org/x/exp/constraints"

	"github.com/oasisprotocol/randgen/common/errors"
)

// Uniform is a uniform distribution over the closed integer interval
// [Min, Max].
type Uniform[T constraints.Integer] struct {
	Min T
	Max T
}

// NewUniform creates a new uniform distribution over [min, max].
func NewUniform[T constraints.Integer](min, max T) (Uniform[T], error) {
	if min > max {
		return Uniform[T]{}, errors.WithContext(ErrInvalidArgument, fmt.Sprintf("uniform bounds [%d, %d]", min, max))
	}
	return Uniform[T]{Min: min, Max: max}, nil
}

// FullRange returns the uniform distribution over every value of T.
func FullRange[T constraints.Integer]() Uniform[T] {
	min, max := integerBounds[T]()
	return Uniform[T]{Min: min, Max: max}
}

// Sample draws one value.
func (d Uniform[T]) Sample(eng Engine) T {
	// Two's complement arithmetic in uint64 handles signed and unsigned
	// bounds alike.
	span := uint64(d.Max) - uint64(d.Min)
	if span == math.MaxUint64 {
		return T(eng.Uint64())
	}
	r := generator(eng)
	return T(uint64(d.Min) + r.Uint64N(span+1))
}

// Equal returns true iff other is a uniform distribution with the same bounds.
func (d Uniform[T]) Equal(other Distribution[T]) bool {
	o, ok := other.(Uniform[T])
	return ok && o == d
}

func (d Uniform[T]) String() string {
	return fmt.Sprintf("uniform[%d, %d]", d.Min, d.Max)
}

func integerBounds[T constraints.Integer]() (T, T) {
	var zero T
	if ones := ^zero; ones > zero {
		return zero, ones
	}
	min := T(1) << (reflect.TypeFor[T]().Bits() - 1)
	return min, ^min
}

// UniformReal is a uniform distribution over the floating point interval
// [Min, Max].
type UniformReal[T constraints.Float] struct {
	Min T
	Max T
}

// NewUniformReal creates a new uniform distribution over [min, max].
func NewUniformReal[T constraints.Float](min, max T) (UniformReal[T], error) {
	lo, hi := float64(min), float64(max)
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo > hi {
		return UniformReal[T]{}, errors.WithContext(ErrInvalidArgument, fmt.Sprintf("uniform real bounds [%g, %g]", lo, hi))
	}
	return UniformReal[T]{Min: min, Max: max}, nil
}

// FullRangeReal returns the uniform distribution over all finite values
// of T.
func FullRangeReal[T constraints.Float]() UniformReal[T] {
	max := math.MaxFloat64
	if reflect.TypeFor[T]().Bits() == 32 {
		max = math.MaxFloat32
	}
	return UniformReal[T]{Min: T(-max), Max: T(max)}
}

// Sample draws one value.
func (d UniformReal[T]) Sample(eng Engine) T {
	r := generator(eng)
	u := r.Float64()
	// Interpolate rather than scale the width, which overflows for the full
	// range.
	v := float64(d.Min)*(1-u) + float64(d.Max)*u
	return T(v)
}

// Equal returns true iff other is a uniform distribution with the same bounds.
func (d UniformReal[T]) Equal(other Distribution[T]) bool {
	o, ok := other.(UniformReal[T])
	return ok && o == d
}

func (d UniformReal[T]) String() string {
	return fmt.Sprintf("uniform[%g, %g]", float64(d.Min), float64(d.Max))
}
