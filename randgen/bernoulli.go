package randgen

import (
	"fmt"
	"math"

	"github.com/oasisprotocol/randgen/common/errors"
)

// Bernoulli is a two-outcome distribution that yields true with
// probability P.
type Bernoulli struct {
	P float64
}

// NewBernoulli creates a new Bernoulli distribution.
func NewBernoulli(p float64) (Bernoulli, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return Bernoulli{}, errors.WithContext(ErrInvalidArgument, fmt.Sprintf("bernoulli probability %g", p))
	}
	return Bernoulli{P: p}, nil
}

// Fair returns the 50/50 Bernoulli distribution.
func Fair() Bernoulli {
	return Bernoulli{P: 0.5}
}

// Sample draws one value.
func (d Bernoulli) Sample(eng Engine) bool {
	r := generator(eng)
	return r.Float64() < d.P
}

// Equal returns true iff other is a Bernoulli distribution with the same P.
func (d Bernoulli) Equal(other Distribution[bool]) bool {
	o, ok := other.(Bernoulli)
	return ok && o.P == d.P
}

func (d Bernoulli) String() string {
	return fmt.Sprintf("bernoulli(p=%g)", d.P)
}
