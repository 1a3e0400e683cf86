package randgen

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/oasisprotocol/randgen/common/errors"
)

// DefaultMaxLength is the longest sequence or string drawn by default.
const DefaultMaxLength = 32

// Zipf is a truncated Zipf distribution over [0, Max]: the value k is drawn
// with probability proportional to 1/(k+1)^S, so small values, and zero in
// particular, are the most likely.
//
// The zero value always draws 0.
type Zipf struct {
	s   float64
	max int

	// cdf[k] is the probability of drawing a value below k; cdf[0] is 0 and
	// cdf[max+1] is exactly 1.
	cdf []float64
}

// NewZipf creates a new Zipf distribution with exponent s over [0, max].
func NewZipf(s float64, max int) (Zipf, error) {
	if math.IsNaN(s) || math.IsInf(s, 0) || s <= 0 || max < 0 {
		return Zipf{}, errors.WithContext(ErrInvalidArgument, fmt.Sprintf("zipf s=%g max=%d", s, max))
	}

	n := max + 1
	cdf := make([]float64, n+1)
	var total float64
	for k := 0; k < n; k++ {
		total += math.Pow(float64(k+1), -s)
		cdf[k+1] = total
	}
	for k := range cdf {
		cdf[k] /= total
	}
	cdf[n] = 1.0

	return Zipf{s: s, max: max, cdf: cdf}, nil
}

// S returns the exponent.
func (d Zipf) S() float64 {
	return d.s
}

// Max returns the largest value drawn.
func (d Zipf) Max() int {
	return d.max
}

// Probability returns the probability of drawing k.
func (d Zipf) Probability(k int) float64 {
	if k < 0 || k > d.max {
		return 0
	}
	cdf := d.table()
	return cdf[k+1] - cdf[k]
}

// pointMass is the table of the zero value.
var pointMass = []float64{0, 1}

func (d Zipf) table() []float64 {
	if d.cdf == nil {
		return pointMass
	}
	return d.cdf
}

// Sample draws one value.
func (d Zipf) Sample(eng Engine) int {
	cdf := d.table()
	r := generator(eng)
	u := r.Float64()
	return sort.Search(len(cdf)-1, func(k int) bool {
		return u < cdf[k+1]
	})
}

// Equal returns true iff other is a Zipf distribution with the same
// exponent and maximum.
func (d Zipf) Equal(other Distribution[int]) bool {
	o, ok := other.(Zipf)
	return ok && o.s == d.s && o.max == d.max
}

func (d Zipf) String() string {
	return fmt.Sprintf("zipf(s=%g)[0, %d]", d.s, d.max)
}

var defaultSequenceLength = sync.OnceValue(func() Zipf {
	d, err := NewZipf(1.0, DefaultMaxLength)
	if err != nil {
		panic(err)
	}
	return d
})

// DefaultSequenceLength returns the length law of default sequences: a
// Zipf distribution with exponent 1 over [0, DefaultMaxLength], under
// which the empty sequence is the most likely.
func DefaultSequenceLength() Distribution[int] {
	return defaultSequenceLength()
}
