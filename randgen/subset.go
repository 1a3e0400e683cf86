package randgen

import (
	"fmt"
	"math/rand/v2"

	"github.com/oasisprotocol/randgen/common/errors"
)

// Subset draws N distinct values from the half-open interval [0, M), in
// the order picked. This is a partial Fisher-Yates shuffle that takes
// O(N) memory, so M may be very large.
type Subset struct {
	N int64
	M int64
}

// NewSubset creates a new subset distribution. It requires 0 <= n <= m.
func NewSubset(n, m int64) (Subset, error) {
	if n < 0 || m < 0 || n > m {
		return Subset{}, errors.WithContext(ErrInvalidArgument, fmt.Sprintf("subset of %d from %d", n, m))
	}
	return Subset{N: n, M: m}, nil
}

// Sample draws one subset.
func (d Subset) Sample(eng Engine) []int64 {
	if d.N < 0 || d.N > d.M {
		panic(fmt.Sprintf("randgen: subset of %d from %d", d.N, d.M))
	}

	r := rand.New(eng)
	ret := make([]int64, 0, d.N)
	// replace holds the displaced values of the virtual permutation of
	// [0, M); absent keys map to themselves.
	replace := make(map[int64]int64)
	at := func(k int64) int64 {
		if v, ok := replace[k]; ok {
			return v
		}
		return k
	}
	for i := int64(0); i < d.N; i++ {
		j := i + r.Int64N(d.M-i)
		picked := at(j)
		replace[j] = at(i)
		ret = append(ret, picked)
	}
	return ret
}

// Equal returns true iff other is a subset distribution with the same
// parameters.
func (d Subset) Equal(other Distribution[[]int64]) bool {
	o, ok := other.(Subset)
	return ok && o == d
}

func (d Subset) String() string {
	return fmt.Sprintf("subset(%d of [0, %d))", d.N, d.M)
}

// PickN draws n distinct indices into s, in the order picked.
func PickN[E any](eng Engine, s []E, n int) ([]int, error) {
	if len(s) == 0 && n > 0 {
		return nil, ErrEmptyCollection
	}
	d, err := NewSubset(int64(n), int64(len(s)))
	if err != nil {
		return nil, err
	}
	picked := d.Sample(eng)
	ret := make([]int, len(picked))
	for i, v := range picked {
		ret[i] = int(v)
	}
	return ret, nil
}
