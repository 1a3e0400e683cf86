package randgen

import "fmt"

// Adapted draws values from an inner distribution over D and converts them
// to R. It lets a generator for a representational type, such as an
// integer, serve a distinct but convertible type, such as an identifier.
type Adapted[R, D any] struct {
	inner   Distribution[D]
	convert func(D) R
}

// NewAdapted creates a new adapted distribution.
func NewAdapted[R, D any](inner Distribution[D], convert func(D) R) Adapted[R, D] {
	if inner == nil || convert == nil {
		panic("randgen: adapted distribution requires an inner distribution and a conversion")
	}
	return Adapted[R, D]{inner: inner, convert: convert}
}

// NewConverted creates a new adapted distribution using a numeric
// conversion. A nil inner distribution is replaced by the default
// distribution of D.
func NewConverted[R, D Number](inner Distribution[D]) Adapted[R, D] {
	if inner == nil {
		inner = MustDefault[D]()
	}
	return Adapted[R, D]{
		inner: inner,
		convert: func(v D) R {
			return R(v)
		},
	}
}

// Inner returns the wrapped distribution.
func (d Adapted[R, D]) Inner() Distribution[D] {
	return d.inner
}

// Sample draws one value.
func (d Adapted[R, D]) Sample(eng Engine) R {
	return d.convert(d.inner.Sample(eng))
}

// Equal returns true iff other adapts an equal inner distribution.
func (d Adapted[R, D]) Equal(other Distribution[R]) bool {
	o, ok := other.(Adapted[R, D])
	return ok && d.inner.Equal(o.inner)
}

func (d Adapted[R, D]) String() string {
	return fmt.Sprintf("adapted(%v)", d.inner)
}
