package randgen

// Variable binds an engine and a distribution into a generator that takes
// no arguments. Drawing advances the engine; the distribution is never
// modified.
type Variable[T any] struct {
	eng  Engine
	dist Distribution[T]
}

// NewVariable binds eng to dist.
func NewVariable[T any](eng Engine, dist Distribution[T]) *Variable[T] {
	return &Variable[T]{eng: eng, dist: dist}
}

// NewDefaultVariable binds eng to the default distribution of T.
func NewDefaultVariable[T any](eng Engine) (*Variable[T], error) {
	dist, err := Default[T]()
	if err != nil {
		return nil, err
	}
	return NewVariable(eng, dist), nil
}

// MustDefaultVariable binds eng to the default distribution of T, and
// panics if T has none.
func MustDefaultVariable[T any](eng Engine) *Variable[T] {
	v, err := NewDefaultVariable[T](eng)
	if err != nil {
		panic(err)
	}
	return v
}

// Next draws one value.
func (v *Variable[T]) Next() T {
	return v.dist.Sample(v.eng)
}

// Take draws n values, in order.
func (v *Variable[T]) Take(n int) []T {
	out := make([]T, n)
	Fill(out, v.eng, v.dist)
	return out
}

// Engine returns the bound engine.
func (v *Variable[T]) Engine() Engine {
	return v.eng
}

// Distribution returns the bound distribution.
func (v *Variable[T]) Distribution() Distribution[T] {
	return v.dist
}
