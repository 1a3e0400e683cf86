package randgen

import "fmt"

// Single is a degenerate distribution that always yields Value. The engine
// is never consulted.
type Single[T comparable] struct {
	Value T
}

// NewSingle creates a new single value distribution.
func NewSingle[T comparable](v T) Single[T] {
	return Single[T]{Value: v}
}

// Sample returns the wrapped value.
func (d Single[T]) Sample(Engine) T {
	return d.Value
}

// Equal returns true iff other wraps an equal value.
func (d Single[T]) Equal(other Distribution[T]) bool {
	o, ok := other.(Single[T])
	return ok && o.Value == d.Value
}

func (d Single[T]) String() string {
	return fmt.Sprintf("single(%v)", d.Value)
}
