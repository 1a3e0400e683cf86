package randgen

import (
	"fmt"
	"strings"
)

// Pair is a two slot tuple.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is a three slot tuple.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Tuple2 draws pairs, one distribution per slot. Slots are drawn in
// ascending order against the same engine.
type Tuple2[A, B any] struct {
	D0 Distribution[A]
	D1 Distribution[B]
}

// NewTuple2 creates a new pair distribution.
func NewTuple2[A, B any](d0 Distribution[A], d1 Distribution[B]) Tuple2[A, B] {
	return Tuple2[A, B]{D0: d0, D1: d1}
}

// Sample draws one pair.
func (d Tuple2[A, B]) Sample(eng Engine) Pair[A, B] {
	a := d.D0.Sample(eng)
	b := d.D1.Sample(eng)
	return Pair[A, B]{First: a, Second: b}
}

// Equal returns true iff all slot distributions are equal.
func (d Tuple2[A, B]) Equal(other Distribution[Pair[A, B]]) bool {
	o, ok := other.(Tuple2[A, B])
	return ok && d.D0.Equal(o.D0) && d.D1.Equal(o.D1)
}

func (d Tuple2[A, B]) String() string {
	return fmt.Sprintf("tuple(%v, %v)", d.D0, d.D1)
}

// Tuple3 draws triples, one distribution per slot. Slots are drawn in
// ascending order against the same engine.
type Tuple3[A, B, C any] struct {
	D0 Distribution[A]
	D1 Distribution[B]
	D2 Distribution[C]
}

// NewTuple3 creates a new triple distribution.
func NewTuple3[A, B, C any](d0 Distribution[A], d1 Distribution[B], d2 Distribution[C]) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{D0: d0, D1: d1, D2: d2}
}

// Sample draws one triple.
func (d Tuple3[A, B, C]) Sample(eng Engine) Triple[A, B, C] {
	a := d.D0.Sample(eng)
	b := d.D1.Sample(eng)
	c := d.D2.Sample(eng)
	return Triple[A, B, C]{First: a, Second: b, Third: c}
}

// Equal returns true iff all slot distributions are equal.
func (d Tuple3[A, B, C]) Equal(other Distribution[Triple[A, B, C]]) bool {
	o, ok := other.(Tuple3[A, B, C])
	return ok && d.D0.Equal(o.D0) && d.D1.Equal(o.D1) && d.D2.Equal(o.D2)
}

func (d Tuple3[A, B, C]) String() string {
	return fmt.Sprintf("tuple(%v, %v, %v)", d.D0, d.D1, d.D2)
}

// Tuple draws fixed arity tuples of boxed values, one distribution per
// slot, in ascending slot order.
type Tuple struct {
	slots []Distribution[any]
}

// NewTuple creates a new tuple distribution. The arity is fixed to the
// number of slots given.
func NewTuple(slots ...Distribution[any]) Tuple {
	return Tuple{slots: append([]Distribution[any](nil), slots...)}
}

// Arity returns the number of slots.
func (d Tuple) Arity() int {
	return len(d.slots)
}

// Sample draws one tuple.
func (d Tuple) Sample(eng Engine) []any {
	v := make([]any, len(d.slots))
	for i, slot := range d.slots {
		v[i] = slot.Sample(eng)
	}
	return v
}

// Equal returns true iff other has the same arity and equal slot
// distributions.
func (d Tuple) Equal(other Distribution[[]any]) bool {
	o, ok := other.(Tuple)
	if !ok || len(o.slots) != len(d.slots) {
		return false
	}
	for i := range d.slots {
		if !d.slots[i].Equal(o.slots[i]) {
			return false
		}
	}
	return true
}

func (d Tuple) String() string {
	parts := make([]string, len(d.slots))
	for i, slot := range d.slots {
		parts[i] = fmt.Sprint(slot)
	}
	return "tuple(" + strings.Join(parts, ", ") + ")"
}

type boxed[T any] struct {
	d Distribution[T]
}

// Box erases the result type of a distribution, for use as a Tuple slot.
func Box[T any](d Distribution[T]) Distribution[any] {
	return boxed[T]{d: d}
}

func (b boxed[T]) Sample(eng Engine) any {
	return b.d.Sample(eng)
}

func (b boxed[T]) Equal(other Distribution[any]) bool {
	o, ok := other.(boxed[T])
	return ok && b.d.Equal(o.d)
}

func (b boxed[T]) String() string {
	return fmt.Sprint(b.d)
}
