package randgen

import (
	"fmt"
	"strings"
)

const (
	// MinPrintable is the smallest character drawn by default strings.
	MinPrintable = 33
	// MaxPrintable is the largest character drawn by default strings.
	MaxPrintable = 126
)

// Sequence draws slices whose length is drawn from Size and whose elements
// are drawn independently from Elem, in order. A Sequence with either
// distribution unset draws empty slices.
type Sequence[E any] struct {
	Size Distribution[int]
	Elem Distribution[E]
}

// NewSequence creates a new sequence distribution.
func NewSequence[E any](size Distribution[int], elem Distribution[E]) Sequence[E] {
	return Sequence[E]{Size: size, Elem: elem}
}

// DefaultSequence creates a sequence distribution with the default length
// law and the default distribution of E.
func DefaultSequence[E any]() (Sequence[E], error) {
	elem, err := Default[E]()
	if err != nil {
		return Sequence[E]{}, err
	}
	return NewSequence(DefaultSequenceLength(), elem), nil
}

// Sample draws one sequence. Its length is exactly the drawn size, with
// negative sizes treated as zero.
func (d Sequence[E]) Sample(eng Engine) []E {
	if d.Size == nil || d.Elem == nil {
		return []E{}
	}
	n := max(d.Size.Sample(eng), 0)
	s := make([]E, 0, n)
	for i := 0; i < n; i++ {
		s = append(s, d.Elem.Sample(eng))
	}
	return s
}

// Equal returns true iff other has equal size and element distributions.
func (d Sequence[E]) Equal(other Distribution[[]E]) bool {
	o, ok := other.(Sequence[E])
	return ok && sameDistribution(d.Size, o.Size) && sameDistribution(d.Elem, o.Elem)
}

func (d Sequence[E]) String() string {
	return fmt.Sprintf("sequence(len=%v, elem=%v)", d.Size, d.Elem)
}

// String draws strings whose length is drawn from Length and whose
// characters are drawn from Alphabet. A String with either distribution
// unset draws empty strings.
type String[S ~string] struct {
	Length   Distribution[int]
	Alphabet Distribution[rune]
}

// NewString creates a new string distribution.
func NewString[S ~string](length Distribution[int], alphabet Distribution[rune]) String[S] {
	return String[S]{Length: length, Alphabet: alphabet}
}

// DefaultString returns the default string distribution: lengths uniform
// over [0, DefaultMaxLength] and printable ASCII characters uniform over
// [MinPrintable, MaxPrintable].
func DefaultString[S ~string]() String[S] {
	return String[S]{
		Length:   Uniform[int]{Min: 0, Max: DefaultMaxLength},
		Alphabet: Uniform[rune]{Min: MinPrintable, Max: MaxPrintable},
	}
}

// Sample draws one string of exactly the drawn length, in characters.
func (d String[S]) Sample(eng Engine) S {
	if d.Length == nil || d.Alphabet == nil {
		return ""
	}
	n := max(d.Length.Sample(eng), 0)
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteRune(d.Alphabet.Sample(eng))
	}
	return S(b.String())
}

// Equal returns true iff other has equal length and alphabet distributions.
func (d String[S]) Equal(other Distribution[S]) bool {
	o, ok := other.(String[S])
	return ok && sameDistribution(d.Length, o.Length) && sameDistribution(d.Alphabet, o.Alphabet)
}

func (d String[S]) String() string {
	return fmt.Sprintf("string(len=%v, alphabet=%v)", d.Length, d.Alphabet)
}
