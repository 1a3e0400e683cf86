package randgen

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oasisprotocol/randgen/common/errors"
	"github.com/oasisprotocol/randgen/randgen/engine"
)

type point struct {
	X, Y int16
	Tag  string
}

type record struct {
	ID     uint64
	Weight float32
	Flags  [3]bool
	Points []point
}

type hidden struct {
	Public  int
	private int
}

type node struct {
	Value    int
	Children []node
}

type celsius float64

func TestDefaultTotality(t *testing.T) {
	require := require.New(t)

	for _, typ := range []reflect.Type{
		reflect.TypeFor[bool](),
		reflect.TypeFor[int](),
		reflect.TypeFor[int8](),
		reflect.TypeFor[int16](),
		reflect.TypeFor[int32](),
		reflect.TypeFor[int64](),
		reflect.TypeFor[uint](),
		reflect.TypeFor[uint8](),
		reflect.TypeFor[uint16](),
		reflect.TypeFor[uint32](),
		reflect.TypeFor[uint64](),
		reflect.TypeFor[uintptr](),
		reflect.TypeFor[float32](),
		reflect.TypeFor[float64](),
		reflect.TypeFor[string](),
		reflect.TypeFor[[]int](),
		reflect.TypeFor[[4]byte](),
		reflect.TypeFor[point](),
		reflect.TypeFor[record](),
		reflect.TypeFor[Pair[int, string]](),
		reflect.TypeFor[userID](),
		reflect.TypeFor[struct{}](),
	} {
		v, err := Resolve(typ)
		require.NoError(err, "Resolve(%v)", typ)
		require.Equal(typ, v.Type())

		eng := engine.NewPCG(1)
		for i := 0; i < 20; i++ {
			require.Equal(typ, v.SampleValue(eng).Type(), "sample of %v", typ)
		}
	}
}

func TestDefaultUnclassified(t *testing.T) {
	require := require.New(t)

	for _, typ := range []reflect.Type{
		reflect.TypeFor[map[string]int](),
		reflect.TypeFor[chan int](),
		reflect.TypeFor[func()](),
		reflect.TypeFor[*int](),
		reflect.TypeFor[any](),
		reflect.TypeFor[complex128](),
		reflect.TypeFor[hidden](),
		reflect.TypeFor[[]map[int]int](),
		reflect.TypeFor[node](),
	} {
		_, err := Resolve(typ)
		require.True(errors.Is(err, ErrUnclassified), "Resolve(%v) should be unclassified: %v", typ, err)
	}

	_, err := Default[map[int]bool]()
	require.True(errors.Is(err, ErrUnclassified))
	require.Panics(func() { MustDefault[chan struct{}]() })
	require.Panics(func() { MustDefaultVariable[*string](engine.NewPCG(1)) })

	_, err = Resolve(nil)
	require.True(errors.Is(err, ErrUnclassified))
}

func TestDefaultBuiltins(t *testing.T) {
	require := require.New(t)

	require.True(MustDefault[bool]().Equal(Fair()))
	require.True(MustDefault[int]().Equal(FullRange[int]()))
	require.True(MustDefault[uint8]().Equal(FullRange[uint8]()))
	require.True(MustDefault[float32]().Equal(FullRangeReal[float32]()))
	require.True(MustDefault[string]().Equal(DefaultString[string]()))
	require.False(MustDefault[int32]().Equal(Uniform[int32]{Min: 0, Max: 1}))

	require.True(MustDefault[[]int]().Equal(MustDefault[[]int]()), "equal composites should compare equal")
	require.True(MustDefault[record]().Equal(MustDefault[record]()))
	require.False(MustDefault[[]int]().Equal(NewSequence[int](NewSingle(1), FullRange[int]())))
}

func TestDefaultValues(t *testing.T) {
	require := require.New(t)

	eng := engine.NewPCG(42)
	d := MustDefault[record]()
	for i := 0; i < 200; i++ {
		r := d.Sample(eng)
		require.False(math.IsInf(float64(r.Weight), 0) || math.IsNaN(float64(r.Weight)))
		require.LessOrEqual(len(r.Points), DefaultMaxLength)
		for _, p := range r.Points {
			require.LessOrEqual(len(p.Tag), DefaultMaxLength)
			for _, c := range p.Tag {
				require.True(c >= MinPrintable && c <= MaxPrintable, "character out of alphabet: %q", c)
			}
		}
	}

	var sawEmpty bool
	ids := MustDefault[[]userID]()
	for i := 0; i < 200; i++ {
		if len(ids.Sample(eng)) == 0 {
			sawEmpty = true
		}
	}
	require.True(sawEmpty, "the empty sequence should be likely")
}

func TestDeterminism(t *testing.T) {
	require := require.New(t)

	a := MustDefaultVariable[record](engine.NewPCG(42))
	b := MustDefaultVariable[record](engine.NewPCG(42))
	require.Equal(a.Take(50), b.Take(50), "identical seeds should draw identical values")

	c := MustDefaultVariable[record](engine.NewPCG(43))
	require.NotEqual(a.Take(50), c.Take(50))
}

func TestResolveLargeArray(t *testing.T) {
	require := require.New(t)

	// Elements share one resolved distribution, so resolving does not
	// scale with the array length.
	typ := reflect.ArrayOf(1<<16, reflect.ArrayOf(1<<16, reflect.TypeFor[bool]()))
	v, err := Resolve(typ)
	require.NoError(err)
	require.Equal(typ, v.Type())

	w, err := Resolve(typ)
	require.NoError(err)
	require.True(v.EqualValue(w))
	require.Contains(v.String(), "array(len=65536")

	other, err := Resolve(reflect.TypeFor[[65536]bool]())
	require.NoError(err)
	require.False(v.EqualValue(other))
}

func TestRegister(t *testing.T) {
	require := require.New(t)

	mild := UniformReal[celsius]{Min: -10, Max: 40}
	Register[celsius](mild)
	t.Cleanup(Unregister[celsius])

	require.True(MustDefault[celsius]().Equal(mild))

	type forecast struct {
		Days [7]celsius
		Rest []celsius
	}
	eng := engine.NewPCG(42)
	d := MustDefault[forecast]()
	for i := 0; i < 100; i++ {
		f := d.Sample(eng)
		for _, c := range append(f.Days[:], f.Rest...) {
			require.True(c >= -10 && c <= 40, "registered default should apply to components: %f", c)
		}
	}

	// Registration makes otherwise unclassified types resolvable.
	Register[map[string]int](emptyMap{})
	t.Cleanup(Unregister[map[string]int])
	m := MustDefault[[]map[string]int]()
	require.NotPanics(func() { m.Sample(eng) })

	Unregister[celsius]()
	require.False(MustDefault[celsius]().Equal(mild))
}

// emptyMap always draws an empty map.
type emptyMap struct{}

func (emptyMap) Sample(Engine) map[string]int {
	return map[string]int{}
}

func (emptyMap) Equal(other Distribution[map[string]int]) bool {
	_, ok := other.(emptyMap)
	return ok
}
