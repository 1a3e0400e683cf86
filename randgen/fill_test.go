package randgen

import (
	"container/list"
	"iter"
	"testing"

	"github.com/gammazero/deque"
	"github.com/stretchr/testify/require"

	"github.com/oasisprotocol/randgen/randgen/engine"
)

func pointers[T any](s []T) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range s {
			if !yield(&s[i]) {
				return
			}
		}
	}
}

func TestFill(t *testing.T) {
	require := require.New(t)

	digits := Uniform[int]{Min: 0, Max: 9}

	a := make([]int, 5)
	Fill(a, engine.NewPCG(42), digits)
	b := make([]int, 5)
	Fill(b, engine.NewPCG(42), digits)
	require.Equal([]int{8, 9, 1, 0, 1}, a)
	require.Equal(a, b, "fills from identically seeded engines should match")

	c := make([]int, 5)
	FillSeq(pointers(c), engine.NewPCG(42), digits)
	require.Equal(a, c)

	l := list.New()
	for i := 0; i < 5; i++ {
		l.PushBack(nil)
	}
	FillList[int](l, engine.NewPCG(42), digits)
	var fromList []int
	for e := l.Front(); e != nil; e = e.Next() {
		fromList = append(fromList, e.Value.(int))
	}
	require.Equal(a, fromList)

	q := deque.New[int](0, 8)
	for i := 0; i < 5; i++ {
		q.PushBack(-1)
	}
	FillDeque(q, engine.NewPCG(42), digits)
	require.Equal(5, q.Len())
	for i := range a {
		require.Equal(a[i], q.At(i))
	}
	FillDeque(deque.New[int](), engine.NewPCG(42), digits)

	// Fill over nothing draws nothing.
	eng, ref := engine.NewPCG(1), engine.NewPCG(1)
	Fill([]int(nil), eng, digits)
	require.Equal(ref.Uint64(), eng.Uint64())
}

func TestVariable(t *testing.T) {
	require := require.New(t)

	digits := Uniform[int]{Min: 0, Max: 9}
	v := NewVariable[int](engine.NewPCG(42), digits)
	require.True(v.Distribution().Equal(digits))

	want := make([]int, 5)
	Fill(want, engine.NewPCG(42), digits)
	require.Equal(want, v.Take(5))

	w := NewVariable[int](engine.NewPCG(42), digits)
	for i := range want {
		require.Equal(want[i], w.Next())
	}

	_, err := NewDefaultVariable[map[int]int](v.Engine())
	require.Error(err)
}
