package randgen

import (
	"container/list"
	"fmt"
	"iter"

	"github.com/gammazero/deque"
	"github.com/google/btree"
)

// Position draws uniformly distributed indices into a borrowed slice.
//
// The slice is bound by pointer and is not owned: it must outlive the
// distribution and must not shrink below its length at construction, which
// fixes the index range. Two positions are equal iff they are bound to the
// same slice, not merely to equal slices.
type Position[E any] struct {
	coll  *[]E
	index Uniform[int]
}

// NewPosition creates a new position distribution over the slice pointed
// to by coll. Binding to an empty slice is an error.
func NewPosition[E any](coll *[]E) (Position[E], error) {
	if coll == nil || len(*coll) == 0 {
		return Position[E]{}, ErrEmptyCollection
	}
	return Position[E]{
		coll:  coll,
		index: Uniform[int]{Min: 0, Max: len(*coll) - 1},
	}, nil
}

// Sample draws one index.
func (d Position[E]) Sample(eng Engine) int {
	return d.index.Sample(eng)
}

// Equal returns true iff other is bound to the same slice.
func (d Position[E]) Equal(other Distribution[int]) bool {
	o, ok := other.(Position[E])
	return ok && o.coll == d.coll
}

func (d Position[E]) String() string {
	return fmt.Sprintf("position(%v)", d.index)
}

// Pick draws a uniformly distributed index into s. The collection is passed
// per draw, so nothing is borrowed.
func Pick[E any](eng Engine, s []E) (int, error) {
	if len(s) == 0 {
		return 0, ErrEmptyCollection
	}
	return Uniform[int]{Min: 0, Max: len(s) - 1}.Sample(eng), nil
}

// Nth advances k steps from the start of seq and returns the element there.
func Nth[V any](seq iter.Seq[V], k int) (V, bool) {
	var i int
	for v := range seq {
		if i == k {
			return v, true
		}
		i++
	}
	var zero V
	return zero, false
}

func listElements(l *list.List) iter.Seq[*list.Element] {
	return func(yield func(*list.Element) bool) {
		for e := l.Front(); e != nil; e = e.Next() {
			if !yield(e) {
				return
			}
		}
	}
}

func treeItems(t *btree.BTree) iter.Seq[btree.Item] {
	return func(yield func(btree.Item) bool) {
		t.Ascend(func(i btree.Item) bool {
			return yield(i)
		})
	}
}

// ListPosition draws uniformly distributed elements of a borrowed list,
// reached by walking from the front.
type ListPosition struct {
	l     *list.List
	index Uniform[int]
}

// NewListPosition creates a new position distribution over l.
func NewListPosition(l *list.List) (ListPosition, error) {
	if l == nil || l.Len() == 0 {
		return ListPosition{}, ErrEmptyCollection
	}
	return ListPosition{
		l:     l,
		index: Uniform[int]{Min: 0, Max: l.Len() - 1},
	}, nil
}

// Sample draws one element.
func (d ListPosition) Sample(eng Engine) *list.Element {
	e, ok := Nth(listElements(d.l), d.index.Sample(eng))
	if !ok {
		panic("randgen: list shrank below its bound length")
	}
	return e
}

// Equal returns true iff other is bound to the same list.
func (d ListPosition) Equal(other Distribution[*list.Element]) bool {
	o, ok := other.(ListPosition)
	return ok && o.l == d.l
}

func (d ListPosition) String() string {
	return fmt.Sprintf("list-position(%v)", d.index)
}

// TreePosition draws uniformly distributed items of a borrowed B-tree,
// reached by ascending from the smallest item.
type TreePosition struct {
	t     *btree.BTree
	index Uniform[int]
}

// NewTreePosition creates a new position distribution over t.
func NewTreePosition(t *btree.BTree) (TreePosition, error) {
	if t == nil || t.Len() == 0 {
		return TreePosition{}, ErrEmptyCollection
	}
	return TreePosition{
		t:     t,
		index: Uniform[int]{Min: 0, Max: t.Len() - 1},
	}, nil
}

// Sample draws one item.
func (d TreePosition) Sample(eng Engine) btree.Item {
	item, ok := Nth(treeItems(d.t), d.index.Sample(eng))
	if !ok {
		panic("randgen: tree shrank below its bound length")
	}
	return item
}

// Equal returns true iff other is bound to the same tree.
func (d TreePosition) Equal(other Distribution[btree.Item]) bool {
	o, ok := other.(TreePosition)
	return ok && o.t == d.t
}

func (d TreePosition) String() string {
	return fmt.Sprintf("tree-position(%v)", d.index)
}

// DequePosition draws uniformly distributed elements of a borrowed deque,
// reached by index from the front.
type DequePosition[E any] struct {
	q     *deque.Deque[E]
	index Uniform[int]
}

// NewDequePosition creates a new position distribution over q.
func NewDequePosition[E any](q *deque.Deque[E]) (DequePosition[E], error) {
	if q == nil || q.Len() == 0 {
		return DequePosition[E]{}, ErrEmptyCollection
	}
	return DequePosition[E]{
		q:     q,
		index: Uniform[int]{Min: 0, Max: q.Len() - 1},
	}, nil
}

// Sample draws one element.
func (d DequePosition[E]) Sample(eng Engine) E {
	i := d.index.Sample(eng)
	if i >= d.q.Len() {
		panic("randgen: deque shrank below its bound length")
	}
	return d.q.At(i)
}

// Equal returns true iff other is bound to the same deque.
func (d DequePosition[E]) Equal(other Distribution[E]) bool {
	o, ok := other.(DequePosition[E])
	return ok && o.q == d.q
}

func (d DequePosition[E]) String() string {
	return fmt.Sprintf("deque-position(%v)", d.index)
}
