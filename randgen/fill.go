package randgen

import (
	"container/list"
	"iter"

	"github.com/gammazero/deque"
)

// Fill assigns every element of dst, in order, the next draw of dist.
func Fill[T any](dst []T, eng Engine, dist Distribution[T]) {
	for i := range dst {
		dst[i] = dist.Sample(eng)
	}
}

// FillSeq assigns every slot yielded by dst, in order, the next draw of
// dist. It terminates when dst does.
func FillSeq[T any](dst iter.Seq[*T], eng Engine, dist Distribution[T]) {
	for p := range dst {
		*p = dist.Sample(eng)
	}
}

// FillList assigns every element value of l, front to back, the next draw
// of dist.
func FillList[T any](l *list.List, eng Engine, dist Distribution[T]) {
	for e := range listElements(l) {
		e.Value = dist.Sample(eng)
	}
}

// FillDeque assigns every element of q, front to back, the next draw of
// dist.
func FillDeque[T any](q *deque.Deque[T], eng Engine, dist Distribution[T]) {
	for n := q.Len(); n > 0; n-- {
		q.PopFront()
		q.PushBack(dist.Sample(eng))
	}
}
