package hashlist

import "iter"

// Do calls function f on each value of the list, in list order.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *List[V]) Do(f func(v V) bool) {
	e := l.ring.Front()
	for i := 0; i < l.ring.Len(); i++ {
		if !f(e.value) {
			return
		}
		e = e.Next()
	}
}

// All returns an iterator over the values of the list in list order.
// The list must not be changed during the iteration.
func (l *List[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		l.Do(yield)
	}
}

// Backward returns an iterator over the values of the list from back
// to front. The list must not be changed during the iteration.
func (l *List[V]) Backward() iter.Seq[V] {
	return func(yield func(V) bool) {
		e := l.ring.Back()
		for i := 0; i < l.ring.Len(); i++ {
			if !yield(e.value) {
				return
			}
			e = e.Prev()
		}
	}
}

// AppendSeq appends the values from seq to the back of the list.
func (l *List[V]) AppendSeq(seq iter.Seq[V]) {
	for v := range seq {
		l.PushBack(v)
	}
}
