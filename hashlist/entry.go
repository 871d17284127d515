package hashlist

// entry is a list element that lives in both views of the list: the
// chain link places it in its hash bucket, the ring links place it in
// the circular element ring in list order.
type entry[V comparable] struct {
	value      V
	hash       uint64
	chain      *entry[V]
	next, prev *entry[V]
}

func newEntry[V comparable](v V, hash uint64) *entry[V] {
	e := &entry[V]{value: v, hash: hash}
	e.next = e
	e.prev = e
	return e
}

// Link inserts an entry after this entry in the ring.
func (e *entry[V]) Link(s *entry[V]) {
	n := e.next
	e.next = s
	s.prev = e
	n.prev = s
	s.next = n
}

// Unlink unlinks this entry from the ring.
func (e *entry[V]) Unlink() {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next = e
	e.prev = e
}

// Next returns the next entry in the ring.
func (e *entry[V]) Next() *entry[V] {
	return e.next
}

// Prev returns the previous entry in the ring.
func (e *entry[V]) Prev() *entry[V] {
	return e.prev
}
