/*
Package ringlist implements a generic intrusive circular doubly linked list.
*/
package ringlist

// ElementList is a built in list type that uses the Element type as its element.
// The zero value is a ready to use empty list.
type ElementList[V any] struct {
	List[Element[V], *Element[V]]
}

// ListElement is the constraint for a generic list element.
type ListElement[E any] interface {
	Link(E)
	Unlink()
	Next() E
	Prev() E
}

// List is a generic circular doubly linked list.
// The zero value is a ready to use empty list.
type List[T any, E interface {
	*T
	ListElement[E]
}] struct {
	tail E
	len  int
}

// Len returns the number of elements in the list.
func (l *List[T, E]) Len() int {
	return l.len
}

// Front returns the first element of the list or nil.
func (l *List[T, E]) Front() E {
	if l.len == 0 {
		return nil
	}
	return l.tail.Next()
}

// Back returns the last element of the list or nil.
func (l *List[T, E]) Back() E {
	return l.tail
}

// PushFront inserts a new element at the front of the list.
func (l *List[T, E]) PushFront(e E) {
	if l.tail != nil {
		l.tail.Link(e)
	} else {
		l.tail = e
	}
	l.len++
}

// PushBack inserts a new element at the back of the list.
func (l *List[T, E]) PushBack(e E) {
	if l.tail != nil {
		l.tail.Link(e)
	}
	l.tail = e
	l.len++
}

// InsertAfter inserts a new element after mark.
// The mark must be an element of the list.
func (l *List[T, E]) InsertAfter(e, mark E) {
	mark.Link(e)
	if mark == l.tail {
		l.tail = e
	}
	l.len++
}

// InsertBefore inserts a new element before mark.
// The mark must be an element of the list.
func (l *List[T, E]) InsertBefore(e, mark E) {
	mark.Prev().Link(e)
	l.len++
}

// MoveToFront moves an element to the front of the list.
func (l *List[T, E]) MoveToFront(e E) {
	if e != l.Front() {
		l.Remove(e)
		l.PushFront(e)
	}
}

// MoveToBack moves an element to the back of the list.
func (l *List[T, E]) MoveToBack(e E) {
	if e != l.tail {
		l.Remove(e)
		l.PushBack(e)
	}
}

// Do calls function f on each element of the list, in forward order.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *List[T, E]) Do(f func(e E) bool) {
	e := l.Front()
	for i := 0; i < l.len; i++ {
		if !f(e) {
			return
		}
		e = e.Next()
	}
}

// Remove an element from the list.
func (l *List[T, E]) Remove(e E) {
	if e == l.tail {
		if l.len == 1 {
			l.tail = nil
		} else {
			l.tail = e.Prev()
		}
	}
	e.Unlink()
	l.len--
}
