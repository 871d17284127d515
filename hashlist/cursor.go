package hashlist

// Cursor is a bidirectional cursor over a list. It is positioned in
// the gaps between elements and crosses one element per step, so that
// alternating Next and Prev return the same element.
//
// A cursor stays valid as long as the list is mutated only through
// this cursor. Mutating the list in any other way while a cursor is in
// use leaves the cursor undefined.
type Cursor[V comparable] struct {
	list *List[V]

	// next is the entry a forward step would cross, nil when the
	// cursor is past the last element.
	next      *entry[V]
	nextIndex int

	// current is the last crossed entry, nil before the first step
	// and after Remove or Insert.
	current      *entry[V]
	currentIndex int
}

// Cursor returns a cursor positioned before the first element.
func (l *List[V]) Cursor() *Cursor[V] {
	return &Cursor[V]{
		list: l,
		next: l.ring.Front(),
	}
}

// CursorAt returns a cursor positioned in the gap before position i,
// so that the first forward step crosses the value at i. Position
// Len() places the cursor past the last element.
// It panics if i is out of range.
func (l *List[V]) CursorAt(i int) *Cursor[V] {
	if i < 0 || i > l.ring.Len() {
		panic(outOfRange(i, l.ring.Len()))
	}
	return &Cursor[V]{
		list:      l,
		next:      l.entryAt(i),
		nextIndex: i,
	}
}

// Next crosses the element after the cursor, reporting whether there
// was one to cross.
func (c *Cursor[V]) Next() bool {
	if c.nextIndex >= c.list.ring.Len() {
		return false
	}
	c.current = c.next
	c.currentIndex = c.nextIndex
	c.nextIndex++
	if c.nextIndex == c.list.ring.Len() {
		c.next = nil
	} else {
		c.next = c.next.Next()
	}
	return true
}

// Prev crosses the element before the cursor, reporting whether there
// was one to cross.
func (c *Cursor[V]) Prev() bool {
	if c.nextIndex == 0 {
		return false
	}
	if c.next == nil {
		c.next = c.list.ring.Back()
	} else {
		c.next = c.next.Prev()
	}
	c.nextIndex--
	c.current = c.next
	c.currentIndex = c.nextIndex
	return true
}

// Value returns the value of the last crossed element.
// It panics if the cursor has no current element.
func (c *Cursor[V]) Value() V {
	if c.current == nil {
		panic("hashlist: cursor has no element")
	}
	return c.current.value
}

// Index returns the position of the last crossed element.
// It panics if the cursor has no current element.
func (c *Cursor[V]) Index() int {
	if c.current == nil {
		panic("hashlist: cursor has no element")
	}
	return c.currentIndex
}

// Set replaces the value of the last crossed element, relocating it in
// the hash table when its bucket changes. The element keeps its
// position in the list.
// It panics if the cursor has no current element.
func (c *Cursor[V]) Set(v V) {
	if c.current == nil {
		panic("hashlist: cursor has no element")
	}
	c.list.rehashEntry(c.current, v)
}

// Remove removes the last crossed element from the list. The cursor
// has no current element afterwards until the next step.
// It panics if the cursor has no current element.
func (c *Cursor[V]) Remove() {
	if c.current == nil {
		panic("hashlist: cursor has no element")
	}
	if c.current == c.next {
		// Crossed backwards: the gap moves over the successor.
		if c.nextIndex == c.list.ring.Len()-1 {
			c.next = nil
		} else {
			c.next = c.next.Next()
		}
	} else {
		c.nextIndex--
	}
	c.list.unlinkEntry(c.current)
	c.current = nil
}

// Insert inserts v into the gap the cursor occupies, between the last
// crossed element and the element a forward step would cross. The new
// element is not crossed and the cursor has no current element
// afterwards until the next step.
func (c *Cursor[V]) Insert(v V) {
	c.list.insertEntry(c.list.newEntry(v), c.next)
	c.nextIndex++
	c.current = nil
}
