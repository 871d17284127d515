/*
Package hashlist implements a hashed linked list.

A List keeps its elements simultaneously in a hash table and in a
circular doubly linked list. Membership tests and removals by value run
in amortized constant time while insertion order, positional access and
deque style access are preserved. Each entry caches its hash so that
growing the table never rehashes values.
*/
package hashlist

import (
	"fmt"
	"hash/maphash"

	"github.com/mgnsk/commons/ringlist"
)

const (
	minTableSize = 16

	// The table grows when the entry count reaches 3/4 of its size.
	loadFactorNum = 3
	loadFactorDen = 4
)

// List is an ordered collection with constant time membership testing.
//
// Positional operations walk the ring from whichever end is nearer to
// the target index. The zero value is an empty list ready to use.
// A List is not safe for concurrent use.
type List[V comparable] struct {
	ring  ringlist.List[entry[V], *entry[V]]
	table []*entry[V]
	seed  maphash.Seed
}

// New creates an empty list.
func New[V comparable]() *List[V] {
	l := &List[V]{}
	l.lazyInit()
	return l
}

// Of creates a list of the given values with the table sized upfront
// for the value count.
func Of[V comparable](values ...V) *List[V] {
	l := &List[V]{
		table: make([]*entry[V], tableSizeFor(len(values))),
		seed:  maphash.MakeSeed(),
	}
	l.PushBackAll(values...)
	return l
}

// Len returns the number of elements in the list.
func (l *List[V]) Len() int {
	return l.ring.Len()
}

// IsEmpty reports whether the list has no elements.
func (l *List[V]) IsEmpty() bool {
	return l.ring.Len() == 0
}

// Contains reports whether the list contains v.
func (l *List[V]) Contains(v V) bool {
	return l.find(v) != nil
}

// Get returns the value at position i.
// It panics if i is out of range.
func (l *List[V]) Get(i int) V {
	if i < 0 || i >= l.ring.Len() {
		panic(outOfRange(i, l.ring.Len()))
	}
	return l.entryAt(i).value
}

// Set replaces the value at position i and returns the old value,
// relocating the entry to a new bucket when its bucket changes.
// It panics if i is out of range.
func (l *List[V]) Set(i int, v V) V {
	if i < 0 || i >= l.ring.Len() {
		panic(outOfRange(i, l.ring.Len()))
	}
	e := l.entryAt(i)
	old := e.value
	l.rehashEntry(e, v)
	return old
}

// PushBack appends v to the back of the list.
func (l *List[V]) PushBack(v V) {
	l.insertEntry(l.newEntry(v), nil)
}

// PushFront prepends v to the front of the list.
func (l *List[V]) PushFront(v V) {
	l.insertEntry(l.newEntry(v), l.ring.Front())
}

// PushBackAll appends the values to the back of the list in argument
// order.
func (l *List[V]) PushBackAll(values ...V) {
	for _, v := range values {
		l.PushBack(v)
	}
}

// Insert inserts v before the value at position i. Position Len()
// appends to the back. It panics if i is out of range.
func (l *List[V]) Insert(i int, v V) {
	if i < 0 || i > l.ring.Len() {
		panic(outOfRange(i, l.ring.Len()))
	}
	l.insertEntry(l.newEntry(v), l.entryAt(i))
}

// InsertAll inserts the values before the value at position i,
// preserving argument order. It panics if i is out of range.
func (l *List[V]) InsertAll(i int, values ...V) {
	if i < 0 || i > l.ring.Len() {
		panic(outOfRange(i, l.ring.Len()))
	}
	mark := l.entryAt(i)
	for _, v := range values {
		l.insertEntry(l.newEntry(v), mark)
	}
}

// Remove removes one occurrence of v, reporting whether an element was
// removed. The occurrence is the first match in its hash bucket which
// is not necessarily the leftmost in list order; use RemoveFirst when
// the position matters.
func (l *List[V]) Remove(v V) bool {
	e := l.find(v)
	if e == nil {
		return false
	}
	l.unlinkEntry(e)
	return true
}

// RemoveAt removes and returns the value at position i.
// It panics if i is out of range.
func (l *List[V]) RemoveAt(i int) V {
	if i < 0 || i >= l.ring.Len() {
		panic(outOfRange(i, l.ring.Len()))
	}
	e := l.entryAt(i)
	l.unlinkEntry(e)
	return e.value
}

// RemoveFirst removes the leftmost occurrence of v in list order,
// reporting whether an element was removed.
func (l *List[V]) RemoveFirst(v V) bool {
	e := l.ring.Front()
	for i := 0; i < l.ring.Len(); i++ {
		if e.value == v {
			l.unlinkEntry(e)
			return true
		}
		e = e.Next()
	}
	return false
}

// RemoveLast removes the rightmost occurrence of v in list order,
// reporting whether an element was removed.
func (l *List[V]) RemoveLast(v V) bool {
	e := l.ring.Back()
	for i := 0; i < l.ring.Len(); i++ {
		if e.value == v {
			l.unlinkEntry(e)
			return true
		}
		e = e.Prev()
	}
	return false
}

// Front returns the first value, if any.
func (l *List[V]) Front() (V, bool) {
	if e := l.ring.Front(); e != nil {
		return e.value, true
	}
	var zero V
	return zero, false
}

// Back returns the last value, if any.
func (l *List[V]) Back() (V, bool) {
	if e := l.ring.Back(); e != nil {
		return e.value, true
	}
	var zero V
	return zero, false
}

// MustFront returns the first value.
// It panics if the list is empty.
func (l *List[V]) MustFront() V {
	e := l.ring.Front()
	if e == nil {
		panic("hashlist: empty list")
	}
	return e.value
}

// MustBack returns the last value.
// It panics if the list is empty.
func (l *List[V]) MustBack() V {
	e := l.ring.Back()
	if e == nil {
		panic("hashlist: empty list")
	}
	return e.value
}

// PopFront removes and returns the first value, if any.
func (l *List[V]) PopFront() (V, bool) {
	e := l.ring.Front()
	if e == nil {
		var zero V
		return zero, false
	}
	l.unlinkEntry(e)
	return e.value, true
}

// PopBack removes and returns the last value, if any.
func (l *List[V]) PopBack() (V, bool) {
	e := l.ring.Back()
	if e == nil {
		var zero V
		return zero, false
	}
	l.unlinkEntry(e)
	return e.value, true
}

// MustPopFront removes and returns the first value.
// It panics if the list is empty.
func (l *List[V]) MustPopFront() V {
	v, ok := l.PopFront()
	if !ok {
		panic("hashlist: empty list")
	}
	return v
}

// MustPopBack removes and returns the last value.
// It panics if the list is empty.
func (l *List[V]) MustPopBack() V {
	v, ok := l.PopBack()
	if !ok {
		panic("hashlist: empty list")
	}
	return v
}

// IndexOf returns the position of the leftmost occurrence of v,
// or -1 when the list does not contain v.
func (l *List[V]) IndexOf(v V) int {
	e := l.ring.Front()
	for i := 0; i < l.ring.Len(); i++ {
		if e.value == v {
			return i
		}
		e = e.Next()
	}
	return -1
}

// LastIndexOf returns the position of the rightmost occurrence of v,
// or -1 when the list does not contain v.
func (l *List[V]) LastIndexOf(v V) int {
	e := l.ring.Back()
	for i := l.ring.Len() - 1; i >= 0; i-- {
		if e.value == v {
			return i
		}
		e = e.Prev()
	}
	return -1
}

// Values returns the values of the list in list order.
func (l *List[V]) Values() []V {
	values := make([]V, 0, l.ring.Len())
	e := l.ring.Front()
	for i := 0; i < l.ring.Len(); i++ {
		values = append(values, e.value)
		e = e.Next()
	}
	return values
}

// Clear removes all elements from the list, keeping the table at its
// current size.
func (l *List[V]) Clear() {
	for l.ring.Len() > 0 {
		l.unlinkEntry(l.ring.Front())
	}
}

// newEntry creates a detached entry for v, initializing the list on
// first use.
func (l *List[V]) newEntry(v V) *entry[V] {
	l.lazyInit()
	return newEntry(v, maphash.Comparable(l.seed, v))
}

func (l *List[V]) lazyInit() {
	if l.table == nil {
		l.table = make([]*entry[V], minTableSize)
		l.seed = maphash.MakeSeed()
	}
}

// insertEntry is the single insertion pathway. It links e into the ring
// before mark, at the back when mark is nil, and into its hash bucket,
// then grows the table when the load factor is reached. The ring and
// the table are never updated independently.
func (l *List[V]) insertEntry(e, mark *entry[V]) {
	if mark == nil {
		l.ring.PushBack(e)
	} else {
		l.ring.InsertBefore(e, mark)
	}
	l.bucketInsert(e)
	if l.ring.Len() >= len(l.table)*loadFactorNum/loadFactorDen {
		l.grow()
	}
}

// unlinkEntry is the single removal pathway, unlinking e from both its
// bucket chain and the ring.
func (l *List[V]) unlinkEntry(e *entry[V]) {
	l.bucketRemove(e)
	l.ring.Remove(e)
}

// find returns the entry holding v, or nil. When the list contains
// duplicates of v, the match is the first in bucket chain order.
func (l *List[V]) find(v V) *entry[V] {
	if len(l.table) == 0 {
		return nil
	}
	hash := maphash.Comparable(l.seed, v)
	for e := l.table[l.bucketIndex(hash)]; e != nil; e = e.chain {
		if e.hash == hash && e.value == v {
			return e
		}
	}
	return nil
}

// entryAt returns the entry at position i, walking the ring from the
// nearer end, or nil when i equals the length. The index must have
// been validated by the caller.
func (l *List[V]) entryAt(i int) *entry[V] {
	n := l.ring.Len()
	if i == n {
		return nil
	}
	if i <= n/2 {
		e := l.ring.Front()
		for ; i > 0; i-- {
			e = e.Next()
		}
		return e
	}
	e := l.ring.Back()
	for i = n - 1 - i; i > 0; i-- {
		e = e.Prev()
	}
	return e
}

// rehashEntry gives e a new value, recomputing the cached hash and
// relocating the entry when its bucket index changes.
func (l *List[V]) rehashEntry(e *entry[V], v V) {
	hash := maphash.Comparable(l.seed, v)
	if l.bucketIndex(hash) == l.bucketIndex(e.hash) {
		e.value = v
		e.hash = hash
		return
	}
	l.bucketRemove(e)
	e.value = v
	e.hash = hash
	l.bucketInsert(e)
}

// bucketInsert links e at the head of its bucket chain.
func (l *List[V]) bucketInsert(e *entry[V]) {
	i := l.bucketIndex(e.hash)
	e.chain = l.table[i]
	l.table[i] = e
}

// bucketRemove unlinks e from its bucket chain.
func (l *List[V]) bucketRemove(e *entry[V]) {
	i := l.bucketIndex(e.hash)
	if l.table[i] == e {
		l.table[i] = e.chain
	} else {
		for p := l.table[i]; p != nil; p = p.chain {
			if p.chain == e {
				p.chain = e.chain
				break
			}
		}
	}
	e.chain = nil
}

// grow doubles the table and redistributes every entry by its cached
// hash. The ring is not touched: list order is invariant under resize.
func (l *List[V]) grow() {
	table := make([]*entry[V], len(l.table)*2)
	mask := uint64(len(table) - 1)
	for _, head := range l.table {
		for e := head; e != nil; {
			next := e.chain
			i := int(e.hash & mask)
			e.chain = table[i]
			table[i] = e
			e = next
		}
	}
	l.table = table
}

func (l *List[V]) bucketIndex(hash uint64) int {
	return int(hash & uint64(len(l.table)-1))
}

// tableSizeFor returns the smallest power of two table size that holds
// n entries without growing, at least the minimum size.
func tableSizeFor(n int) int {
	size := minTableSize
	for size*loadFactorNum/loadFactorDen < n {
		size <<= 1
	}
	return size
}

func outOfRange(i, length int) string {
	return fmt.Sprintf("hashlist: index out of range [%d] with length %d", i, length)
}
