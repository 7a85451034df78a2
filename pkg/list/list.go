// Package list implements a doubly linked sequence container with O(1)
// insertion and removal at both ends, O(1) splicing of whole chains, and
// cursor-based structural editing at arbitrary positions.
//
// A List owns every node reachable from its head through next pointers.
// The prev/next fields on nodes exist for navigation only; detaching a node
// always nils the links that would otherwise keep it reachable, so a popped
// node is surrendered exactly once and never observable through a stale
// pointer afterwards.
//
// Lists are not safe for concurrent use. A cursor additionally assumes the
// list is not mutated behind its back for as long as it is held; see Cursor
// and CursorMut.
package list

import "github.com/nobletooth/chain/pkg/utils"

// node is a heap-allocated holder of one element plus its two neighbors.
type node[T any] struct {
	prev *node[T]
	next *node[T]
	val  T
}

// List is a doubly linked list. The zero value is an empty list ready to use.
//
// Invariants: head is nil iff tail is nil iff the list is empty; for any two
// adjacent nodes a -> b, b.prev == a; the head has no prev and the tail has
// no next; the chain from head reaches tail in exactly Len() steps.
type List[T any] struct {
	head *node[T]
	tail *node[T]
}

// New returns a new empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Len walks the list and returns the number of elements. It is O(n) on
// purpose: the list carries no cached counter, so a length is never stale
// with respect to splices and splits performed through cursors.
func (l *List[T]) Len() int {
	count := 0
	for n := l.head; n != nil; n = n.next {
		count++
	}
	return count
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.head == nil
}

// PushFront adds a new element to the front of the list.
func (l *List[T]) PushFront(v T) {
	n := &node[T]{val: v, next: l.head}
	if l.head != nil {
		l.head.prev = n
	} else { // List was empty.
		l.tail = n
	}
	l.head = n
}

// PushBack adds a new element to the back of the list.
func (l *List[T]) PushBack(v T) {
	n := &node[T]{val: v, prev: l.tail}
	if l.tail != nil {
		l.tail.next = n
	} else { // List was empty.
		l.head = n
	}
	l.tail = n
}

// PopFront detaches the first element and returns it. The second return is
// false when the list is empty.
func (l *List[T]) PopFront() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	n := l.head
	l.head = n.next
	if l.head != nil {
		l.head.prev = nil
	} else { // Removed the last node.
		l.tail = nil
	}
	n.next = nil
	return n.val, true
}

// PopBack detaches the last element and returns it. The second return is
// false when the list is empty.
func (l *List[T]) PopBack() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	n := l.tail
	l.tail = n.prev
	if l.tail != nil {
		l.tail.next = nil
	} else { // Removed the last node.
		l.head = nil
	}
	n.prev = nil
	return n.val, true
}

// PeekFront returns a pointer to the first element, or nil if the list is
// empty. The pointer stays valid until the element is removed.
func (l *List[T]) PeekFront() *T {
	if l.head == nil {
		return nil
	}
	return &l.head.val
}

// PeekBack returns a pointer to the last element, or nil if the list is
// empty.
func (l *List[T]) PeekBack() *T {
	if l.tail == nil {
		return nil
	}
	return &l.tail.val
}

// Append moves every element of other to the end of l in O(1) by adopting
// other's node chain. No element is copied. Afterwards other is empty.
// other must be a different list: a chain cannot adopt itself.
func (l *List[T]) Append(other *List[T]) {
	if other == nil || other.head == nil {
		return
	}
	if other == l {
		utils.RaiseInvariant("list", "self_append",
			"A list cannot be appended to itself.")
		return
	}
	if l.tail != nil {
		l.tail.next = other.head
		other.head.prev = l.tail
	} else { // l was empty, adopt other's head as well.
		l.head = other.head
	}
	l.tail = other.tail
	other.head = nil
	other.tail = nil
}

// Clear removes all elements one by one, front to back. Going through
// PopFront keeps per-node detachment uniform instead of dropping the whole
// chain at once.
func (l *List[T]) Clear() {
	for _, ok := l.PopFront(); ok; _, ok = l.PopFront() {
	}
}
