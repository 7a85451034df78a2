package list

import (
	"errors"

	"github.com/nobletooth/chain/pkg/utils"
)

// ErrLastElement is returned by CursorMut.Remove (and the positional
// RemoveAt on an empty list) when removing would leave the cursor bound to
// nothing. A cursor always stands on a live node, so the sole remaining
// element can only be taken out through PopFront/PopBack.
var ErrLastElement = errors.New("cannot remove the only remaining element from under a cursor")

// CursorMut is a position bound to one node of a list that can edit the list
// structure at that position: insert after, remove under, split after and
// splice after, each as a single atomic link rewrite.
//
// A CursorMut holds logically exclusive access to its list. No other cursor,
// iterator or direct list call may touch the list while it is held; the
// caller is responsible for that, the type does not lock.
type CursorMut[T any] struct {
	cursor[T]
}

// CursorFrontMut returns a mutable cursor bound to the first element, or nil
// when the list is empty.
func (l *List[T]) CursorFrontMut() *CursorMut[T] {
	if l.head == nil {
		return nil
	}
	return &CursorMut[T]{cursor[T]{list: l, curr: l.head, index: 0, length: l.Len()}}
}

// CursorBackMut returns a mutable cursor bound to the last element, or nil
// when the list is empty.
func (l *List[T]) CursorBackMut() *CursorMut[T] {
	if l.tail == nil {
		return nil
	}
	length := l.Len()
	return &CursorMut[T]{cursor[T]{list: l, curr: l.tail, index: length - 1, length: length}}
}

// Current returns a pointer to the element under the cursor and its index.
func (c *CursorMut[T]) Current() (*T, int) {
	if !c.alive() {
		return nil, c.index
	}
	return &c.curr.val, c.index
}

// Prev returns a pointer to the element before the cursor and its index,
// wrapping to the tail at the front.
func (c *CursorMut[T]) Prev() (*T, int) {
	if !c.alive() {
		return nil, c.index
	}
	n, i := c.prevNode()
	return &n.val, i
}

// Next returns a pointer to the element after the cursor and its index,
// wrapping to the head at the back.
func (c *CursorMut[T]) Next() (*T, int) {
	if !c.alive() {
		return nil, c.index
	}
	n, i := c.nextNode()
	return &n.val, i
}

// Insert links a new element directly after the cursor position and moves
// the cursor onto it. When the cursor stands on the tail, the new element
// becomes the tail.
func (c *CursorMut[T]) Insert(v T) {
	if !c.alive() {
		return
	}
	n := &node[T]{val: v, prev: c.curr, next: c.curr.next}
	if c.curr.next != nil {
		c.curr.next.prev = n
	} else { // Inserting after the tail.
		c.list.tail = n
	}
	c.curr.next = n
	c.length++
	c.MoveNext()
}

// Remove detaches the element under the cursor and returns it. The cursor
// moves to the former successor, wrapping to the new head when the tail was
// removed. Removing the sole remaining element is refused with
// ErrLastElement: the cursor must keep standing on a live node.
func (c *CursorMut[T]) Remove() (T, error) {
	var zero T
	if c.length < 2 {
		return zero, ErrLastElement
	}
	if !c.alive() {
		return zero, ErrLastElement
	}
	n := c.curr
	succ := n.next
	if n.prev != nil {
		n.prev.next = n.next
	} else { // Removing the head.
		c.list.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else { // Removing the tail.
		c.list.tail = n.prev
	}
	n.prev, n.next = nil, nil
	if succ != nil {
		c.curr = succ
	} else { // The tail was removed, wrap to the new head.
		c.curr = c.list.head
	}
	c.length--
	c.index %= c.length
	return n.val, nil
}

// Split cuts the list immediately after the cursor position. The current
// element becomes the tail of the original list and a new list owning
// everything after it is returned. Splitting at the tail is a no-op that
// returns an empty list. O(1); no node is copied.
func (c *CursorMut[T]) Split() *List[T] {
	out := New[T]()
	if !c.alive() {
		return out
	}
	succ := c.curr.next
	if succ == nil { // Already at the tail, nothing to cut off.
		return out
	}
	succ.prev = nil
	c.curr.next = nil
	out.head = succ
	out.tail = c.list.tail
	c.list.tail = c.curr
	c.length = c.index + 1
	return out
}

// Splice inserts the whole chain of other immediately after the cursor
// position in O(1), then moves the cursor onto the last inserted element.
// other is left empty; splicing an empty list is a no-op. other must be a
// different list than the one the cursor is bound to.
func (c *CursorMut[T]) Splice(other *List[T]) {
	if other == nil || other.head == nil {
		return
	}
	if other == c.list {
		utils.RaiseInvariant("list", "self_splice",
			"A list cannot be spliced into itself.")
		return
	}
	if !c.alive() {
		return
	}
	n := other.Len()
	last := other.tail
	succ := c.curr.next
	c.curr.next = other.head
	other.head.prev = c.curr
	last.next = succ
	if succ != nil {
		succ.prev = last
	} else { // Spliced after the tail.
		c.list.tail = last
	}
	other.head, other.tail = nil, nil
	c.curr = last
	c.length += n
	c.index += n
}
