package list

import "github.com/nobletooth/chain/pkg/utils"

// cursor is the position-tracking core shared by Cursor and CursorMut. It is
// bound to one live node of the list; curr is never nil while the binding
// holds. Movement wraps around the ends, and index/length bookkeeping is
// kept in lockstep with every move.
type cursor[T any] struct {
	list   *List[T]
	curr   *node[T]
	index  int // 0-based distance of curr from head, always < length.
	length int // Element count of the list as seen through this cursor.
}

// alive checks the cursor binding and raises an invariant violation when it
// is broken. A nil current node is a programming bug (the list was mutated
// behind the cursor's back), never a recoverable condition.
func (c *cursor[T]) alive() bool {
	if c.curr == nil {
		utils.RaiseInvariant("list", "nil_cursor_node",
			"Cursor is not bound to a live node; the list was mutated behind its back.",
			"index", c.index, "length", c.length)
		return false
	}
	return true
}

// prevNode returns the node logically before curr and its index, wrapping
// from the front to the tail. In a single-element list it is curr itself.
func (c *cursor[T]) prevNode() (*node[T], int) {
	if c.index == 0 {
		return c.list.tail, c.length - 1
	}
	return c.curr.prev, c.index - 1
}

// nextNode returns the node logically after curr and its index, wrapping
// from the back to the head. In a single-element list it is curr itself.
func (c *cursor[T]) nextNode() (*node[T], int) {
	if c.index == c.length-1 {
		return c.list.head, 0
	}
	return c.curr.next, c.index + 1
}

// MovePrev moves the cursor one position towards the front, wrapping to the
// tail when it stands on the first element.
func (c *cursor[T]) MovePrev() {
	if !c.alive() {
		return
	}
	if c.index == 0 {
		c.curr = c.list.tail
		c.index = c.length - 1
		return
	}
	c.curr = c.curr.prev
	c.index--
}

// MoveNext moves the cursor one position towards the back, wrapping to the
// head when it stands on the last element.
func (c *cursor[T]) MoveNext() {
	if !c.alive() {
		return
	}
	if c.index == c.length-1 {
		c.curr = c.list.head
		c.index = 0
		return
	}
	c.curr = c.curr.next
	c.index++
}

// StepBy moves the cursor steps positions forward, wrapping around the ends.
// The destination index is (index + steps) mod length no matter which way
// the cursor walks; the walk itself takes whichever direction needs fewer
// single-step moves. Negative steps walk backward.
func (c *cursor[T]) StepBy(steps int) {
	steps %= c.length
	if steps < 0 {
		steps += c.length
	}
	final := (c.index + steps) % c.length
	if final == c.index {
		return
	}
	forward := final - c.index
	if forward < 0 {
		forward += c.length
	}
	if backward := c.length - forward; backward < forward {
		for range backward {
			c.MovePrev()
		}
		return
	}
	for range forward {
		c.MoveNext()
	}
}

// StepByBackward moves the cursor steps positions backward, wrapping around
// the ends.
func (c *cursor[T]) StepByBackward(steps int) {
	steps %= c.length
	if steps < 0 {
		steps += c.length
	}
	c.StepBy(c.length - steps)
}

// Cursor is a read-only position bound to one node of a list. It is created
// over a non-empty list only and supports wrap-around navigation and O(1)
// neighbor peeking without rescanning the list.
//
// A cursor must not be used across mutations of its list: the list grants no
// exclusivity at runtime, so holding a cursor while pushing, popping or
// splicing elsewhere is a contract violation by the caller.
type Cursor[T any] struct {
	cursor[T]
}

// CursorFront returns a cursor bound to the first element, or nil when the
// list is empty; an empty list has no node for a cursor to stand on.
func (l *List[T]) CursorFront() *Cursor[T] {
	if l.head == nil {
		return nil
	}
	return &Cursor[T]{cursor[T]{list: l, curr: l.head, index: 0, length: l.Len()}}
}

// CursorBack returns a cursor bound to the last element, or nil when the
// list is empty.
func (l *List[T]) CursorBack() *Cursor[T] {
	if l.tail == nil {
		return nil
	}
	length := l.Len()
	return &Cursor[T]{cursor[T]{list: l, curr: l.tail, index: length - 1, length: length}}
}

// Current returns the element under the cursor and its index.
func (c *Cursor[T]) Current() (T, int) {
	if !c.alive() {
		var zero T
		return zero, c.index
	}
	return c.curr.val, c.index
}

// Prev returns the element before the cursor and its index, wrapping to the
// tail at the front. For a single-element list it returns the current
// element itself.
func (c *Cursor[T]) Prev() (T, int) {
	if !c.alive() {
		var zero T
		return zero, c.index
	}
	n, i := c.prevNode()
	return n.val, i
}

// Next returns the element after the cursor and its index, wrapping to the
// head at the back. For a single-element list it returns the current element
// itself.
func (c *Cursor[T]) Next() (T, int) {
	if !c.alive() {
		var zero T
		return zero, c.index
	}
	n, i := c.nextNode()
	return n.val, i
}
