package list

import "iter"

// Iterator walks a list from both ends inward. Forward and backward
// consumption share one remaining-count, so the two directions meet in the
// middle without revisiting or skipping an element. Next returns pointers
// into the list; mutating through them is allowed, mutating the list
// structure while iterating is not.
type Iterator[T any] struct {
	head *node[T]
	tail *node[T]
	left int // Elements not yet yielded from either end.
}

// Iter returns a double-ended iterator positioned over the whole list.
func (l *List[T]) Iter() *Iterator[T] {
	return &Iterator[T]{head: l.head, tail: l.tail, left: l.Len()}
}

// Remaining returns the exact number of elements left to yield.
func (it *Iterator[T]) Remaining() int {
	return it.left
}

// Next yields the next element from the front, or (nil, false) once the two
// ends have met.
func (it *Iterator[T]) Next() (*T, bool) {
	if it.left == 0 {
		return nil, false
	}
	n := it.head
	it.head = n.next
	it.left--
	if it.left == 0 {
		it.head, it.tail = nil, nil
	}
	return &n.val, true
}

// NextBack yields the next element from the back, or (nil, false) once the
// two ends have met.
func (it *Iterator[T]) NextBack() (*T, bool) {
	if it.left == 0 {
		return nil, false
	}
	n := it.tail
	it.tail = n.prev
	it.left--
	if it.left == 0 {
		it.head, it.tail = nil, nil
	}
	return &n.val, true
}

// All returns a forward iter.Seq over the element values, usable with
// range-over-func.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.val) {
				return
			}
		}
	}
}

// Backward returns a back-to-front iter.Seq over the element values.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.val) {
				return
			}
		}
	}
}

// DrainIterator consumes a list, detaching elements as it yields them.
// Elements not yet yielded remain in the list.
type DrainIterator[T any] struct {
	list *List[T]
}

// Drain returns an owning iterator over the list. Each Next pops the front
// and each NextBack pops the back, so the iterator and the list can not
// disagree about who owns a node.
func (l *List[T]) Drain() *DrainIterator[T] {
	return &DrainIterator[T]{list: l}
}

// Remaining returns the number of elements left in the drained list.
func (d *DrainIterator[T]) Remaining() int {
	return d.list.Len()
}

// Next detaches and returns the front element.
func (d *DrainIterator[T]) Next() (T, bool) {
	return d.list.PopFront()
}

// NextBack detaches and returns the back element.
func (d *DrainIterator[T]) NextBack() (T, bool) {
	return d.list.PopBack()
}
