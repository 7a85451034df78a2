package list

// Positional convenience operations. Each one places a mutable cursor with
// StepBy and delegates to the cursor primitive; end positions go straight to
// the O(1) push/pop pair. Indices wrap modulo the current length instead of
// failing on out-of-range values, matching the cursor's own wrap-around
// navigation.

// normalize reduces index into [0, length).
func normalize(index, length int) int {
	index %= length
	if index < 0 {
		index += length
	}
	return index
}

// InsertAt inserts v at position index. Index 0 (and an empty list) pushes
// to the front; any other position is reached by stepping a cursor to
// index-1 and inserting after it.
func (l *List[T]) InsertAt(v T, index int) {
	if l.head == nil || index == 0 {
		l.PushFront(v)
		return
	}
	c := l.CursorFrontMut()
	c.StepBy(index - 1)
	c.Insert(v)
}

// RemoveAt detaches and returns the element at position index. End positions
// use PopFront/PopBack, which is also what lets RemoveAt empty the list
// entirely; only interior positions go through a cursor. An empty list
// returns ErrLastElement.
func (l *List[T]) RemoveAt(index int) (T, error) {
	var zero T
	if l.head == nil {
		return zero, ErrLastElement
	}
	length := l.Len()
	index = normalize(index, length)
	if index == 0 {
		v, _ := l.PopFront()
		return v, nil
	}
	if index == length-1 {
		v, _ := l.PopBack()
		return v, nil
	}
	c := l.CursorFrontMut()
	c.StepBy(index)
	return c.Remove()
}

// SplitAt cuts the list after position index and returns the new list
// holding everything behind it. Splitting an empty list or after the last
// position returns an empty list.
func (l *List[T]) SplitAt(index int) *List[T] {
	if l.head == nil {
		return New[T]()
	}
	c := l.CursorFrontMut()
	c.StepBy(index)
	return c.Split()
}

// SpliceAt moves the whole chain of other into l directly after position
// index. An empty l adopts other wholesale; other is left empty either way.
func (l *List[T]) SpliceAt(other *List[T], index int) {
	if l.head == nil {
		l.Append(other)
		return
	}
	c := l.CursorFrontMut()
	c.StepBy(index)
	c.Splice(other)
}
