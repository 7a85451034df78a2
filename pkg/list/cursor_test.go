package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_EmptyList(t *testing.T) {
	l := New[int]()
	assert.Nil(t, l.CursorFront())
	assert.Nil(t, l.CursorBack())
	assert.Nil(t, l.CursorFrontMut())
	assert.Nil(t, l.CursorBackMut())
}

// assertCursorAt checks the value/index pair under the cursor.
func assertCursorAt(t *testing.T, c *Cursor[int], wantValue, wantIndex int) {
	t.Helper()
	v, i := c.Current()
	assert.Equal(t, wantValue, v)
	assert.Equal(t, wantIndex, i)
}

func TestCursor_Current(t *testing.T) {
	l := From(1, 2, 3)
	front := l.CursorFront()
	require.NotNil(t, front)
	assertCursorAt(t, front, 1, 0)
	back := l.CursorBack()
	require.NotNil(t, back)
	assertCursorAt(t, back, 3, 2)
}

func TestCursor_PrevNextWrapAround(t *testing.T) {
	t.Run("Prev at the front returns the tail", func(t *testing.T) {
		c := From(1, 2, 3).CursorFront()
		v, i := c.Prev()
		assert.Equal(t, 3, v)
		assert.Equal(t, 2, i)
	})

	t.Run("Next at the back returns the head", func(t *testing.T) {
		c := From(1, 2, 3).CursorBack()
		v, i := c.Next()
		assert.Equal(t, 1, v)
		assert.Equal(t, 0, i)
	})

	t.Run("Interior neighbors", func(t *testing.T) {
		c := From(1, 2, 3).CursorFront()
		c.MoveNext()
		v, i := c.Prev()
		assert.Equal(t, 1, v)
		assert.Equal(t, 0, i)
		v, i = c.Next()
		assert.Equal(t, 3, v)
		assert.Equal(t, 2, i)
	})

	t.Run("Single element list is its own neighbor", func(t *testing.T) {
		c := From(42).CursorFront()
		v, i := c.Prev()
		assert.Equal(t, 42, v)
		assert.Zero(t, i)
		v, i = c.Next()
		assert.Equal(t, 42, v)
		assert.Zero(t, i)
	})
}

func TestCursor_Move(t *testing.T) {
	t.Run("MoveNext wraps at the back", func(t *testing.T) {
		c := From(1, 2, 3).CursorBack()
		c.MoveNext()
		assertCursorAt(t, c, 1, 0)
		v, i := c.Prev()
		assert.Equal(t, 3, v)
		assert.Equal(t, 2, i)
		v, i = c.Next()
		assert.Equal(t, 2, v)
		assert.Equal(t, 1, i)
	})

	t.Run("MovePrev wraps at the front", func(t *testing.T) {
		c := From(1, 2, 3).CursorFront()
		c.MovePrev()
		assertCursorAt(t, c, 3, 2)
		v, i := c.Prev()
		assert.Equal(t, 2, v)
		assert.Equal(t, 1, i)
		v, i = c.Next()
		assert.Equal(t, 1, v)
		assert.Equal(t, 0, i)
	})

	t.Run("Full forward loop returns to start", func(t *testing.T) {
		c := From(1, 2, 3).CursorFront()
		for range 3 {
			c.MoveNext()
		}
		assertCursorAt(t, c, 1, 0)
	})
}

func TestCursor_StepBy(t *testing.T) {
	t.Run("Walk scenario", func(t *testing.T) {
		c := From(1, 2, 3, 4, 5).CursorFront()
		c.StepBy(2)
		assertCursorAt(t, c, 3, 2)
		v, i := c.Prev()
		assert.Equal(t, 2, v)
		assert.Equal(t, 1, i)
		v, i = c.Next()
		assert.Equal(t, 4, v)
		assert.Equal(t, 3, i)

		// Stepping by a multiple of the length is a no-op.
		c.StepBy(10)
		assertCursorAt(t, c, 3, 2)
	})

	t.Run("Destination is index plus steps modulo length", func(t *testing.T) {
		values := []int{10, 20, 30, 40, 50, 60, 70}
		l := From(values...)
		for steps := range 3 * len(values) {
			c := l.CursorFront()
			c.StepBy(steps)
			wantIndex := steps % len(values)
			assertCursorAt(t, c, values[wantIndex], wantIndex)
		}
	})

	t.Run("StepBy k then n-k returns to the original index", func(t *testing.T) {
		const n = 6
		l := From(0, 1, 2, 3, 4, 5)
		for k := range n + 1 {
			c := l.CursorFront()
			c.MoveNext() // Start away from the ends.
			c.StepBy(k)
			c.StepBy(n - k)
			assertCursorAt(t, c, 1, 1)
		}
	})

	t.Run("Negative steps walk backward", func(t *testing.T) {
		c := From(1, 2, 3, 4, 5).CursorFront()
		c.StepBy(-1)
		assertCursorAt(t, c, 5, 4)
	})
}

func TestCursor_StepByBackward(t *testing.T) {
	c := From(1, 2, 3, 4, 5).CursorFront()
	c.StepByBackward(2)
	assertCursorAt(t, c, 4, 3)
	c.StepByBackward(10) // A multiple of the length is a no-op.
	assertCursorAt(t, c, 4, 3)
	c.StepByBackward(5)
	assertCursorAt(t, c, 4, 3)
}
