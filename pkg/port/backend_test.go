package port

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListStore_PushPop(t *testing.T) {
	store := NewListStore()

	assert.Equal(t, 2, store.PushBack("jobs", "a", "b"))
	assert.Equal(t, 3, store.PushFront("jobs", "z"))

	v, err := store.PopFront("jobs")
	require.NoError(t, err)
	assert.Equal(t, "z", v)
	v, err = store.PopBack("jobs")
	require.NoError(t, err)
	assert.Equal(t, "b", v)
	assert.Equal(t, 1, store.Len("jobs"))
}

func TestListStore_MissingKeys(t *testing.T) {
	store := NewListStore()

	_, err := store.PopFront("nope")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	_, err = store.PopBack("nope")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	_, err = store.Index("nope", 0)
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.ErrorIs(t, store.Set("nope", 0, "x"), ErrKeyNotFound)
	assert.Zero(t, store.Len("nope"))
	assert.False(t, store.Exists("nope"))
}

// Popping a list down to nothing must remove the key, like Redis does.
func TestListStore_EmptyListsDisappear(t *testing.T) {
	store := NewListStore()
	store.PushBack("k", "only")
	require.True(t, store.Exists("k"))

	_, err := store.PopFront("k")
	require.NoError(t, err)
	assert.False(t, store.Exists("k"))
	_, err = store.PopFront("k")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestListStore_Range(t *testing.T) {
	store := NewListStore()
	store.PushBack("k", "a", "b", "c", "d", "e")

	got, err := store.Range("k", 0, -1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, got)

	got, err = store.Range("k", 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "d"}, got)

	got, err = store.Range("k", -2, -1)
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "e"}, got)

	got, err = store.Range("k", 3, 100) // Clamped at the end.
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "e"}, got)

	got, err = store.Range("k", 4, 2) // Crossed range is empty.
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = store.Range("missing", 0, -1)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestListStore_IndexAndSet(t *testing.T) {
	store := NewListStore()
	store.PushBack("k", "a", "b", "c")

	v, err := store.Index("k", 1)
	require.NoError(t, err)
	assert.Equal(t, "b", v)

	v, err = store.Index("k", 4) // Wraps modulo the length.
	require.NoError(t, err)
	assert.Equal(t, "b", v)

	require.NoError(t, store.Set("k", 2, "C"))
	v, err = store.Index("k", 2)
	require.NoError(t, err)
	assert.Equal(t, "C", v)
}

func TestListStore_InsertRemoveAt(t *testing.T) {
	store := NewListStore()
	store.PushBack("k", "a", "c")

	assert.Equal(t, 3, store.InsertAt("k", 1, "b"))
	got, err := store.Range("k", 0, -1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got)

	v, err := store.RemoveAt("k", 1)
	require.NoError(t, err)
	assert.Equal(t, "b", v)
	assert.Equal(t, 2, store.Len("k"))

	// InsertAt on an absent key creates the list.
	assert.Equal(t, 1, store.InsertAt("fresh", 0, "x"))
	assert.True(t, store.Exists("fresh"))
}

func TestListStore_SplitAndMerge(t *testing.T) {
	store := NewListStore()
	store.PushBack("src", "a", "b", "c", "d")

	moved, err := store.Split("src", "dst", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, moved)

	got, err := store.Range("src", 0, -1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
	got, err = store.Range("dst", 0, -1)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, got)

	length, err := store.Merge("src", "dst")
	require.NoError(t, err)
	assert.Equal(t, 4, length)
	assert.False(t, store.Exists("dst"))
	got, err = store.Range("src", 0, -1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)

	// Splitting after the tail moves nothing and creates no key.
	moved, err = store.Split("src", "tail", 3)
	require.NoError(t, err)
	assert.Zero(t, moved)
	assert.False(t, store.Exists("tail"))
}

// Splitting or merging a key with itself must leave the list untouched: the
// underlying chain operations hand ownership over in O(1), so aliasing src
// and dst would sever the chain under the key.
func TestListStore_SelfSplitMerge(t *testing.T) {
	store := NewListStore()
	store.PushBack("k", "a", "b", "c")

	length, err := store.Merge("k", "k")
	require.NoError(t, err)
	assert.Equal(t, 3, length)
	got, err := store.Range("k", 0, -1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got)

	_, err = store.Split("k", "k", 1)
	assert.ErrorIs(t, err, ErrSameKey)
	got, err = store.Range("k", 0, -1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.True(t, store.Exists("k"))
}

func TestListStore_DeleteExists(t *testing.T) {
	store := NewListStore()
	store.PushBack("a", "1")
	store.PushBack("b", "2")

	assert.True(t, store.Exists("a"))
	assert.Equal(t, 2, store.Delete("a", "b", "c"))
	assert.False(t, store.Exists("a"))
	assert.False(t, store.Exists("b"))
}
