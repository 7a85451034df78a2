package port

import (
	"errors"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/nobletooth/chain/pkg/list"
)

var (
	ErrKeyNotFound = errors.New("key was not found")
	ErrEmptyList   = errors.New("list is empty")
	ErrSameKey     = errors.New("source and destination keys must differ")
)

// ListStore is the in-memory backend behind the Redis port: a set of named
// lists guarded by one lock. A bloom filter remembers every key ever
// created, so lookups of absent keys can answer without probing the map;
// deleted keys leave stale positives behind, which only cost the map probe
// the filter was meant to skip.
type ListStore struct {
	mux   sync.RWMutex
	lists map[string]*list.List[string]
	seen  *bloom.BloomFilter
}

// NewListStore creates an empty ListStore.
func NewListStore() *ListStore {
	return &ListStore{
		lists: make(map[string]*list.List[string]),
		seen:  bloom.NewWithEstimates(100_000 /*keys*/, 0.01 /*falsePositiveRate*/),
	}
}

// lookup returns the list stored under key. Callers must hold at least the
// read lock.
func (s *ListStore) lookup(key string) (*list.List[string], error) {
	if !s.seen.TestString(key) { // Definitely never created.
		return nil, ErrKeyNotFound
	}
	l, ok := s.lists[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return l, nil
}

// create returns the list stored under key, creating it when absent.
// Callers must hold the write lock.
func (s *ListStore) create(key string) *list.List[string] {
	if l, ok := s.lists[key]; ok {
		return l
	}
	l := list.New[string]()
	s.lists[key] = l
	s.seen.AddString(key)
	return l
}

// dropIfEmpty removes the key once its list has no elements left, matching
// the Redis convention that an empty list does not exist.
func (s *ListStore) dropIfEmpty(key string, l *list.List[string]) {
	if l.IsEmpty() {
		delete(s.lists, key)
	}
}

// PushFront prepends the given values one by one and returns the new length.
func (s *ListStore) PushFront(key string, values ...string) int {
	s.mux.Lock()
	defer s.mux.Unlock()

	l := s.create(key)
	for _, v := range values {
		l.PushFront(v)
	}
	return l.Len()
}

// PushBack appends the given values and returns the new length.
func (s *ListStore) PushBack(key string, values ...string) int {
	s.mux.Lock()
	defer s.mux.Unlock()

	l := s.create(key)
	for _, v := range values {
		l.PushBack(v)
	}
	return l.Len()
}

// PopFront detaches and returns the first element of the named list.
func (s *ListStore) PopFront(key string) (string, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	l, err := s.lookup(key)
	if err != nil {
		return "", err
	}
	v, ok := l.PopFront()
	if !ok {
		return "", ErrEmptyList
	}
	s.dropIfEmpty(key, l)
	return v, nil
}

// PopBack detaches and returns the last element of the named list.
func (s *ListStore) PopBack(key string) (string, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	l, err := s.lookup(key)
	if err != nil {
		return "", err
	}
	v, ok := l.PopBack()
	if !ok {
		return "", ErrEmptyList
	}
	s.dropIfEmpty(key, l)
	return v, nil
}

// Len returns the length of the named list; missing keys count as zero.
func (s *ListStore) Len(key string) int {
	s.mux.RLock()
	defer s.mux.RUnlock()

	l, err := s.lookup(key)
	if err != nil {
		return 0
	}
	return l.Len()
}

// Range returns the elements between start and stop inclusive, with Redis
// index semantics: negative indices count from the back, out-of-bounds ends
// are clamped, and a crossed range is empty.
func (s *ListStore) Range(key string, start, stop int) ([]string, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	l, err := s.lookup(key)
	if err != nil {
		return nil, err
	}
	length := l.Len()
	if start < 0 {
		start = max(0, length+start)
	}
	if stop < 0 {
		stop = length + stop
	}
	stop = min(stop, length-1)
	if start > stop || start >= length {
		return []string{}, nil
	}

	out := make([]string, 0, stop-start+1)
	idx := 0
	for v := range l.All() {
		if idx > stop {
			break
		}
		if idx >= start {
			out = append(out, v)
		}
		idx++
	}
	return out, nil
}

// Index returns the element at the given position. The position wraps
// modulo the list length, following the cursor's wrap-around policy.
func (s *ListStore) Index(key string, index int) (string, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	l, err := s.lookup(key)
	if err != nil {
		return "", err
	}
	c := l.CursorFront()
	if c == nil {
		return "", ErrEmptyList
	}
	c.StepBy(index)
	v, _ := c.Current()
	return v, nil
}

// Set overwrites the element at the given position in place. The position
// wraps modulo the list length.
func (s *ListStore) Set(key string, index int, value string) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	l, err := s.lookup(key)
	if err != nil {
		return err
	}
	c := l.CursorFrontMut()
	if c == nil {
		return ErrEmptyList
	}
	c.StepBy(index)
	v, _ := c.Current()
	*v = value
	return nil
}

// InsertAt places value at the given position of the named list, creating
// the list when absent.
func (s *ListStore) InsertAt(key string, index int, value string) int {
	s.mux.Lock()
	defer s.mux.Unlock()

	l := s.create(key)
	l.InsertAt(value, index)
	return l.Len()
}

// RemoveAt detaches and returns the element at the given position.
func (s *ListStore) RemoveAt(key string, index int) (string, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	l, err := s.lookup(key)
	if err != nil {
		return "", err
	}
	v, err := l.RemoveAt(index)
	if err != nil {
		return "", err
	}
	s.dropIfEmpty(key, l)
	return v, nil
}

// Split cuts the src list after the given position and stores the detached
// back half under dst, replacing whatever dst held. Returns the number of
// elements moved. src and dst must differ: one key cannot hold both halves.
func (s *ListStore) Split(src, dst string, index int) (int, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	if src == dst {
		return 0, ErrSameKey
	}
	l, err := s.lookup(src)
	if err != nil {
		return 0, err
	}
	back := l.SplitAt(index)
	moved := back.Len()
	if moved == 0 {
		return 0, nil
	}
	s.lists[dst] = back
	s.seen.AddString(dst)
	s.dropIfEmpty(src, l)
	return moved, nil
}

// Merge moves every element of src onto the back of dst in O(1) and deletes
// src. Returns the resulting length of dst. Merging a key into itself is a
// no-op that returns the current length: every element of src is already in
// dst, and handing a chain to itself would sever it.
func (s *ListStore) Merge(dst, src string) (int, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	from, err := s.lookup(src)
	if err != nil {
		return 0, err
	}
	if dst == src {
		return from.Len(), nil
	}
	to := s.create(dst)
	to.Append(from)
	delete(s.lists, src)
	return to.Len(), nil
}

// Delete removes the given keys and returns how many existed.
func (s *ListStore) Delete(keys ...string) int {
	s.mux.Lock()
	defer s.mux.Unlock()

	deleted := 0
	for _, key := range keys {
		if _, ok := s.lists[key]; ok {
			delete(s.lists, key)
			deleted++
		}
	}
	return deleted
}

// Exists reports whether the key currently holds a list.
func (s *ListStore) Exists(key string) bool {
	s.mux.RLock()
	defer s.mux.RUnlock()

	_, err := s.lookup(key)
	return err == nil
}
