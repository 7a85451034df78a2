// Derived helpers over the list: builders, cloning, formatting and the
// sequence-level comparisons. None of these touch node links directly; they
// are all written against iteration and the push/pop primitives.

package list

import (
	"encoding/binary"
	"fmt"
	"iter"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/nobletooth/chain/pkg/utils"
)

// From builds a list holding the given values in order.
func From[T any](values ...T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// FromSeq builds a list by draining the given sequence in order.
func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	l.Extend(seq)
	return l
}

// Extend appends every value of seq to the back of the list.
func (l *List[T]) Extend(seq iter.Seq[T]) {
	for v := range seq {
		l.PushBack(v)
	}
}

// Clone returns a new list with the same element sequence. Elements are
// copied by value; nodes are not shared.
func (l *List[T]) Clone() *List[T] {
	out := New[T]()
	for v := range l.All() {
		out.PushBack(v)
	}
	return out
}

// String renders the element sequence front to back, e.g. "[1 2 3]".
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for v := range l.All() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteByte(']')
	return sb.String()
}

// Contains reports whether the list holds an element equal to v.
func Contains[T comparable](l *List[T], v T) bool {
	for x := range l.All() {
		if x == v {
			return true
		}
	}
	return false
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	next, stop := iter.Pull(b.All())
	defer stop()
	for x := range a.All() {
		y, ok := next()
		if !ok || x != y {
			return false
		}
	}
	_, ok := next()
	return !ok // b must be exhausted as well.
}

// Compare orders a and b lexicographically by element, with a shorter prefix
// ordering before its extension, using cmp for per-element comparison.
func Compare[T any](a, b *List[T], cmp utils.CompareFn[T]) int {
	next, stop := iter.Pull(b.All())
	defer stop()
	for x := range a.All() {
		y, ok := next()
		if !ok {
			return 1 // b is a strict prefix of a.
		}
		if c := cmp(x, y); c != 0 {
			return c
		}
	}
	if _, ok := next(); ok {
		return -1 // a is a strict prefix of b.
	}
	return 0
}

// Hash folds the element sequence plus its length into a 64-bit digest.
// Lists that are Equal hash identically.
func Hash[T any](l *List[T]) uint64 {
	digest := xxhash.New()
	write := valueWriter[T]()
	count := 0
	for v := range l.All() {
		write(digest, v)
		count++
	}
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(count))
	_, _ = digest.Write(b[:])
	return digest.Sum64()
}

// valueWriter picks a stable byte encoding for T once per Hash call. Fixed
// size types get their binary representation; everything else falls back to
// the printed form, which is slower but total.
func valueWriter[T any]() func(*xxhash.Digest, T) {
	switch any(*new(T)).(type) {
	case string:
		return func(d *xxhash.Digest, v T) {
			_, _ = d.WriteString(any(v).(string))
		}
	case int:
		return func(d *xxhash.Digest, v T) {
			var b [8]byte
			// int's size is architecture dependent, widen before writing.
			binary.LittleEndian.PutUint64(b[:], uint64(any(v).(int)))
			_, _ = d.Write(b[:])
		}
	case int64:
		return func(d *xxhash.Digest, v T) {
			var b [8]byte
			binary.LittleEndian.PutUint64(b[:], uint64(any(v).(int64)))
			_, _ = d.Write(b[:])
		}
	case uint64:
		return func(d *xxhash.Digest, v T) {
			var b [8]byte
			binary.LittleEndian.PutUint64(b[:], any(v).(uint64))
			_, _ = d.Write(b[:])
		}
	case bool:
		return func(d *xxhash.Digest, v T) {
			if any(v).(bool) {
				_, _ = d.Write([]byte{1})
			} else {
				_, _ = d.Write([]byte{0})
			}
		}
	default:
		return func(d *xxhash.Digest, v T) {
			_, _ = d.WriteString(fmt.Sprintf("%#v", v))
		}
	}
}
