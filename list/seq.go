package list

import (
	"fmt"
	"iter"
	"strings"
)

// FromSlice returns a list holding the elements of s in the same order.
func FromSlice[T any](s []T) *List[T] {
	l := New[T]()
	last := l

	for _, val := range s {
		last.Append(val)
		last = last.Last()
	}

	return l
}

// Collect returns a list holding the values of seq in encounter order.
func Collect[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	last := l

	for val := range seq {
		last.Append(val)
		last = last.Last()
	}

	return l
}

// All returns an iterator for all elements in the list.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l; !n.IsEmpty(); n = n.tail {
			if !yield(n.head) {
				return
			}
		}
	}
}

// Slice returns the elements of the list as a slice.
func (l *List[T]) Slice() []T {
	s := make([]T, 0, l.Depth())
	for val := range l.All() {
		s = append(s, val)
	}

	return s
}

// Equal reports whether a and b hold equal elements in the same order.
// A nil list equals an empty list.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like [Equal] but compares elements with eq.
func EqualFunc[T any](a, b *List[T], eq func(T, T) bool) bool {
	for {
		switch {
		case a.IsEmpty() || b.IsEmpty():
			return a.IsEmpty() == b.IsEmpty()
		case !eq(a.head, b.head):
			return false
		}

		a, b = a.tail, b.tail
	}
}

// EqualSlice reports whether l has the length of s and holds its elements
// at the same positions.
func EqualSlice[T comparable](l *List[T], s []T) bool {
	n := l
	for _, val := range s {
		if n.IsEmpty() || n.head != val {
			return false
		}

		n = n.tail
	}

	return n.IsEmpty()
}

// String renders the list as "a::b::End", or "Empty" for an empty list.
// Rendering stops at the first empty node.
func (l *List[T]) String() string {
	if l.IsEmpty() {
		return "Empty"
	}

	var sb strings.Builder
	for n := l; !n.IsEmpty(); n = n.tail {
		fmt.Fprintf(&sb, "%v::", n.head)
	}

	sb.WriteString("End")

	return sb.String()
}
