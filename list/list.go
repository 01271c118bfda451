// Package list implements a singly linked list where every node is itself a
// list: a node holds an optional element and exclusively owns the rest of the
// chain.
package list

// List is a singly linked list of T.
//
// The zero value is an empty list ready to use. A List never holds a
// successor without holding an element; every mutating method keeps that
// shape. An empty node reached through a chain, such as a last node emptied
// through [List.Last], ends the list there.
type List[T any] struct {
	tail *List[T]
	head T
	set  bool
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Leaf returns a single-element list.
func Leaf[T any](val T) *List[T] {
	return &List[T]{head: val, set: true}
}

// IsEmpty reports whether the list holds no element.
func (l *List[T]) IsEmpty() bool {
	return l == nil || !l.set
}

// IsLeaf reports whether the list holds an element and nothing after it.
func (l *List[T]) IsLeaf() bool {
	return l != nil && l.set && l.tail == nil
}

// Head returns the first element.
func (l *List[T]) Head() (T, bool) { //nolint:ireturn
	if l.IsEmpty() {
		var zero T
		return zero, false
	}

	return l.head, true
}

// Tail returns the list after the first element, or nil.
func (l *List[T]) Tail() *List[T] {
	if l == nil {
		return nil
	}

	return l.tail
}

// Push adds a new element to the front of the list.
func (l *List[T]) Push(val T) *List[T] {
	if l.set {
		// pushing onto an empty list must not wrap an empty node
		l.tail = &List[T]{head: l.head, set: true, tail: l.tail}
	}

	l.head = val
	l.set = true

	return l
}

// Pop removes and returns the first element. The successor node, if any, is
// absorbed into l and left empty.
func (l *List[T]) Pop() (T, bool) { //nolint:ireturn
	val, ok := l.head, l.set

	if next := l.tail; next != nil {
		*l = *next
		*next = List[T]{}
	} else {
		*l = List[T]{}
	}

	return val, ok
}

// Last returns the terminal node: the last element's node, or l itself when
// l is empty.
func (l *List[T]) Last() *List[T] {
	n := l
	for !n.IsLeaf() && !n.IsEmpty() {
		n = n.tail
	}

	return n
}

// Depth returns the number of elements in the list.
func (l *List[T]) Depth() int {
	d := 0
	for n := l; !n.IsEmpty(); n = n.tail {
		d++
	}

	return d
}

// At returns the element at the zero-based index. Indexes outside the list
// report false.
func (l *List[T]) At(index int) (T, bool) { //nolint:ireturn
	var zero T

	if index < 0 {
		return zero, false
	}

	for n := l; !n.IsEmpty(); n = n.tail {
		if index == 0 {
			return n.Head()
		}

		index--
	}

	return zero, false
}

// Append adds a new element to the end of the list.
func (l *List[T]) Append(val T) *List[T] {
	last := l.Last()
	if !last.set {
		last.head = val
		last.set = true

		return l
	}

	last.tail = Leaf(val)

	return l
}

// InsertAt inserts val so that it ends up at the given index. An index of
// zero or less pushes; an index at or past the end appends.
func (l *List[T]) InsertAt(index int, val T) *List[T] {
	switch {
	case index <= 0:
		return l.Push(val)
	case index >= l.Depth():
		return l.Append(val)
	}

	right := l.Split(index)
	l.Append(val)

	return l.Splice(right)
}

// Split detaches and returns the list starting at index, leaving l with the
// elements before it. It returns nil when there is nothing to detach.
//
// Split(0) moves the whole content out of l, except that a list of depth one
// or less is left untouched.
func (l *List[T]) Split(index int) *List[T] {
	switch {
	case index < 0:
		return nil
	case index == 0:
		if l.Depth() <= 1 {
			return nil
		}

		return l.take()
	}

	n := l
	for ; index > 1; index-- {
		if n.tail == nil {
			return nil
		}

		n = n.tail
	}

	rest := n.tail
	n.tail = nil

	return rest
}

// Splice appends the whole chain of other after the last element of l.
// other is consumed and left empty. It must not be a node of l.
func (l *List[T]) Splice(other *List[T]) *List[T] {
	if other.IsEmpty() || other == l {
		return l
	}

	last := l.Last()
	if !last.set {
		*last = *other.take()

		return l
	}

	last.tail = other.take()

	return l
}

// SpliceBefore puts the whole chain of other in front of the content of l.
// other is consumed and left empty. It must not be a node of l.
func (l *List[T]) SpliceBefore(other *List[T]) *List[T] {
	if other.IsEmpty() || other == l {
		return l
	}

	rest := l.take()
	*l = *other.take()

	return l.Splice(rest)
}

// Clear removes all elements from the list.
func (l *List[T]) Clear() {
	*l = List[T]{}
}

// Clone returns a copy of the list. Elements are copied by assignment.
func (l *List[T]) Clone() *List[T] {
	return Collect(l.All())
}

// take moves the content of l into a new node and leaves l empty.
func (l *List[T]) take() *List[T] {
	n := *l
	*l = List[T]{}

	return &n
}
