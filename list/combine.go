package list

// The combine operations build lists left to right:
//
//	New[int]().AppendElement(1).AppendElement(2).AppendList(other)
//
// Each one mutates the receiver and returns it.

// PrependElement is [List.Push].
func (l *List[T]) PrependElement(val T) *List[T] {
	return l.Push(val)
}

// PrependList is [List.SpliceBefore]: other goes first.
func (l *List[T]) PrependList(other *List[T]) *List[T] {
	return l.SpliceBefore(other)
}

// AppendElement is [List.Append].
func (l *List[T]) AppendElement(val T) *List[T] {
	return l.Append(val)
}

// AppendList is [List.Splice]: other goes last.
func (l *List[T]) AppendList(other *List[T]) *List[T] {
	return l.Splice(other)
}
