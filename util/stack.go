package util

// Stack is a LIFO stack backed by a slice.
type Stack[T any] struct {
	items []T
}

// Push adds items in order, so the last one ends up on top.
func (s *Stack[T]) Push(items ...T) {
	s.items = append(s.items, items...)
}

// Pop removes and returns the top item. ok is false when the stack is empty.
func (s *Stack[T]) Pop() (item T, ok bool) {
	if len(s.items) == 0 {
		return item, false
	}
	idx := len(s.items) - 1
	item = s.items[idx]
	s.items = s.items[:idx]
	return item, true
}

// Len returns the number of stacked items.
func (s *Stack[T]) Len() int {
	return len(s.items)
}
