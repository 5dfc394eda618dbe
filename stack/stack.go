package stack

import "errors"

// ErrEmptyStack indicates Pop or Peek on a stack of size 0.
var ErrEmptyStack = errors.New("stack: stack is empty")

// Stack is a growable LIFO container. The zero value is an empty stack.
type Stack[T any] struct {
	data []T
}

// New returns an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Len reports the number of stored elements. Complexity: O(1).
func (s *Stack[T]) Len() int {
	return len(s.data)
}

// Empty reports whether the stack holds zero elements. Complexity: O(1).
func (s *Stack[T]) Empty() bool {
	return len(s.data) == 0
}

// Push places value on top of the stack. Complexity: O(1) amortized.
func (s *Stack[T]) Push(value T) {
	s.data = append(s.data, value)
}

// Pop removes and returns the top element.
// Returns ErrEmptyStack on a stack of size 0. Complexity: O(1).
func (s *Stack[T]) Pop() (T, error) {
	if len(s.data) == 0 {
		var zero T

		return zero, ErrEmptyStack
	}
	top := s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]

	return top, nil
}

// Peek returns the top element without removing it.
// Returns ErrEmptyStack on a stack of size 0. Complexity: O(1).
func (s *Stack[T]) Peek() (T, error) {
	if len(s.data) == 0 {
		var zero T

		return zero, ErrEmptyStack
	}

	return s.data[len(s.data)-1], nil
}
