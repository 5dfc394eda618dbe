package list

// node is one link of the chain.
type node[T comparable] struct {
	value T
	next  *node[T]
}

// List is a singly linked list. The zero value is an empty list.
type List[T comparable] struct {
	head, tail *node[T]
	size       int
}

// New returns an empty list.
func New[T comparable]() *List[T] {
	return &List[T]{}
}

// Len reports the number of stored elements. Complexity: O(1).
func (l *List[T]) Len() int {
	return l.size
}

// PushFront prepends value at the head. Complexity: O(1).
func (l *List[T]) PushFront(value T) {
	n := &node[T]{value: value, next: l.head}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.size++
}

// PushBack appends value at the tail. Complexity: O(1).
func (l *List[T]) PushBack(value T) {
	n := &node[T]{value: value}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// Remove unlinks the first node holding value, returning whether one was
// found. Complexity: O(n).
func (l *List[T]) Remove(value T) bool {
	var prev *node[T]
	for n := l.head; n != nil; prev, n = n, n.next {
		if n.value != value {
			continue
		}
		if prev == nil {
			l.head = n.next
		} else {
			prev.next = n.next
		}
		if n == l.tail {
			l.tail = prev
		}
		l.size--

		return true
	}

	return false
}

// Contains reports whether value occurs in the list. Complexity: O(n).
func (l *List[T]) Contains(value T) bool {
	for n := l.head; n != nil; n = n.next {
		if n.value == value {
			return true
		}
	}

	return false
}

// Values returns the stored elements head-to-tail. Complexity: O(n).
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}

	return out
}
