package datastructures

import (
	"fmt"
	"iter"
	"strings"
)

type (
	// CircularList is a forward-only ring: the last node links back to the head.
	CircularList[T comparable] struct {
		head *cnode[T]
	}

	cnode[T comparable] struct {
		value T
		next  *cnode[T]
	}
)

// NewCircularList creates a new, empty ring.
func NewCircularList[T comparable]() *CircularList[T] {
	return &CircularList[T]{}
}

// last returns the node whose next is the head. The ring must not be empty.
func (l *CircularList[T]) last() *cnode[T] {
	curr := l.head
	for curr.next != l.head {
		curr = curr.next
	}
	return curr
}

// PushFront makes value the new head and repairs the wrap-around link.
func (l *CircularList[T]) PushFront(value T) {
	n := &cnode[T]{value: value}
	if l.head == nil {
		n.next = n
		l.head = n
		return
	}
	n.next = l.head
	l.last().next = n
	l.head = n
}

// PushBack links value between the last node and the head.
func (l *CircularList[T]) PushBack(value T) {
	n := &cnode[T]{value: value}
	if l.head == nil {
		n.next = n
		l.head = n
		return
	}
	n.next = l.head
	l.last().next = n
}

// PopFront removes and returns the head value.
func (l *CircularList[T]) PopFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmpty
	}
	n := l.head
	if n.next == n {
		l.head = nil
	} else {
		l.last().next = n.next
		l.head = n.next
	}
	n.next = nil
	return n.value, nil
}

// Find returns whether value is in the ring and its index counted from the head.
func (l *CircularList[T]) Find(value T) (bool, int) {
	index := 0
	for v := range l.All() {
		if v == value {
			return true, index
		}
		index++
	}
	return false, 0
}

func (l *CircularList[T]) Length() int {
	count := 0
	for range l.All() {
		count++
	}
	return count
}

func (l *CircularList[T]) IsEmpty() bool {
	return l.head == nil
}

// All returns an iterator that visits each node once, stopping when the walk
// comes back around to the head.
func (l *CircularList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.head == nil {
			return
		}
		curr := l.head
		for {
			if !yield(curr.value) {
				return
			}
			curr = curr.next
			if curr == l.head {
				return
			}
		}
	}
}

func (l *CircularList[T]) String() string {
	if l.head == nil {
		return "Empty list"
	}
	var b strings.Builder
	for v := range l.All() {
		fmt.Fprintf(&b, "%v -> ", v)
	}
	b.WriteString("(back to start)")
	return b.String()
}
