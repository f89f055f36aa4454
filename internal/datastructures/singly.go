package datastructures

import (
	"fmt"
	"iter"
	"strings"
)

type (
	// SinglyLinkedList is a forward-only linked list.
	SinglyLinkedList[T comparable] struct {
		head *snode[T]
	}

	snode[T comparable] struct {
		value T
		next  *snode[T]
	}
)

// NewSinglyLinkedList creates a new, empty list.
func NewSinglyLinkedList[T comparable]() *SinglyLinkedList[T] {
	return &SinglyLinkedList[T]{}
}

// PushFront adds a value to the head of the list.
func (l *SinglyLinkedList[T]) PushFront(value T) {
	l.head = &snode[T]{value: value, next: l.head}
}

// PushBack walks to the last node and links value after it.
func (l *SinglyLinkedList[T]) PushBack(value T) {
	n := &snode[T]{value: value}
	if l.head == nil {
		l.head = n
		return
	}
	curr := l.head
	for curr.next != nil {
		curr = curr.next
	}
	curr.next = n
}

// InsertAfter inserts value right after the first node equal to target.
func (l *SinglyLinkedList[T]) InsertAfter(target, value T) error {
	if l.head == nil {
		return ErrEmpty
	}
	for curr := l.head; curr != nil; curr = curr.next {
		if curr.value == target {
			curr.next = &snode[T]{value: value, next: curr.next}
			return nil
		}
	}
	return ErrNotFound
}

// InsertAtIndex inserts value so that it ends up at the given 0-based index.
func (l *SinglyLinkedList[T]) InsertAtIndex(index int, value T) error {
	if index < 0 || index > l.Length() {
		return ErrOutOfRange
	}
	if index == 0 {
		l.PushFront(value)
		return nil
	}
	curr := l.head
	for i := 0; i < index-1; i++ {
		curr = curr.next
	}
	curr.next = &snode[T]{value: value, next: curr.next}
	return nil
}

// PopFront removes and returns the value at the head of the list.
func (l *SinglyLinkedList[T]) PopFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmpty
	}
	n := l.head
	l.head = n.next
	n.next = nil
	return n.value, nil
}

// PopBack removes and returns the value at the end of the list.
func (l *SinglyLinkedList[T]) PopBack() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmpty
	}
	if l.head.next == nil {
		n := l.head
		l.head = nil
		return n.value, nil
	}
	curr := l.head
	for curr.next.next != nil {
		curr = curr.next
	}
	n := curr.next
	curr.next = nil
	return n.value, nil
}

// Find returns whether value is in the list and the index of its first occurrence.
func (l *SinglyLinkedList[T]) Find(value T) (bool, int) {
	index := 0
	for curr := l.head; curr != nil; curr = curr.next {
		if curr.value == value {
			return true, index
		}
		index++
	}
	return false, 0
}

func (l *SinglyLinkedList[T]) Length() int {
	count := 0
	for curr := l.head; curr != nil; curr = curr.next {
		count++
	}
	return count
}

func (l *SinglyLinkedList[T]) IsEmpty() bool {
	return l.head == nil
}

// Reverse rewires every next pointer in a single pass.
func (l *SinglyLinkedList[T]) Reverse() {
	var prev *snode[T]
	curr := l.head
	for curr != nil {
		next := curr.next
		curr.next = prev
		prev = curr
		curr = next
	}
	l.head = prev
}

// All returns an iterator over the values from head to end.
func (l *SinglyLinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for curr := l.head; curr != nil; curr = curr.next {
			if !yield(curr.value) {
				return
			}
		}
	}
}

func (l *SinglyLinkedList[T]) String() string {
	var b strings.Builder
	for curr := l.head; curr != nil; curr = curr.next {
		fmt.Fprintf(&b, "%v -> ", curr.value)
	}
	b.WriteString("None")
	return b.String()
}
