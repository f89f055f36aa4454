package datastructures

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// none marks an absent next/prev relation or an unset head/tail.
const none = -1

type (
	// DoublyLinkedList represents a doubly linked list.
	// Nodes live in an arena and refer to each other by index.
	DoublyLinkedList[T comparable] struct {
		head  int
		tail  int
		nodes []node[T]
		free  *Deque[int]
	}

	// node represents an element in the doubly linked list.
	node[T comparable] struct {
		value T
		prev  int
		next  int
	}
)

// NewDoublyLinkedList creates a new, empty list.
func NewDoublyLinkedList[T comparable]() *DoublyLinkedList[T] {
	return &DoublyLinkedList[T]{
		head: none,
		tail: none,
		free: NewDeque[int](8),
	}
}

// alloc stores value in a released slot if one exists, otherwise grows the arena.
func (l *DoublyLinkedList[T]) alloc(value T) int {
	n := node[T]{value: value, prev: none, next: none}
	if i, err := l.free.PopFront(); err == nil {
		l.nodes[i] = n
		return i
	}
	l.nodes = append(l.nodes, n)
	return len(l.nodes) - 1
}

// release clears both relations of slot i and hands it back for reuse.
func (l *DoublyLinkedList[T]) release(i int) T {
	value := l.nodes[i].value
	l.nodes[i] = node[T]{prev: none, next: none}
	l.free.PushBack(i)
	return value
}

// lookup returns the slot of the first node holding value, or none.
func (l *DoublyLinkedList[T]) lookup(value T) int {
	for i := l.head; i != none; i = l.nodes[i].next {
		if l.nodes[i].value == value {
			return i
		}
	}
	return none
}

// spliceAfter links a new node holding value directly after slot at.
func (l *DoublyLinkedList[T]) spliceAfter(at int, value T) {
	n := l.alloc(value)
	next := l.nodes[at].next
	l.nodes[n].prev = at
	l.nodes[n].next = next
	l.nodes[at].next = n
	if next == none {
		l.tail = n
	} else {
		l.nodes[next].prev = n
	}
}

// PushFront adds a value to the head of the list.
func (l *DoublyLinkedList[T]) PushFront(value T) {
	n := l.alloc(value)
	if l.head == none {
		l.head = n
		l.tail = n
		return
	}
	l.nodes[n].next = l.head
	l.nodes[l.head].prev = n
	l.head = n
}

// PushBack adds a value to the tail of the list.
func (l *DoublyLinkedList[T]) PushBack(value T) {
	n := l.alloc(value)
	if l.tail == none {
		l.head = n
		l.tail = n
		return
	}
	l.nodes[n].prev = l.tail
	l.nodes[l.tail].next = n
	l.tail = n
}

// InsertAfterValue inserts value right after the first node equal to target.
// It returns ErrEmpty or ErrNotFound and leaves the list untouched when
// there is nothing to insert after.
func (l *DoublyLinkedList[T]) InsertAfterValue(target, value T) error {
	if l.head == none {
		return ErrEmpty
	}
	at := l.lookup(target)
	if at == none {
		return ErrNotFound
	}
	l.spliceAfter(at, value)
	return nil
}

// InsertAtIndex inserts value so that it ends up at the given 0-based index.
// Valid indexes are 0 through Length() inclusive.
func (l *DoublyLinkedList[T]) InsertAtIndex(index int, value T) error {
	if index < 0 {
		return ErrOutOfRange
	}
	if index == 0 {
		l.PushFront(value)
		return nil
	}

	length := l.Length()
	if index > length {
		return ErrOutOfRange
	}
	if index == length {
		l.PushBack(value)
		return nil
	}

	at := l.head
	for i := 0; i < index-1; i++ {
		at = l.nodes[at].next
	}
	l.spliceAfter(at, value)
	return nil
}

// DeleteFront removes and returns the value at the head of the list.
func (l *DoublyLinkedList[T]) DeleteFront() (T, error) {
	if l.head == none {
		var zero T
		return zero, ErrEmpty
	}
	old := l.head
	if l.head == l.tail {
		l.head = none
		l.tail = none
		return l.release(old), nil
	}
	l.head = l.nodes[old].next
	l.nodes[l.head].prev = none
	return l.release(old), nil
}

// DeleteBack removes and returns the value at the tail of the list.
func (l *DoublyLinkedList[T]) DeleteBack() (T, error) {
	if l.tail == none {
		var zero T
		return zero, ErrEmpty
	}
	old := l.tail
	if l.head == l.tail {
		l.head = none
		l.tail = none
		return l.release(old), nil
	}
	l.tail = l.nodes[old].prev
	l.nodes[l.tail].next = none
	return l.release(old), nil
}

// DeleteByValue removes the first node equal to value.
func (l *DoublyLinkedList[T]) DeleteByValue(value T) error {
	if l.head == none {
		return ErrEmpty
	}

	at := l.lookup(value)
	switch at {
	case none:
		return ErrNotFound
	case l.head:
		_, err := l.DeleteFront()
		return err
	case l.tail:
		_, err := l.DeleteBack()
		return err
	}

	prev, next := l.nodes[at].prev, l.nodes[at].next
	l.nodes[prev].next = next
	l.nodes[next].prev = prev
	l.release(at)
	return nil
}

// Reverse flips the list in place by swapping every node's relations.
func (l *DoublyLinkedList[T]) Reverse() {
	if l.head == l.tail {
		return
	}
	for i := l.head; i != none; {
		n := &l.nodes[i]
		n.next, n.prev = n.prev, n.next
		i = n.prev
	}
	l.head, l.tail = l.tail, l.head
}

// Find returns whether value is in the list and the index of its first occurrence.
func (l *DoublyLinkedList[T]) Find(value T) (bool, int) {
	index := 0
	for i := l.head; i != none; i = l.nodes[i].next {
		if l.nodes[i].value == value {
			return true, index
		}
		index++
	}
	return false, 0
}

// Length counts the nodes reachable from the head.
func (l *DoublyLinkedList[T]) Length() int {
	count := 0
	for i := l.head; i != none; i = l.nodes[i].next {
		count++
	}
	return count
}

// IsEmpty reports whether the list has no nodes.
func (l *DoublyLinkedList[T]) IsEmpty() bool {
	return l.head == none
}

// Front returns the value at the head of the list.
func (l *DoublyLinkedList[T]) Front() (T, bool) {
	if l.head == none {
		var zero T
		return zero, false
	}
	return l.nodes[l.head].value, true
}

// Back returns the value at the tail of the list.
func (l *DoublyLinkedList[T]) Back() (T, bool) {
	if l.tail == none {
		var zero T
		return zero, false
	}
	return l.nodes[l.tail].value, true
}

// All returns an iterator over the values from head to tail.
func (l *DoublyLinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := l.head; i != none; i = l.nodes[i].next {
			if !yield(l.nodes[i].value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the values from tail to head.
func (l *DoublyLinkedList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := l.tail; i != none; i = l.nodes[i].prev {
			if !yield(l.nodes[i].value) {
				return
			}
		}
	}
}

// Values returns the values from head to tail.
func (l *DoublyLinkedList[T]) Values() []T {
	return slices.Collect(l.All())
}

func (l *DoublyLinkedList[T]) String() string {
	if l.head == none {
		return "[]"
	}
	var b strings.Builder
	for i := l.head; i != none; i = l.nodes[i].next {
		if i != l.head {
			b.WriteString(" <-> ")
		}
		fmt.Fprintf(&b, "%v", l.nodes[i].value)
	}
	return b.String()
}

// Clear removes all elements from the list.
func (l *DoublyLinkedList[T]) Clear() {
	l.head = none
	l.tail = none
	l.nodes = nil
	l.free = NewDeque[int](8)
}

// Verify walks the list in both directions and checks that the next and prev
// relations describe the same chain.
func (l *DoublyLinkedList[T]) Verify() error {
	if (l.head == none) != (l.tail == none) {
		return fmt.Errorf("%w: head is %d but tail is %d", ErrCorrupted, l.head, l.tail)
	}
	if l.head == none {
		return nil
	}
	if p := l.nodes[l.head].prev; p != none {
		return fmt.Errorf("%w: head has prev %d", ErrCorrupted, p)
	}
	if n := l.nodes[l.tail].next; n != none {
		return fmt.Errorf("%w: tail has next %d", ErrCorrupted, n)
	}

	live := len(l.nodes) - l.free.Size()

	forward, last := 0, none
	for i := l.head; i != none; i = l.nodes[i].next {
		if forward++; forward > live {
			return fmt.Errorf("%w: forward walk does not terminate", ErrCorrupted)
		}
		if l.nodes[i].prev != last {
			return fmt.Errorf("%w: node %d has prev %d, expected %d", ErrCorrupted, i, l.nodes[i].prev, last)
		}
		last = i
	}
	if last != l.tail {
		return fmt.Errorf("%w: forward walk ends at %d, tail is %d", ErrCorrupted, last, l.tail)
	}

	backward, last := 0, none
	for i := l.tail; i != none; i = l.nodes[i].prev {
		if backward++; backward > live {
			return fmt.Errorf("%w: backward walk does not terminate", ErrCorrupted)
		}
		if l.nodes[i].next != last {
			return fmt.Errorf("%w: node %d has next %d, expected %d", ErrCorrupted, i, l.nodes[i].next, last)
		}
		last = i
	}
	if last != l.head {
		return fmt.Errorf("%w: backward walk ends at %d, head is %d", ErrCorrupted, last, l.head)
	}

	if forward != live {
		return fmt.Errorf("%w: %d nodes reachable, %d allocated", ErrCorrupted, forward, live)
	}
	return nil
}
