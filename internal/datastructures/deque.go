package datastructures

// Deque is a growable double-ended queue backed by a ring buffer.
// DoublyLinkedList keeps its released arena slots in one.
type Deque[T any] struct {
	data []T
	size int
	head int
}

// NewDeque creates a new Deque with room for capacity elements before it grows.
func NewDeque[T any](capacity int) *Deque[T] {
	if capacity <= 0 {
		capacity = 1
	}
	return &Deque[T]{data: make([]T, capacity)}
}

// grow doubles the buffer, unrolling the ring so head lands on index 0.
func (d *Deque[T]) grow() {
	data := make([]T, len(d.data)*2)
	for i := 0; i < d.size; i++ {
		data[i] = d.data[(d.head+i)%len(d.data)]
	}
	d.data = data
	d.head = 0
}

// PushFront adds an element to the front of the deque.
func (d *Deque[T]) PushFront(value T) {
	if d.size == len(d.data) {
		d.grow()
	}
	d.head = (d.head - 1 + len(d.data)) % len(d.data)
	d.data[d.head] = value
	d.size++
}

// PushBack adds an element to the back of the deque.
func (d *Deque[T]) PushBack(value T) {
	if d.size == len(d.data) {
		d.grow()
	}
	d.data[(d.head+d.size)%len(d.data)] = value
	d.size++
}

// PopFront removes an element from the front of the deque.
func (d *Deque[T]) PopFront() (T, error) {
	var zeroValue T
	if d.size == 0 {
		return zeroValue, ErrEmpty
	}
	value := d.data[d.head]
	d.data[d.head] = zeroValue
	d.head = (d.head + 1) % len(d.data)
	d.size--
	return value, nil
}

// PopBack removes an element from the back of the deque.
func (d *Deque[T]) PopBack() (T, error) {
	var zeroValue T
	if d.size == 0 {
		return zeroValue, ErrEmpty
	}
	i := (d.head + d.size - 1) % len(d.data)
	value := d.data[i]
	d.data[i] = zeroValue
	d.size--
	return value, nil
}

// Front returns the element at the front of the deque.
func (d *Deque[T]) Front() (T, error) {
	if d.size == 0 {
		var zeroValue T
		return zeroValue, ErrEmpty
	}
	return d.data[d.head], nil
}

// Back returns the element at the back of the deque.
func (d *Deque[T]) Back() (T, error) {
	if d.size == 0 {
		var zeroValue T
		return zeroValue, ErrEmpty
	}
	return d.data[(d.head+d.size-1)%len(d.data)], nil
}

// Size returns the number of elements in the deque.
func (d *Deque[T]) Size() int {
	return d.size
}

// Empty checks if the deque is empty.
func (d *Deque[T]) Empty() bool {
	return d.size == 0
}
