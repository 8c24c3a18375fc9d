package datastructures

import (
	"errors"
)

// ErrDequeEmpty is returned when popping or peeking an empty deque.
var ErrDequeEmpty = errors.New("deque is empty")

// Deque represents a double-ended queue backed by a ring buffer.
// It grows when full instead of rejecting pushes.
type Deque[T any] struct {
	data     []T
	size     int
	head     int
	tail     int
	capacity int
}

// NewDeque creates a new Deque with the specified initial capacity.
func NewDeque[T any](capacity int) *Deque[T] {
	if capacity <= 0 {
		panic("capacity must be greater than 0")
	}
	return &Deque[T]{
		data:     make([]T, capacity),
		capacity: capacity,
		head:     0,
		tail:     capacity - 1,
	}
}

// grow doubles the capacity, unrolling the ring so head lands on 0.
func (d *Deque[T]) grow() {
	data := make([]T, d.capacity*2)
	for i := 0; i < d.size; i++ {
		data[i] = d.data[(d.head+i)%d.capacity]
	}
	d.data = data
	d.capacity *= 2
	d.head = 0
	d.tail = d.size - 1
	if d.size == 0 {
		d.tail = d.capacity - 1
	}
}

// PushFront adds an element to the front of the deque.
func (d *Deque[T]) PushFront(value T) {
	if d.size == d.capacity {
		d.grow()
	}
	d.head = (d.head - 1 + d.capacity) % d.capacity
	d.data[d.head] = value
	d.size++
}

// PushBack adds an element to the back of the deque.
func (d *Deque[T]) PushBack(value T) {
	if d.size == d.capacity {
		d.grow()
	}
	d.tail = (d.tail + 1) % d.capacity
	d.data[d.tail] = value
	d.size++
}

// PopFront removes an element from the front of the deque.
func (d *Deque[T]) PopFront() (T, error) {
	var zeroValue T
	if d.size == 0 {
		return zeroValue, ErrDequeEmpty
	}
	value := d.data[d.head]
	d.data[d.head] = zeroValue
	d.head = (d.head + 1) % d.capacity
	d.size--
	return value, nil
}

// PopBack removes an element from the back of the deque.
func (d *Deque[T]) PopBack() (T, error) {
	var zeroValue T
	if d.size == 0 {
		return zeroValue, ErrDequeEmpty
	}
	value := d.data[d.tail]
	d.data[d.tail] = zeroValue
	d.tail = (d.tail - 1 + d.capacity) % d.capacity
	d.size--
	return value, nil
}

// Front returns the element at the front of the deque.
func (d *Deque[T]) Front() (T, error) {
	if d.size == 0 {
		var zeroValue T
		return zeroValue, ErrDequeEmpty
	}
	return d.data[d.head], nil
}

// Back returns the element at the back of the deque.
func (d *Deque[T]) Back() (T, error) {
	if d.size == 0 {
		var zeroValue T
		return zeroValue, ErrDequeEmpty
	}
	return d.data[d.tail], nil
}

// Size returns the number of elements in the deque.
func (d *Deque[T]) Size() int {
	return d.size
}

// Empty checks if the deque is empty.
func (d *Deque[T]) Empty() bool {
	return d.size == 0
}

// Clear drops every element but keeps the allocated buffer.
func (d *Deque[T]) Clear() {
	var zeroValue T
	for i := range d.data {
		d.data[i] = zeroValue
	}
	d.size = 0
	d.head = 0
	d.tail = d.capacity - 1
}
