package memds

import (
	"slices"

	"github.com/goccy/go-json"
)

// thread unsafe growable array.
type Vec[T any] struct {
	elements []T

	//incremented by every mutation that changes the length.
	version uint64
}

func NewVec[T any](values ...T) *Vec[T] {
	return &Vec[T]{elements: slices.Clone(values)}
}

// Push adds a value to the end of the vec.
func (v *Vec[T]) Push(value T) {
	v.elements = append(v.elements, value)
	v.version++
}

// Pop removes the last element and returns it.
// Second return parameter is true, unless the vec was empty and there was nothing to pop.
func (v *Vec[T]) Pop() (value T, ok bool) {
	if len(v.elements) == 0 {
		return
	}
	return v.RemoveLast(), true
}

// Get returns the element at index i.
// Second return parameter is false if i is out of bounds.
func (v *Vec[T]) Get(i int) (value T, ok bool) {
	if i < 0 || i >= len(v.elements) {
		return
	}
	return v.elements[i], true
}

// Set replaces the element at index i, it returns false if i is out of bounds.
func (v *Vec[T]) Set(i int, value T) bool {
	if i < 0 || i >= len(v.elements) {
		return false
	}
	v.elements[i] = value
	return true
}

// Empty returns true if the vec does not contain any elements.
func (v *Vec[T]) Empty() bool {
	return len(v.elements) == 0
}

// Len returns the number of elements within the vec.
func (v *Vec[T]) Len() int {
	return len(v.elements)
}

// Clear removes all elements from the vec.
func (v *Vec[T]) Clear() {
	clear(v.elements)
	v.elements = v.elements[:0]
	v.version++
}

// Values returns a copy of all elements.
func (v *Vec[T]) Values() []T {
	return slices.Clone(v.elements)
}

func (v *Vec[T]) ForEachElem(fn func(i int, e T) error) error {
	for i, e := range v.elements {
		err := fn(i, e)
		if err != nil {
			return err
		}
	}
	return nil
}

// The following methods are the primitives used by sandbox handles, they do not check bounds.

// Append is the same as Push.
func (v *Vec[T]) Append(value T) {
	v.Push(value)
}

// RemoveLast removes the last element and returns it, the vec should not be empty.
func (v *Vec[T]) RemoveLast() T {
	last := len(v.elements) - 1
	elem := v.elements[last]

	var zero T
	v.elements[last] = zero //release the reference for the GC
	v.elements = v.elements[:last]
	v.version++
	return elem
}

// Slot returns a pointer to the element at index i, the pointer is valid until the length changes.
func (v *Vec[T]) Slot(i int) *T {
	return &v.elements[i]
}

func (v *Vec[T]) Swap(i, j int) {
	v.elements[i], v.elements[j] = v.elements[j], v.elements[i]
}

// Version returns a number that changes each time the length of the vec changes.
func (v *Vec[T]) Version() uint64 {
	return v.version
}

func (v *Vec[T]) MarshalJSON() ([]byte, error) {
	if v.elements == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(v.elements)
}

func (v *Vec[T]) UnmarshalJSON(data []byte) error {
	var elements []T
	if err := json.Unmarshal(data, &elements); err != nil {
		return err
	}
	v.elements = elements
	v.version++
	return nil
}

// thread unsafe vec iterator, it iterates over a snapshot.
type VecIterator[T any] struct {
	index    int
	elements []T
}

func (v *Vec[T]) Iterator() *VecIterator[T] {
	return &VecIterator[T]{
		index:    -1,
		elements: slices.Clone(v.elements),
	}
}

func (it *VecIterator[T]) Next() bool {
	if it.index >= len(it.elements)-1 {
		return false
	}
	it.index++
	return true
}

func (it *VecIterator[T]) Value() T {
	return it.elements[it.index]
}

func (it *VecIterator[T]) Index() int {
	return it.index
}
