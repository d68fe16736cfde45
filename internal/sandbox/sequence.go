package sandbox

// Sequence is the backing store of a handle. Handles never call RemoveLast on an empty
// sequence and never pass an out of bounds index to Slot or Swap.
type Sequence[T any] interface {
	Len() int
	Append(value T)
	RemoveLast() T

	// Slot returns a pointer to the element at index i, it is used for both reads and writes.
	Slot(i int) *T
	Swap(i, j int)
}

// Versioned is implemented by sequences able to report changes of their length, handles over
// such sequences detect mutations that did not go through them.
type Versioned interface {
	Version() uint64
}

// SliceSeq adapts a pointer to a slice to the Sequence interface.
// Appending to the slice directly while a handle is live is not detected.
type SliceSeq[T any] struct {
	slice *[]T
}

func FromSlice[T any](slice *[]T) *SliceSeq[T] {
	return &SliceSeq[T]{slice: slice}
}

func (s *SliceSeq[T]) Len() int {
	return len(*s.slice)
}

func (s *SliceSeq[T]) Append(value T) {
	*s.slice = append(*s.slice, value)
}

func (s *SliceSeq[T]) RemoveLast() T {
	slice := *s.slice
	last := len(slice) - 1
	elem := slice[last]

	var zero T
	slice[last] = zero
	*s.slice = slice[:last]
	return elem
}

func (s *SliceSeq[T]) Slot(i int) *T {
	return &(*s.slice)[i]
}

func (s *SliceSeq[T]) Swap(i, j int) {
	slice := *s.slice
	slice[i], slice[j] = slice[j], slice[i]
}
