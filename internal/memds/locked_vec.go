package memds

import (
	"sync"
)

// Thread safe vec. Exclusive gives a callback sole access to the underlying Vec,
// this is how sandbox handles are created over a vec shared by several goroutines.
type LockedVec[T any] struct {
	vec  Vec[T]
	lock sync.RWMutex
}

func NewLockedVec[T any](values ...T) *LockedVec[T] {
	return &LockedVec[T]{vec: *NewVec(values...)}
}

// Push adds a value to the end of the vec.
func (l *LockedVec[T]) Push(value T) {
	l.lock.Lock()
	defer l.lock.Unlock()

	l.vec.Push(value)
}

// PushAll adds zero or more values to the end of the vec.
func (l *LockedVec[T]) PushAll(values ...T) {
	l.lock.Lock()
	defer l.lock.Unlock()

	for _, value := range values {
		l.vec.Push(value)
	}
}

// Pop removes the last element and returns it.
// Second return parameter is true, unless the vec was empty and there was nothing to pop.
func (l *LockedVec[T]) Pop() (value T, ok bool) {
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.vec.Pop()
}

// Exclusive calls fn with the underlying Vec while the vec is locked.
// The Vec should not be retained after fn returns.
func (l *LockedVec[T]) Exclusive(fn func(v *Vec[T])) {
	l.lock.Lock()
	defer l.lock.Unlock()

	fn(&l.vec)
}

// IsEmpty returns true if the vec does not contain any elements.
func (l *LockedVec[T]) IsEmpty() bool {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.vec.Empty()
}

// Len returns the number of elements within the vec.
func (l *LockedVec[T]) Len() int {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.vec.Len()
}

// Clear removes all elements from the vec.
func (l *LockedVec[T]) Clear() {
	l.lock.Lock()
	defer l.lock.Unlock()

	l.vec.Clear()
}

// Values returns a copy of all elements.
func (l *LockedVec[T]) Values() []T {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.vec.Values()
}

func (l *LockedVec[T]) Iterator() *VecIterator[T] {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.vec.Iterator()
}
