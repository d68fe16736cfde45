// Package sandbox provides handles over sequences whose type carries a lower bound of the
// sequence's length. Operations that need elements (Pop, First, Last, Get, Swap, ...) only
// accept handles whose guarantee proves the access valid, so they have no failure path.
//
// A handle is single-use: operations that may change the length consume the handle they
// are passed and return a new one. Using a consumed handle panics with ErrStaleHandle.
package sandbox

import (
	"errors"
	"fmt"

	"github.com/inoxlang/sandboxvec/internal/nat"
)

var (
	ErrStaleHandle       = errors.New("sandbox handle used after being consumed")
	ErrSequenceMutated   = errors.New("sequence length changed without going through its sandbox handle")
	ErrGuaranteeViolated = errors.New("sequence is shorter than the guarantee of its sandbox handle")
)

// A Handle is an exclusive access to a sequence whose length is at least N.
// The zero Handle is not usable.
type Handle[T any, N nat.Nat] struct {
	borrow *borrow[T]
}

// borrow is shared by the copies of a handle, consuming a handle clears seq.
type borrow[T any] struct {
	seq Sequence[T]

	versioned Versioned //nil if seq is not versioned
	version   uint64
}

func newHandle[T any, N nat.Nat](seq Sequence[T]) Handle[T, N] {
	b := &borrow[T]{seq: seq}
	if versioned, ok := seq.(Versioned); ok {
		b.versioned = versioned
		b.version = versioned.Version()
	}
	assertGuarantee[T, N](seq)
	return Handle[T, N]{borrow: b}
}

// live returns the sequence of a handle that has not been consumed.
func (h Handle[T, N]) live() Sequence[T] {
	b := h.borrow
	if b == nil || b.seq == nil {
		panic(ErrStaleHandle)
	}
	if b.versioned != nil && b.versioned.Version() != b.version {
		panic(ErrSequenceMutated)
	}
	assertGuarantee[T, N](b.seq)
	return b.seq
}

// consume invalidates h (and its copies) and returns its sequence.
func (h Handle[T, N]) consume() Sequence[T] {
	seq := h.live()
	h.borrow.seq = nil
	return seq
}

// Guarantee returns N.
func (h Handle[T, N]) Guarantee() int {
	return nat.Of[N]()
}

// Len returns the actual length of the sequence, it is always >= Guarantee().
func (h Handle[T, N]) Len() int {
	return h.live().Len()
}

// Live reports whether h can still be used.
func (h Handle[T, N]) Live() bool {
	return h.borrow != nil && h.borrow.seq != nil
}

// Values returns a copy of the elements of the sequence.
func (h Handle[T, N]) Values() []T {
	seq := h.live()
	values := make([]T, seq.Len())
	for i := range values {
		values[i] = *seq.Slot(i)
	}
	return values
}

func assertGuarantee[T any, N nat.Nat](seq Sequence[T]) {
	if !debugAssertions {
		return
	}
	guarantee := nat.Of[N]()
	if length := seq.Len(); length < guarantee {
		panic(fmt.Errorf("%w: length is %d, guarantee is %d", ErrGuaranteeViolated, length, guarantee))
	}
}
