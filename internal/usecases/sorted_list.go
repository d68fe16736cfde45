// Package usecases contains callers of sandbox handles. Most of them come with a baseline
// version written without handles, that either panics, silently defaults or returns an
// optional value that can never be absent.
package usecases

import (
	"errors"
	"fmt"

	"github.com/inoxlang/sandboxvec/internal/memds"
	"github.com/inoxlang/sandboxvec/internal/nat"
	"github.com/inoxlang/sandboxvec/internal/sandbox"
	"github.com/rs/zerolog"
	"golang.org/x/exp/constraints"
)

var (
	ErrOutOfOrder = errors.New("value is lower than the maximum of the sorted list")
)

// A SortedList is a list of sorted values with a cache of their bounds.
// The cache is updated each time the values change and is absent if there are no values.
type SortedList[T constraints.Ordered] struct {
	values *memds.Vec[T]
	bounds *Bounds[T]
	logger zerolog.Logger
}

type Bounds[T constraints.Ordered] struct {
	Min T `json:"min"`
	Max T `json:"max"`
}

// NewSortedList returns an empty list, pass zerolog.Nop() to disable logging.
func NewSortedList[T constraints.Ordered](logger zerolog.Logger) *SortedList[T] {
	return &SortedList[T]{
		values: memds.NewVec[T](),
		logger: logger,
	}
}

// Bounds returns the cached bounds, the second result is false if the list is empty.
func (l *SortedList[T]) Bounds() (Bounds[T], bool) {
	if l.bounds == nil {
		return Bounds[T]{}, false
	}
	return *l.bounds, true
}

func (l *SortedList[T]) Values() []T {
	return l.values.Values()
}

func (l *SortedList[T]) Len() int {
	return l.values.Len()
}

// TryPush appends value if it is not lower than the maximum.
func (l *SortedList[T]) TryPush(value T) error {
	if l.bounds != nil && l.bounds.Max > value {
		return fmt.Errorf("%w: %v < %v", ErrOutOfOrder, value, l.bounds.Max)
	}

	h := sandbox.Push(sandbox.Sandboxed(l.values), value)
	l.setBounds(sandbox.First(h), sandbox.Last(h))
	return nil
}

// Pop removes the greatest value, the second result is false if the list is empty.
func (l *SortedList[T]) Pop() (value T, ok bool) {
	h, ok := sandbox.WithMinLength[nat.N1](l.values)
	if !ok {
		return
	}

	rest, popped := sandbox.Pop(h)

	if nonEmpty, ok := sandbox.AsNonEmpty(rest); ok {
		l.setBounds(sandbox.First(nonEmpty), sandbox.Last(nonEmpty))
	} else {
		l.clearBounds()
	}
	return popped, true
}

// TryPushBaseline does the same as TryPush without handles, it panics if the push is
// ever moved after the bounds computation.
func (l *SortedList[T]) TryPushBaseline(value T) error {
	if l.bounds != nil && l.bounds.Max > value {
		return fmt.Errorf("%w: %v < %v", ErrOutOfOrder, value, l.bounds.Max)
	}

	l.values.Push(value)

	lowest, ok := l.values.Get(0)
	if !ok {
		panic(errors.New("first value should exist after push"))
	}
	highest, ok := l.values.Get(l.values.Len() - 1)
	if !ok {
		panic(errors.New("last value should exist after push"))
	}
	l.setBounds(lowest, highest)
	return nil
}

// PopBaseline does the same as Pop without handles.
func (l *SortedList[T]) PopBaseline() (value T, ok bool) {
	value, ok = l.values.Pop()

	lowest, hasLowest := l.values.Get(0)
	highest, hasHighest := l.values.Get(l.values.Len() - 1)
	if hasLowest && hasHighest {
		l.setBounds(lowest, highest)
	} else {
		l.clearBounds()
	}
	return
}

func (l *SortedList[T]) setBounds(lowest, highest T) {
	l.bounds = &Bounds[T]{Min: lowest, Max: highest}
	l.logger.Debug().Interface("min", lowest).Interface("max", highest).Msg("bounds updated")
}

func (l *SortedList[T]) clearBounds() {
	l.bounds = nil
	l.logger.Debug().Msg("bounds cleared")
}
