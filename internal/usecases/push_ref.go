package usecases

import (
	"errors"

	"github.com/inoxlang/sandboxvec/internal/memds"
	"github.com/inoxlang/sandboxvec/internal/nat"
	"github.com/inoxlang/sandboxvec/internal/sandbox"
)

// A StringStack pushes strings and returns a pointer to the pushed element so that the caller
// can update it in place.
type StringStack struct {
	values *memds.Vec[string]
}

func NewStringStack(values ...string) *StringStack {
	return &StringStack{values: memds.NewVec(values...)}
}

func (s *StringStack) Values() []string {
	return s.values.Values()
}

// PushAndGetMut appends value and returns a pointer to it.
func (s *StringStack) PushAndGetMut(value string) *string {
	h := sandbox.Push(sandbox.Sandboxed(s.values), value)
	return sandbox.ReleaseRef(h, sandbox.Rev1(h))
}

// PushAndGetMutScoped does the same as PushAndGetMut with a scoped handle.
func (s *StringStack) PushAndGetMutScoped(value string) *string {
	return sandbox.Scope(s.values, func(h sandbox.Handle[string, nat.Z]) *string {
		pushed := sandbox.Push(h, value)
		return sandbox.ReleaseRef(pushed, sandbox.Rev1(pushed))
	})
}

// PushAndGetMutPanicking panics if the operations are reordered.
func (s *StringStack) PushAndGetMutPanicking(value string) *string {
	s.values.Push(value)
	if s.values.Empty() {
		panic(errors.New("value should always exist"))
	}
	return s.values.Slot(s.values.Len() - 1)
}

// PushAndGetMutDeferring lets the caller handle an absence that cannot happen.
func (s *StringStack) PushAndGetMutDeferring(value string) (*string, bool) {
	s.values.Push(value)
	if s.values.Empty() {
		return nil, false
	}
	return s.values.Slot(s.values.Len() - 1), true
}
