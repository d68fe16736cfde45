package usecases

import (
	"github.com/inoxlang/sandboxvec/internal/memds"
	"github.com/inoxlang/sandboxvec/internal/nat"
	"github.com/inoxlang/sandboxvec/internal/sandbox"
)

// A FrontInserter inserts values at the beginning of a list in constant time by moving the
// previous first value to the end.
type FrontInserter struct {
	values *memds.Vec[string]
}

func NewFrontInserter(values ...string) *FrontInserter {
	return &FrontInserter{values: memds.NewVec(values...)}
}

func (f *FrontInserter) Values() []string {
	return f.values.Values()
}

func (f *FrontInserter) InsertFront(value string) {
	sandbox.Do(f.values, func(h sandbox.Handle[string, nat.Z]) {
		pushed := sandbox.Push(h, value)
		sandbox.Swap(pushed, sandbox.Fwd0(pushed), sandbox.Rev1(pushed))
	})
}

// InsertFrontPanicking panics if the length is read after the push.
func (f *FrontInserter) InsertFrontPanicking(value string) {
	lastIndex := f.values.Len()
	f.values.Push(value)
	f.values.Swap(0, lastIndex)
}
