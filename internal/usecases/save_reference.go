package usecases

import (
	"errors"

	"github.com/inoxlang/sandboxvec/internal/memds"
	"github.com/inoxlang/sandboxvec/internal/sandbox"
)

const DEFAULT_REFERENCE = "err"

// A Journal saves entries and returns the saved entry.
type Journal struct {
	entries *memds.Vec[string]
}

func NewJournal(entries ...string) *Journal {
	return &Journal{entries: memds.NewVec(entries...)}
}

func (j *Journal) Entries() []string {
	return j.entries.Values()
}

// SaveAndReference does not compile if the save is removed or moved after the read.
func (j *Journal) SaveAndReference(entry string) string {
	h := sandbox.Push(sandbox.Sandboxed(j.entries), entry)
	return sandbox.ReleaseGet(h, sandbox.Rev1(h))
}

// SaveAndReferencePanicking panics if the operations are reordered.
func (j *Journal) SaveAndReferencePanicking(entry string) string {
	j.entries.Push(entry)
	last, ok := j.entries.Get(j.entries.Len() - 1)
	if !ok {
		panic(errors.New("value should always exist"))
	}
	return last
}

// SaveAndReferenceDefaulting silently returns DEFAULT_REFERENCE if the operations are reordered.
func (j *Journal) SaveAndReferenceDefaulting(entry string) string {
	j.entries.Push(entry)
	last, ok := j.entries.Get(j.entries.Len() - 1)
	if !ok {
		return DEFAULT_REFERENCE
	}
	return last
}

// SaveAndReferenceDeferring lets the caller handle an absence that cannot happen.
func (j *Journal) SaveAndReferenceDeferring(entry string) (string, bool) {
	j.entries.Push(entry)
	return j.entries.Get(j.entries.Len() - 1)
}

// A SharedJournal is a Journal safe for concurrent use, the save and the read happen
// while the entries are locked.
type SharedJournal struct {
	entries *memds.LockedVec[string]
}

func NewSharedJournal(entries ...string) *SharedJournal {
	return &SharedJournal{entries: memds.NewLockedVec(entries...)}
}

func (j *SharedJournal) Entries() []string {
	return j.entries.Values()
}

func (j *SharedJournal) SaveAndReference(entry string) (saved string) {
	j.entries.Exclusive(func(entries *memds.Vec[string]) {
		h := sandbox.Push(sandbox.Sandboxed(entries), entry)
		saved = sandbox.ReleaseGet(h, sandbox.Rev1(h))
	})
	return
}
