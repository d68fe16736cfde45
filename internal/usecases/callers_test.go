package usecases

import (
	"testing"

	"github.com/inoxlang/sandboxvec/internal/testconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringStack(t *testing.T) {
	testconfig.AllowParallelization(t)

	variants := map[string]func(s *StringStack, v string) (*string, bool){
		"sandboxed": withOk((*StringStack).PushAndGetMut),
		"scoped":    withOk((*StringStack).PushAndGetMutScoped),
		"panicking": withOk((*StringStack).PushAndGetMutPanicking),
		"deferring": (*StringStack).PushAndGetMutDeferring,
	}

	for name, pushAndGetMut := range variants {
		t.Run(name, func(t *testing.T) {
			s := NewStringStack("a")

			ref, ok := pushAndGetMut(s, "b")
			require.True(t, ok)
			require.NotNil(t, ref)
			assert.Equal(t, "b", *ref)

			*ref += "!"
			assert.Equal(t, []string{"a", "b!"}, s.Values())
		})
	}
}

func TestFrontInserter(t *testing.T) {
	testconfig.AllowParallelization(t)

	variants := map[string]func(f *FrontInserter, v string){
		"sandboxed": (*FrontInserter).InsertFront,
		"panicking": (*FrontInserter).InsertFrontPanicking,
	}

	for name, insertFront := range variants {
		t.Run(name, func(t *testing.T) {
			f := NewFrontInserter()

			insertFront(f, "a")
			assert.Equal(t, []string{"a"}, f.Values())

			insertFront(f, "b")
			assert.Equal(t, []string{"b", "a"}, f.Values())

			insertFront(f, "c")
			assert.Equal(t, []string{"c", "a", "b"}, f.Values())
		})
	}
}

func TestJournal(t *testing.T) {
	testconfig.AllowParallelization(t)

	variants := map[string]func(j *Journal, entry string) (string, bool){
		"sandboxed":  withOk((*Journal).SaveAndReference),
		"panicking":  withOk((*Journal).SaveAndReferencePanicking),
		"defaulting": withOk((*Journal).SaveAndReferenceDefaulting),
		"deferring":  (*Journal).SaveAndReferenceDeferring,
	}

	for name, saveAndReference := range variants {
		t.Run(name, func(t *testing.T) {
			j := NewJournal("first")

			saved, ok := saveAndReference(j, "second")
			require.True(t, ok)
			assert.Equal(t, "second", saved)

			saved, ok = saveAndReference(j, "third")
			require.True(t, ok)
			assert.Equal(t, "third", saved)
			assert.Equal(t, []string{"first", "second", "third"}, j.Entries())
		})
	}
}

// withOk adapts a variant without optional result to the signature of the deferring variants.
func withOk[R any, V any](fn func(receiver R, arg string) V) func(R, string) (V, bool) {
	return func(receiver R, arg string) (V, bool) {
		return fn(receiver, arg), true
	}
}
