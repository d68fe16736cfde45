package sandbox

import "github.com/inoxlang/sandboxvec/internal/nat"

// Operations are functions: methods cannot constrain the guarantee of their receiver, and a
// method of Handle[T, N] returning a Handle[T, nat.S[N]] would be an instantiation cycle.

// Push consumes h, appends value and returns a handle guaranteeing one more element.
func Push[T any, N nat.Nat](h Handle[T, N], value T) Handle[T, nat.S[N]] {
	seq := h.consume()
	seq.Append(value)
	return newHandle[T, nat.S[N]](seq)
}

// Get returns the element at p.
func Get[T any, M nat.Nat](h Handle[T, nat.S[M]], p Pos[nat.S[M]]) T {
	seq := h.live()
	return *seq.Slot(p.offset(seq.Len()))
}

// Ref returns a pointer to the element at p, the pointer should not be used after h is consumed.
func Ref[T any, M nat.Nat](h Handle[T, nat.S[M]], p Pos[nat.S[M]]) *T {
	seq := h.live()
	return seq.Slot(p.offset(seq.Len()))
}

// Set replaces the element at p.
func Set[T any, M nat.Nat](h Handle[T, nat.S[M]], p Pos[nat.S[M]], value T) {
	seq := h.live()
	*seq.Slot(p.offset(seq.Len())) = value
}

// ReleaseGet consumes h and returns the element at p.
func ReleaseGet[T any, M nat.Nat](h Handle[T, nat.S[M]], p Pos[nat.S[M]]) T {
	return *ReleaseRef(h, p)
}

// ReleaseRef consumes h and returns a pointer to the element at p. Unlike the pointer
// returned by Ref the pointer remains valid until the length of the sequence changes.
func ReleaseRef[T any, M nat.Nat](h Handle[T, nat.S[M]], p Pos[nat.S[M]]) *T {
	seq := h.consume()
	return seq.Slot(p.offset(seq.Len()))
}

// Pop consumes h, removes the last element and returns it along with a handle
// guaranteeing one less element.
func Pop[T any, M nat.Nat](h Handle[T, nat.S[M]]) (Handle[T, M], T) {
	seq := h.consume()
	elem := seq.RemoveLast()
	return newHandle[T, M](seq), elem
}

// Swap consumes h, exchanges the elements at a and b and returns a handle with the same guarantee.
func Swap[T any, M nat.Nat](h Handle[T, nat.S[M]], a, b Pos[nat.S[M]]) Handle[T, nat.S[M]] {
	seq := h.consume()
	length := seq.Len()
	seq.Swap(a.offset(length), b.offset(length))
	return newHandle[T, nat.S[M]](seq)
}

// First returns the first element.
func First[T any, M nat.Nat](h Handle[T, nat.S[M]]) T {
	return *FirstRef(h)
}

// Last returns the last element.
func Last[T any, M nat.Nat](h Handle[T, nat.S[M]]) T {
	return *LastRef(h)
}

func FirstRef[T any, M nat.Nat](h Handle[T, nat.S[M]]) *T {
	return h.live().Slot(0)
}

func LastRef[T any, M nat.Nat](h Handle[T, nat.S[M]]) *T {
	seq := h.live()
	return seq.Slot(seq.Len() - 1)
}

// TryNarrow compares the length of the sequence with Target. If the sequence is long
// enough h is consumed and a handle guaranteeing Target elements is returned, Target
// may be lower than the current guarantee. Otherwise h is left untouched and usable.
func TryNarrow[Target nat.Nat, T any, N nat.Nat](h Handle[T, N]) (Handle[T, Target], bool) {
	seq := h.live()
	if seq.Len() < nat.Of[Target]() {
		return Handle[T, Target]{}, false
	}
	h.borrow.seq = nil
	return newHandle[T, Target](seq), true
}

// AsNonEmpty is TryNarrow with a target of 1.
func AsNonEmpty[T any, N nat.Nat](h Handle[T, N]) (Handle[T, nat.N1], bool) {
	return TryNarrow[nat.N1](h)
}
