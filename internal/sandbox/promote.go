package sandbox

import "github.com/inoxlang/sandboxvec/internal/nat"

// Sandboxed returns a handle over seq with a guarantee of 0, elements already present are not
// tracked. The caller should not mutate seq directly, nor create another handle over it, until
// it is done with the handle. If seq implements Versioned such length changes make the handle
// panic with ErrSequenceMutated; they are not detected for other sequences (e.g. SliceSeq).
func Sandboxed[T any](seq Sequence[T]) Handle[T, nat.Z] {
	return newHandle[T, nat.Z](seq)
}

// Scope calls body with a handle over seq and returns its result. The handle should not
// escape body.
func Scope[T, R any](seq Sequence[T], body func(h Handle[T, nat.Z]) R) R {
	return body(Sandboxed(seq))
}

// Do is the same as Scope for bodies without result.
func Do[T any](seq Sequence[T], body func(h Handle[T, nat.Z])) {
	body(Sandboxed(seq))
}

// WithMinLength returns a handle guaranteeing Target elements if seq is long enough.
func WithMinLength[Target nat.Nat, T any](seq Sequence[T]) (Handle[T, Target], bool) {
	if seq.Len() < nat.Of[Target]() {
		return Handle[T, Target]{}, false
	}
	return newHandle[T, Target](seq), true
}
