package sandbox

import "github.com/inoxlang/sandboxvec/internal/nat"

//go:generate go run ../../cmd/sandboxgen -out positions_gen.go -max 16

// A Pos is an index proven valid for any sequence whose length is at least N. Every
// function accepting a Pos requires N to be a successor (nat.S[M]), and the zero value of
// such a Pos is the forward index 0, which is valid for all of them.
// Pos[nat.Z] values exist but nothing accepts them.
type Pos[N nat.Nat] struct {
	reverse bool

	//magnitude for forward positions, magnitude - 1 for reverse positions.
	shift uint
}

// Front returns the position of the first element.
func Front[M nat.Nat]() Pos[nat.S[M]] {
	return Pos[nat.S[M]]{}
}

// Back returns the position of the last element.
func Back[M nat.Nat]() Pos[nat.S[M]] {
	return Pos[nat.S[M]]{reverse: true}
}

// Step moves p one element away from the end it is anchored to. The resulting position
// requires one more element.
func Step[M nat.Nat](p Pos[nat.S[M]]) Pos[nat.S[nat.S[M]]] {
	return Pos[nat.S[nat.S[M]]]{reverse: p.reverse, shift: p.shift + 1}
}

// Widen returns the same position under a guarantee greater by one.
func Widen[M nat.Nat](p Pos[nat.S[M]]) Pos[nat.S[nat.S[M]]] {
	return Pos[nat.S[nat.S[M]]]{reverse: p.reverse, shift: p.shift}
}

// Index returns the descriptor of the position.
func (p Pos[N]) Index() Index {
	if p.reverse {
		return ReverseIndex(p.shift + 1)
	}
	return ForwardIndex(p.shift)
}

func (p Pos[N]) String() string {
	return p.Index().String()
}

func (p Pos[N]) offset(length int) int {
	if p.reverse {
		return length - 1 - int(p.shift)
	}
	return int(p.shift)
}
