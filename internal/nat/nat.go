// Package nat encodes natural numbers as Go types so that a length guarantee can
// travel in a type parameter. Z is zero and S[N] is N+1.
package nat

// Nat is implemented by Z and S[N]. Types of other packages can only implement it by
// embedding one of them, the value is then the one of the embedded type: depth is
// unexported so it cannot be overridden, and Value is never used to count.
type Nat interface {
	Value() int
	depth() int
}

// Z is the natural number 0.
type Z struct{}

func (Z) Value() int { return 0 }
func (Z) depth() int { return 0 }

// S is the successor of N.
type S[N Nat] struct{}

func (s S[N]) Value() int {
	return s.depth()
}

func (S[N]) depth() int {
	var n N
	return n.depth() + 1
}

// Of returns the value of N.
func Of[N Nat]() int {
	var n N
	return n.depth()
}

type (
	N0  = Z
	N1  = S[N0]
	N2  = S[N1]
	N3  = S[N2]
	N4  = S[N3]
	N5  = S[N4]
	N6  = S[N5]
	N7  = S[N6]
	N8  = S[N7]
	N9  = S[N8]
	N10 = S[N9]
	N11 = S[N10]
	N12 = S[N11]
	N13 = S[N12]
	N14 = S[N13]
	N15 = S[N14]
	N16 = S[N15]
)
