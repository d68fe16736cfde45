package sandbox

import "strconv"

type Direction uint8

const (
	Forward Direction = iota
	Reverse
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	default:
		return "Direction(" + strconv.Itoa(int(d)) + ")"
	}
}

// An Index describes an access. A forward index of magnitude m designates the element at
// position m, a reverse index of magnitude k designates the element at position Len() - k.
type Index struct {
	Magnitude uint
	Direction Direction
}

func ForwardIndex(m uint) Index {
	return Index{Magnitude: m, Direction: Forward}
}

func ReverseIndex(k uint) Index {
	return Index{Magnitude: k, Direction: Reverse}
}

// WellFormed reports whether the index is not a reverse index of magnitude 0.
func (i Index) WellFormed() bool {
	return i.Direction != Reverse || i.Magnitude >= 1
}

// Offset returns the position designated by i in a sequence of the given length.
func (i Index) Offset(length int) int {
	if i.Direction == Reverse {
		return length - int(i.Magnitude)
	}
	return int(i.Magnitude)
}

// String returns "2" for the forward index 2 and "-1" for the reverse index 1.
func (i Index) String() string {
	s := strconv.FormatUint(uint64(i.Magnitude), 10)
	if i.Direction == Reverse {
		return "-" + s
	}
	return s
}

// Valid is the bounds relation: it reports whether idx designates an element of every
// sequence of length >= guarantee.
//   - forward m: 0 <= m < guarantee
//   - reverse k: 1 <= k <= guarantee
func Valid(idx Index, guarantee int) bool {
	if guarantee <= 0 {
		return false
	}
	switch idx.Direction {
	case Forward:
		return idx.Magnitude < uint(guarantee)
	case Reverse:
		return idx.Magnitude >= 1 && idx.Magnitude <= uint(guarantee)
	default:
		return false
	}
}

// NonEmpty reports whether the guarantee allows First, Last and Pop.
func NonEmpty(guarantee int) bool {
	return guarantee > 0
}
