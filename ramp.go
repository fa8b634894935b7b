package imstr

import "math"

// Ramp is an ordered run of characters from lightest (index 0) to densest.
// A Ramp built from a string holds one element per rune, so multi-byte
// characters such as block elements occupy one cell each.
type Ramp []rune

// Reverse returns a new ramp in the opposite order. The receiver is left
// untouched.
func (r Ramp) Reverse() Ramp {
	rev := make(Ramp, len(r))
	for i, c := range r {
		rev[len(r)-1-i] = c
	}
	return rev
}

// Index quantizes a normalized intensity in [0, 1] to a ramp position,
// round(x * (len-1)) with ties to even. Inputs outside [0, 1] are clamped, so
// any input yields a valid index.
func (r Ramp) Index(x float64) int {
	switch {
	case math.IsNaN(x) || x <= 0:
		return 0
	case x >= 1:
		return len(r) - 1
	}
	return int(math.RoundToEven(x * float64(len(r)-1)))
}

// Char returns the character for a normalized intensity.
func (r Ramp) Char(x float64) rune {
	return r[r.Index(x)]
}

func (r Ramp) String() string {
	return string(r)
}
