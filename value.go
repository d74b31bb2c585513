package purse

// Value is the set of integer types that may back a monetary value.
// Any fixed-width unsigned integer qualifies: the constraint provides a
// total ordering, an additive identity (the zero value), a maximum value,
// and subtraction that can be checked for underflow.
// Signed and floating-point types are excluded on purpose, so a monetary
// value can never be negative or lose precision by construction.
type Value interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// maxValue returns the largest value representable by V.
// It is used as a saturation ceiling when translating between widths.
func maxValue[V Value]() V {
	return ^V(0)
}

// checkedSub returns a - b.
// It returns false instead of wrapping around when a < b.
func checkedSub[V Value](a, b V) (V, bool) {
	if a < b {
		return 0, false
	}
	return a - b, true
}

// checkedMul returns a * b, reporting false on overflow.
func checkedMul[V Value](a, b V) (V, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	v := a * b
	if v/a != b {
		return 0, false
	}
	return v, true
}

// convertValue translates v into the width of Dst.
// It returns false if v exceeds the maximum value of Dst; the translation
// is otherwise exact, never truncating.
func convertValue[Dst, Src Value](v Src) (Dst, bool) {
	d := Dst(v)
	if uint64(d) != uint64(v) {
		return 0, false
	}
	return d, true
}
