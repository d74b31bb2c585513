package purse

import (
	"fmt"
)

// Cost type represents a non-negative payable amount of kind K in
// currency C, counted in minor units and backed by the unsigned integer V.
// Its zero value corresponds to zero minor units.
//
// Cost is structurally identical to [Money] but nominally distinct:
// funds in hand and obligations to pay cannot be substituted for one
// another. Costs of different kinds are likewise distinct types, so a
// [Shipping] charge can never stand in for a [Price] even when both wrap
// the same currency and width.
type Cost[V Value, C Currency, K Kind] struct {
	value V // minor units
}

// NewCost returns a cost of kind K worth value major units of currency C,
// scaled to minor units by the currency's [Currency.MinorUnits] factor.
// Generated kind-specific constructors such as [NewPrice] and
// [NewShipping] wrap this function.
// See also constructor [NewCostFromMinorUnits], which does not scale.
//
// NewCost returns an error if the scaled value overflows V.
func NewCost[K Kind, C Currency, V Value](value V) (Cost[V, C, K], error) {
	var c C
	u, err := scaleToMinorUnits(value, c.MinorUnits())
	if err != nil {
		return Cost[V, C, K]{}, fmt.Errorf("scaling to minor units: %w", err)
	}
	return Cost[V, C, K]{value: u}, nil
}

// MustNewCost is like [NewCost] but panics if the cost cannot be constructed.
// It simplifies safe initialization of global variables holding costs.
func MustNewCost[K Kind, C Currency, V Value](value V) Cost[V, C, K] {
	a, err := NewCost[K, C](value)
	if err != nil {
		panic(fmt.Sprintf("NewCost(%v) failed: %v", value, err))
	}
	return a
}

// NewCostFromMinorUnits returns a cost of kind K worth units minor units
// of currency C. The value is wrapped as is, without scaling, so the
// constructor cannot fail.
// See also method [Cost.MinorUnits].
func NewCostFromMinorUnits[K Kind, C Currency, V Value](units V) Cost[V, C, K] {
	return Cost[V, C, K]{value: units}
}

// MinorUnits returns the cost in minor units of its currency.
// See also constructor [NewCostFromMinorUnits].
func (a Cost[V, C, K]) MinorUnits() V {
	return a.value
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Cost[V, C, K]) IsZero() bool {
	return a.value == 0
}

// Equal returns true if the cost and the balance are numerically equal.
// The comparison only typechecks for matching currencies and widths.
func (a Cost[V, C, K]) Equal(m Money[V, C]) bool {
	return a.value == m.value
}

// Cmp compares the cost with a balance of the same currency and width
// and returns:
//
//	-1 if a < m
//	 0 if a = m
//	+1 if a > m
//
// See also function [Take], which compares across widths.
func (a Cost[V, C, K]) Cmp(m Money[V, C]) int {
	switch {
	case a.value < m.value:
		return -1
	case a.value > m.value:
		return 1
	}
	return 0
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the cost, e.g. "0.12 EUR".
// See also method [Money.String].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Cost[V, C, K]) String() string {
	var c C
	return formatMinorUnits(uint64(a.value), c.MinorUnits()) + " " + c.Code()
}
