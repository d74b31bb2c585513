package purse

import (
	"errors"
	"fmt"
)

// ErrInsufficientFunds is returned by [PayFull] when a balance cannot
// cover a cost in full. Use [errors.Is] to test for it and [errors.As]
// with [InsufficientFundsError] to inspect the amounts involved.
var ErrInsufficientFunds = errors.New("insufficient funds")

// InsufficientFundsError is the error returned by [PayFull] when the
// required cost exceeds the available balance. It carries both values
// unconsumed, so the caller can add funds and retry.
// It unwraps to [ErrInsufficientFunds].
type InsufficientFundsError[MV, AV Value, C Currency, K Kind] struct {
	Required  Cost[AV, C, K]
	Available Money[MV, C]
}

// Error implements the error interface.
func (e InsufficientFundsError[MV, AV, C, K]) Error() string {
	var k K
	return fmt.Sprintf("not enough money to pay %s: required %v, available %v", k.Kind(), e.Required, e.Available)
}

// Unwrap returns [ErrInsufficientFunds].
func (e InsufficientFundsError[MV, AV, C, K]) Unwrap() error {
	return ErrInsufficientFunds
}

// Take settles the cost against the balance and returns the remaining
// balance together with the amount actually taken, in the cost's width:
//
//   - if the balance covers the cost, taken equals the full cost and the
//     remainder is the balance minus the cost;
//   - otherwise the whole balance is consumed and taken reports only what
//     was available, never more.
//
// The balance and the cost may be backed by different integer widths.
// A cost too large to express in the balance's width is treated as
// unaffordable in full rather than failing the operation.
//
// Take never fails: translations between widths below are proven to fit
// by the comparison branch, so a failed translation means a broken
// [Value] implementation and panics.
func Take[MV, AV Value, C Currency, K Kind](m Money[MV, C], a Cost[AV, C, K]) (remaining Money[MV, C], taken Cost[AV, C, K]) {
	need, ok := convertValue[MV](a.value)
	if !ok {
		// The cost exceeds what MV can hold, so it exceeds any balance.
		need = maxValue[MV]()
	}
	if need < m.value {
		rem, ok := checkedSub(m.value, need)
		if !ok {
			panic(fmt.Sprintf("Take(%v, %v) failed: subtraction underflowed with need below balance", m, a))
		}
		return Money[MV, C]{value: rem}, a
	}
	// The balance is exhausted, exactly or not: taken is capped at what
	// was available. The balance is below or equal to the translated
	// need, which fits in AV, so this translation cannot fail.
	t, ok := convertValue[AV](m.value)
	if !ok {
		panic(fmt.Sprintf("Take(%v, %v) failed: balance does not fit the cost width", m, a))
	}
	return Money[MV, C]{}, Cost[AV, C, K]{value: t}
}

// Pay settles the cost against the balance and returns the remaining
// balance together with the still-unpaid portion of the cost.
// When the balance covers the cost the unpaid portion is zero; otherwise
// the balance is exhausted and the unpaid portion is what remains owed.
// See also functions [Take] and [PayFull].
func Pay[MV, AV Value, C Currency, K Kind](m Money[MV, C], a Cost[AV, C, K]) (remaining Money[MV, C], unpaid Cost[AV, C, K]) {
	remaining, taken := Take(m, a)
	u, ok := checkedSub(a.value, taken.value)
	if !ok {
		panic(fmt.Sprintf("Pay(%v, %v) failed: taken %v exceeds the requested cost", m, a, taken))
	}
	return remaining, Cost[AV, C, K]{value: u}
}

// PayFull settles the cost against the balance only if the balance
// covers it in full, and returns the remaining balance.
//
// PayFull returns an [InsufficientFundsError] carrying the required cost
// and the untouched balance if the cost exceeds the balance.
func PayFull[MV, AV Value, C Currency, K Kind](m Money[MV, C], a Cost[AV, C, K]) (Money[MV, C], error) {
	need, ok := convertValue[MV](a.value)
	if !ok || need > m.value {
		return Money[MV, C]{}, InsufficientFundsError[MV, AV, C, K]{Required: a, Available: m}
	}
	remaining, _ := Take(m, a)
	return remaining, nil
}
