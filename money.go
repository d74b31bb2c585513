package purse

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/govalues/decimal"
)

var (
	errValueOverflow  = errors.New("monetary value overflow")
	errValueUnderflow = errors.New("monetary value underflow")
	errNegativeValue  = errors.New("negative monetary value")
	errScaleMismatch  = errors.New("too many digits after the decimal point")
)

// Money type represents a non-negative balance of funds in currency C,
// counted in minor units and backed by the unsigned integer V.
// Its zero value corresponds to zero minor units.
//
// The currency is a phantom type parameter: it occupies no memory, so a
// Money value is exactly the size of V, and balances of different
// currencies are distinct types that cannot be mixed.
type Money[V Value, C Currency] struct {
	value V // minor units
}

// NewMoney returns money worth value major units of currency C,
// scaled to minor units by the currency's [Currency.MinorUnits] factor.
// See also constructor [NewMoneyFromMinorUnits], which does not scale.
//
// NewMoney returns an error if the scaled value overflows V.
func NewMoney[C Currency, V Value](value V) (Money[V, C], error) {
	var c C
	u, err := scaleToMinorUnits(value, c.MinorUnits())
	if err != nil {
		return Money[V, C]{}, fmt.Errorf("scaling to minor units: %w", err)
	}
	return Money[V, C]{value: u}, nil
}

// MustNewMoney is like [NewMoney] but panics if the money cannot be constructed.
// It simplifies safe initialization of global variables holding balances.
func MustNewMoney[C Currency, V Value](value V) Money[V, C] {
	m, err := NewMoney[C](value)
	if err != nil {
		panic(fmt.Sprintf("NewMoney(%v) failed: %v", value, err))
	}
	return m
}

// NewMoneyFromMinorUnits returns money worth units minor units of
// currency C (e.g. cents, öre, baisa). The value is wrapped as is,
// without scaling, so the constructor cannot fail.
// See also method [Money.MinorUnits].
func NewMoneyFromMinorUnits[C Currency, V Value](units V) Money[V, C] {
	return Money[V, C]{value: units}
}

// ParseMoney converts a decimal string, such as "1.33", to money of
// currency C backed by V. The fractional part must not be finer than the
// currency's minor unit.
// See also constructor [decimal.ParseExact].
func ParseMoney[C Currency, V Value](s string) (Money[V, C], error) {
	var c C
	digits := minorDigits(c.MinorUnits())
	d, err := decimal.ParseExact(s, digits)
	if err != nil {
		return Money[V, C]{}, fmt.Errorf("parsing money: %w", err)
	}
	if d.IsNeg() {
		return Money[V, C]{}, fmt.Errorf("parsing money: %w", errNegativeValue)
	}
	if d.MinScale() > digits {
		return Money[V, C]{}, fmt.Errorf("parsing money: %w", errScaleMismatch)
	}
	// Rescale the coefficient to exactly the currency's digits.
	coef := d.Coef()
	for scale := d.Scale(); scale > digits; scale-- {
		coef /= 10
	}
	for scale := d.Scale(); scale < digits; scale++ {
		var ok bool
		coef, ok = checkedMul(coef, 10)
		if !ok {
			return Money[V, C]{}, fmt.Errorf("parsing money: %w", errValueOverflow)
		}
	}
	u, ok := convertValue[V](coef)
	if !ok {
		return Money[V, C]{}, fmt.Errorf("parsing money: %w", errValueOverflow)
	}
	return Money[V, C]{value: u}, nil
}

// MustParseMoney is like [ParseMoney] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding balances.
func MustParseMoney[C Currency, V Value](s string) Money[V, C] {
	m, err := ParseMoney[C, V](s)
	if err != nil {
		panic(fmt.Sprintf("ParseMoney(%q) failed: %v", s, err))
	}
	return m
}

// MinorUnits returns the balance in minor units of its currency.
// See also constructor [NewMoneyFromMinorUnits].
func (m Money[V, C]) MinorUnits() V {
	return m.value
}

// IsZero returns:
//
//	true  if m = 0
//	false otherwise
func (m Money[V, C]) IsZero() bool {
	return m.value == 0
}

// Equal returns true if balances are numerically equal.
// Balances of different currencies or widths do not typecheck here.
func (m Money[V, C]) Equal(other Money[V, C]) bool {
	return m.value == other.value
}

// Cmp compares balances and returns:
//
//	-1 if m < other
//	 0 if m = other
//	+1 if m > other
func (m Money[V, C]) Cmp(other Money[V, C]) int {
	switch {
	case m.value < other.value:
		return -1
	case m.value > other.value:
		return 1
	}
	return 0
}

// Add returns the sum of balances m and other.
//
// Add returns an error if the sum overflows V.
func (m Money[V, C]) Add(other Money[V, C]) (Money[V, C], error) {
	v := m.value + other.value
	if v < m.value {
		return Money[V, C]{}, fmt.Errorf("computing [%v + %v]: %w", m, other, errValueOverflow)
	}
	return Money[V, C]{value: v}, nil
}

// Sub returns the difference between balances m and other.
//
// Sub returns an error if other exceeds m, since a balance cannot
// go negative. To settle a charge against a balance, use [Take] or
// [Pay] instead.
func (m Money[V, C]) Sub(other Money[V, C]) (Money[V, C], error) {
	v, ok := checkedSub(m.value, other.value)
	if !ok {
		return Money[V, C]{}, fmt.Errorf("computing [%v - %v]: %w", m, other, errValueUnderflow)
	}
	return Money[V, C]{value: v}, nil
}

// Decimal returns the balance as a [decimal.Decimal] in major units,
// with the scale of the currency. It is the bridge to open-ended decimal
// arithmetic (rates, percentages) outside the typed surface.
//
// Decimal returns an error if the balance has more significant digits
// than [decimal.MaxPrec].
func (m Money[V, C]) Decimal() (decimal.Decimal, error) {
	var c C
	d, err := decimal.ParseExact(formatMinorUnits(uint64(m.value), c.MinorUnits()), minorDigits(c.MinorUnits()))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w", m, err)
	}
	return d, nil
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the balance, e.g. "1.33 SEK".
// The fractional part is zero-padded to the width implied by the
// currency's minor-unit scale; scale-1 currencies render without a
// decimal point, e.g. "5 JPY".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Money[V, C]) String() string {
	var c C
	return formatMinorUnits(uint64(m.value), c.MinorUnits()) + " " + c.Code()
}

// scaleToMinorUnits multiplies a major-unit value by the currency's
// minor-unit factor, checking that both the factor and the product fit in V.
func scaleToMinorUnits[V Value](value V, minorUnits uint64) (V, error) {
	f, ok := convertValue[V](minorUnits)
	if !ok {
		return 0, errValueOverflow
	}
	u, ok := checkedMul(value, f)
	if !ok {
		return 0, errValueOverflow
	}
	return u, nil
}

// formatMinorUnits renders a minor-unit count as "{major}.{minor}" with
// the fractional width implied by the minor-unit scale.
func formatMinorUnits(units, minorUnits uint64) string {
	digits := minorDigits(minorUnits)
	if digits == 0 {
		return strconv.FormatUint(units, 10)
	}
	return fmt.Sprintf("%d.%0*d", units/minorUnits, digits, units%minorUnits)
}
