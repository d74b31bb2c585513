package purse

//go:generate go run scripts/currency/codegen.go

// Currency identifies a monetary unit and its minor-unit scale.
// It is implemented by zero-size marker structs such as [EUR] and [SEK],
// generated by scripts/currency/codegen.go from the [ISO 4217] table.
//
// A currency is carried by [Money] and [Cost] as a type parameter, never
// as a field, so values of different currencies are different types and
// cannot interact without an explicit conversion. The markers themselves
// hold no state and add no size to the values they tag.
//
// [ISO 4217]: https://en.wikipedia.org/wiki/ISO_4217
type Currency interface {
	// Code returns the 3-letter alphabetic code assigned to the currency
	// by the ISO 4217 standard.
	Code() string

	// MinorUnits returns the number of minor units in one major unit of
	// the currency. The currently supported currencies use 1, 100 or 1000:
	//   - 1 indicates a currency without minor units, such as the Japanese Yen;
	//   - 100 indicates currencies like the US Dollar, where 1 cent is 0.01 dollars;
	//   - 1000 indicates currencies like the Omani Rial, where 1 baisa is 0.001 rials.
	MinorUnits() uint64
}

// minorDigits returns the number of decimal digits needed to display the
// fractional part of a currency with the given minor-unit scale.
func minorDigits(minorUnits uint64) int {
	d := 0
	for minorUnits > 1 {
		minorUnits /= 10
		d++
	}
	return d
}
