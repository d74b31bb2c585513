/*
Package purse implements strongly typed monetary values.
It leans on the type system to make illegal states unrepresentable:
mixing currencies, confusing a balance with a charge, or losing value to
silent integer wraparound are all compile-time errors or impossibilities,
at zero runtime cost beyond the raw integer itself.

# Representation

The package consists of two main types: [Money] and [Cost].
Money represents funds in hand; Cost represents an obligation to be paid.
Both wrap a single unsigned integer counting minor units of a currency
(cents, öre, baisa) and carry their currency as a phantom type parameter,
so a value occupies exactly the memory of its integer.
Cost is additionally tagged with a [Kind] (price, shipping, tax, fee),
keeping unrelated charges from being used interchangeably.

Because the currency and kind are type parameters rather than fields,
there is no runtime check for currency mismatch: Money[uint32, EUR] and
Money[uint32, SEK] are simply different types.

# Currencies and Kinds

Currency markers such as [EUR], [SEK] and [JPY] are zero-size structs
generated by scripts/currency/codegen.go from a CSV table of alphabetic
codes and minor-unit scales. Kind markers and their constructor helpers
([NewPrice], [NewShipping], ...) are generated the same way by
scripts/kind/codegen.go.

# Settlement

The core operation is [Take]: it applies a Money balance to a Cost and
returns the remaining balance together with the amount actually taken,
even when the two sides are backed by different integer widths.
[Pay] builds on Take and reports the still-unpaid portion of the cost.
[PayFull] is the guarded variant: it refuses partial payment and returns
an [InsufficientFundsError] carrying both the required cost and the
untouched balance.

# Errors

Constructors return errors when scaling a value to minor units would
overflow its integer width. Must* constructors panic instead, which
simplifies initialization of globals. Settlement itself never fails:
numeric translations that the settlement branch has proven to fit are
asserted with a panic, since a failure there indicates a broken [Value]
implementation rather than a recoverable condition.
*/
package purse
