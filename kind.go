package purse

//go:generate go run scripts/kind/codegen.go

// Kind names a category of payable amount, such as a price or a shipping
// charge. It is implemented by zero-size marker structs generated by
// scripts/kind/codegen.go.
//
// Like [Currency], a kind is carried by [Cost] as a type parameter:
// two costs of different kinds are different types even when they wrap
// the same currency and integer width, so a shipping charge can never be
// passed where a sale price is expected.
type Kind interface {
	// Kind returns the lower-case label of the kind, used in error messages.
	Kind() string
}
