package purse_test

import (
	"errors"
	"fmt"

	"github.com/typedmoney/purse"
)

// In this example, a wallet pays a shipping charge smaller than its
// balance, leaving change and no unpaid remainder.
func Example_shippingPayment() {
	wallet := purse.MustNewMoney[purse.EUR](uint32(10))
	shipping := purse.NewShippingFromMinorUnits[purse.EUR](uint32(12))

	remaining, unpaid := purse.Pay(wallet, shipping)

	fmt.Println("remaining:", remaining)
	fmt.Println("unpaid:   ", unpaid)
	// Output:
	// remaining: 9.88 EUR
	// unpaid:    0.00 EUR
}

// The balance and the cost may be backed by different integer widths;
// the taken amount is reported in the cost's width and never exceeds
// what was available.
func ExampleTake() {
	pocket := purse.NewMoneyFromMinorUnits[purse.JPY](uint8(15))
	fare := purse.NewFeeFromMinorUnits[purse.JPY](uint32(20))

	remaining, taken := purse.Take(pocket, fare)

	fmt.Println(remaining, taken)
	// Output:
	// 0 JPY 15 JPY
}

func ExamplePay() {
	wallet := purse.MustNewMoney[purse.SEK](uint16(190))
	price := purse.MustNewPrice[purse.SEK](uint16(200))

	remaining, unpaid := purse.Pay(wallet, price)

	fmt.Println(remaining, unpaid)
	// Output:
	// 0.00 SEK 10.00 SEK
}

// PayFull refuses partial payment: on insufficient funds it returns an
// error carrying both the required cost and the untouched balance.
func ExamplePayFull() {
	wallet := purse.MustNewMoney[purse.SEK](uint16(190))
	price := purse.MustNewPrice[purse.SEK](uint16(200))

	_, err := purse.PayFull(wallet, price)

	fmt.Println(errors.Is(err, purse.ErrInsufficientFunds))
	fmt.Println(err)
	// Output:
	// true
	// not enough money to pay price: required 200.00 SEK, available 190.00 SEK
}

func ExampleParseMoney() {
	m, err := purse.ParseMoney[purse.SEK, uint32]("1.33")
	if err != nil {
		panic(err)
	}
	fmt.Println(m)
	// Output:
	// 1.33 SEK
}

// Decimal bridges a typed balance into the decimal package for
// open-ended arithmetic such as rates and percentages.
func ExampleMoney_Decimal() {
	m := purse.NewMoneyFromMinorUnits[purse.USD](uint64(1999))

	d, err := m.Decimal()
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// Output:
	// 19.99
}

func ExampleMoney_String() {
	fmt.Println(purse.NewMoneyFromMinorUnits[purse.SEK](uint32(133)))
	fmt.Println(purse.NewMoneyFromMinorUnits[purse.SEK](uint32(100)))
	fmt.Println(purse.NewMoneyFromMinorUnits[purse.JPY](uint32(5)))
	fmt.Println(purse.NewMoneyFromMinorUnits[purse.OMR](uint32(1001)))
	// Output:
	// 1.33 SEK
	// 1.00 SEK
	// 5 JPY
	// 1.001 OMR
}
