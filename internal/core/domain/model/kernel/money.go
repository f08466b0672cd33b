package kernel

import (
	"errors"
	"fmt"

	"rental/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
var ErrMoneyIsNotConstructed = errors.New("Money must be created via NewMoney, MoneyFromString or ZeroMoney")

// Money is a non-negative amount with two decimal places of precision.
// It is used for daily prices, line price snapshots and order totals.
//
// Example:
//
//	price, err := kernel.MoneyFromString("25.50")
//	subtotal := price.Times(3) // 76.50
type Money struct {
	amount        decimal.Decimal
	isConstructed bool
}

// NewMoney wraps a decimal amount. Negative amounts are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount.String(), 0, "unbounded")
	}
	return Money{amount: amount.Round(2), isConstructed: true}, nil
}

// MoneyFromString parses a decimal string such as "12.5". Non-numeric input is a validation error.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%q is not a number", s))
	}
	return NewMoney(amount)
}

// MustMoney is MoneyFromString for literals known to be valid. It panics otherwise.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// ZeroMoney returns a constructed amount of 0.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, isConstructed: true}
}

func (m Money) Validate() error {
	if !m.isConstructed {
		return ErrMoneyIsNotConstructed
	}
	return nil
}

// Amount returns the decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), isConstructed: true}
}

// Times returns m multiplied by a non-negative integer factor (quantity or days).
func (m Money) Times(factor int) Money {
	if factor < 0 {
		factor = 0
	}
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(factor))), isConstructed: true}
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with two decimals, e.g. "76.50".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

func (m Money) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalText(data []byte) error {
	parsed, err := MoneyFromString(string(data))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
