package decimal

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the money amount to paise using banker's rounding
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// RoundUpToTen rounds the amount up to the next multiple of ten,
// the convention used for pay columns in spreadsheet exports.
func (m Money) RoundUpToTen() Money {
	ten := decimal.NewFromInt(10)
	return Money{m.Decimal.Div(ten).Ceil().Mul(ten)}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Mul multiplies by a decimal factor
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// Div divides by a decimal factor
func (m Money) Div(factor decimal.Decimal) Money {
	return Money{m.Decimal.Div(factor)}
}

// GreaterThan checks if this amount is greater than another
func (m Money) GreaterThan(other Money) bool {
	return m.Decimal.GreaterThan(other.Decimal)
}

// LessThan checks if this amount is less than another
func (m Money) LessThan(other Money) bool {
	return m.Decimal.LessThan(other.Decimal)
}

// Equal checks if this amount equals another
func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

// IsZero checks if the amount is zero
func (m Money) IsZero() bool {
	return m.Decimal.IsZero()
}

// Min returns the minimum of two Money amounts
func Min(a, b Money) Money {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the maximum of two Money amounts
func Max(a, b Money) Money {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the string representation with two decimal places
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format formats the money amount with a rupee prefix
func (m Money) Format() string {
	return "₹" + m.String()
}

// FormatIndianScale formats large amounts in lakhs and crores, the
// scale conventionally used on Indian financial statements.
func (m Money) FormatIndianScale() string {
	crore := decimal.NewFromInt(10000000)
	lakh := decimal.NewFromInt(100000)
	switch {
	case m.Decimal.GreaterThanOrEqual(crore):
		return "₹" + m.Decimal.Div(crore).StringFixed(2) + "Cr"
	case m.Decimal.GreaterThanOrEqual(lakh):
		return "₹" + m.Decimal.Div(lakh).StringFixed(2) + "L"
	default:
		return "₹" + m.Decimal.StringFixed(0)
	}
}
