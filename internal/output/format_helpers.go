package output

import (
	"strconv"

	pfdecimal "github.com/pfgo/pf-corpus-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as rupee currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return pfdecimal.NewMoneyFromDecimal(amount).Format()
}

// FormatCurrencyCompact formats a decimal using the lakh/crore scale.
func FormatCurrencyCompact(amount decimal.Decimal) string {
	return pfdecimal.NewMoneyFromDecimal(amount).FormatIndianScale()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

func intToString(v int) string { return strconv.Itoa(v) }
