package calculation

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfgo/pf-corpus-calculator/internal/domain"
)

func pensionLedger(t *testing.T) []domain.LedgerRow {
	t.Helper()
	in := baseInput()
	in.DateOfBirth = date(1980, time.January, 15)
	p, err := NewProjectionEngine().Project(in)
	require.NoError(t, err)
	return p.Rows
}

func TestCalculateHigherPension(t *testing.T) {
	rows := pensionLedger(t)
	dob := date(1980, time.January, 15)
	joining := date(2004, time.July, 1)
	highestPay := decimal.NewFromInt(15000)

	result, err := CalculateHigherPension(dob, joining, highestPay, rows)
	require.NoError(t, err)

	// service from 2004 to age 58 in 2038 is well past 20 years
	assert.Equal(t, 730, result.BonusDaysAdded)
	assert.Equal(t, result.ServiceDaysToAug2014+730, result.AdjustedServiceDays)
	assert.True(t, result.TotalServiceYears.GreaterThan(decimal.NewFromInt(20)))

	assert.Equal(t, date(2038, time.January, 31), result.WindowEnd)
	assert.True(t, result.AveragePFPay.IsPositive())
	assert.True(t, result.Component1.IsPositive())
	assert.True(t, result.Component2.IsPositive())
	assert.True(t, result.MonthlyPension.IsPositive())

	wantPension := result.Component1.Add(result.Component2).Div(decimal.NewFromInt(70 * 365)).Round(2)
	assert.True(t, result.MonthlyPension.Equal(wantPension))
}

func TestCalculateHigherPensionNoBonusUnderTwentyYears(t *testing.T) {
	rows := pensionLedger(t)
	dob := date(1980, time.January, 15)
	joining := date(2019, time.June, 1)

	result, err := CalculateHigherPension(dob, joining, decimal.NewFromInt(15000), rows)
	require.NoError(t, err)

	assert.Equal(t, 0, result.BonusDaysAdded)
	assert.True(t, result.TotalServiceYears.LessThan(decimal.NewFromInt(20)))
}

func TestCalculateHigherPensionLedgerTooShort(t *testing.T) {
	rows := pensionLedger(t)

	// keep only the first year; the 60-month window to age 58 is not covered
	_, err := CalculateHigherPension(
		date(1980, time.January, 15), date(2004, time.July, 1),
		decimal.NewFromInt(15000), rows[:12])
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLedgerTooShort))
}

func TestHigherPensionAverageUsesSixtyMonthWindow(t *testing.T) {
	rows := pensionLedger(t)
	dob := date(1980, time.January, 15)

	result, err := CalculateHigherPension(dob, date(2004, time.July, 1), decimal.NewFromInt(15000), rows)
	require.NoError(t, err)

	// the average must sit between the window's lowest and highest PF pay
	var low, high decimal.Decimal
	for _, r := range rows {
		if r.Date.Before(result.WindowStart) || r.Date.After(result.WindowEnd) {
			continue
		}
		if low.IsZero() || r.PFPay.LessThan(low) {
			low = r.PFPay
		}
		if r.PFPay.GreaterThan(high) {
			high = r.PFPay
		}
	}
	assert.True(t, result.AveragePFPay.GreaterThanOrEqual(low))
	assert.True(t, result.AveragePFPay.LessThanOrEqual(high))
}
