package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasEvent(t *testing.T) {
	row := LedgerRow{}
	assert.False(t, row.HasEvent())

	row.Event = "Annual 3% Increment"
	assert.True(t, row.HasEvent())
}

func TestFinalRow(t *testing.T) {
	empty := &Projection{}
	assert.Nil(t, empty.FinalRow())

	p := &Projection{
		RetirementDate: time.Date(2040, time.January, 15, 0, 0, 0, 0, time.UTC),
		Rows: []LedgerRow{
			{Index: 0, MonthYear: "Nov-2039"},
			{Index: 1, MonthYear: "Dec-2039"},
			{Index: 2, MonthYear: "Jan-2040"},
		},
	}
	final := p.FinalRow()
	require.NotNil(t, final)
	assert.Equal(t, 2, final.Index)
	assert.Equal(t, "Jan-2040", final.MonthYear)
}

func TestProjectionTotals(t *testing.T) {
	p := &Projection{
		Rows: []LedgerRow{
			{
				OwnContribution:     decimal.NewFromInt(100),
				CompanyContribution: decimal.NewFromInt(110),
				OwnInterest:         decimal.NewFromInt(10),
				CompanyInterest:     decimal.NewFromInt(11),
			},
			{
				OwnContribution:     decimal.NewFromInt(200),
				CompanyContribution: decimal.NewFromInt(220),
				OwnInterest:         decimal.NewFromInt(20),
				CompanyInterest:     decimal.NewFromInt(22),
			},
		},
	}

	assert.True(t, p.TotalOwnContribution().Equal(decimal.NewFromInt(300)))
	assert.True(t, p.TotalCompanyContribution().Equal(decimal.NewFromInt(330)))
	assert.True(t, p.TotalOwnInterest().Equal(decimal.NewFromInt(30)))
	assert.True(t, p.TotalCompanyInterest().Equal(decimal.NewFromInt(33)))
}

func TestApplyDefaults(t *testing.T) {
	in := &ProjectionInput{}
	in.ApplyDefaults()
	assert.True(t, in.PayCommission2030Factor.Equal(decimal.NewFromFloat(1.86)))
	assert.True(t, in.PayCommission2040Factor.Equal(decimal.NewFromFloat(1.40)))

	custom := &ProjectionInput{
		PayCommission2030Factor: decimal.NewFromFloat(2.0),
		PayCommission2040Factor: decimal.NewFromFloat(1.5),
	}
	custom.ApplyDefaults()
	assert.True(t, custom.PayCommission2030Factor.Equal(decimal.NewFromFloat(2.0)))
	assert.True(t, custom.PayCommission2040Factor.Equal(decimal.NewFromFloat(1.5)))
}
