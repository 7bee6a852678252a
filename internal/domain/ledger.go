package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerRow is the state of the account for a single projected calendar month
type LedgerRow struct {
	Index         int       `json:"index"`
	Date          time.Time `json:"date"`
	MonthYear     string    `json:"month_year"`
	FinancialYear string    `json:"financial_year"`

	Basic decimal.Decimal `json:"basic"`
	DA    decimal.Decimal `json:"da"`
	PFPay decimal.Decimal `json:"pf_pay"`

	OwnContribution     decimal.Decimal `json:"own_contribution"`
	CompanyContribution decimal.Decimal `json:"company_contribution"`
	EPFOContribution    decimal.Decimal `json:"epfo_contribution"`

	OwnOpening  decimal.Decimal `json:"own_opening"`
	OwnInterest decimal.Decimal `json:"own_interest"`
	OwnClosing  decimal.Decimal `json:"own_closing"`

	CompanyOpening  decimal.Decimal `json:"company_opening"`
	CompanyInterest decimal.Decimal `json:"company_interest"`
	CompanyClosing  decimal.Decimal `json:"company_closing"`

	EPFOOpening  decimal.Decimal `json:"epfo_opening"`
	EPFOInterest decimal.Decimal `json:"epfo_interest"`
	EPFOClosing  decimal.Decimal `json:"epfo_closing"`

	// Own plus company closings; the EPFO outflow account is tracked
	// separately and never counted in the corpus.
	TotalCorpus decimal.Decimal `json:"total_corpus"`

	Event string `json:"event"`
}

// HasEvent reports whether any pay rule fired in this month
func (r *LedgerRow) HasEvent() bool {
	return r.Event != ""
}

// Projection is the finished, ordered monthly series for one engine run.
// It is immutable once returned; downstream consumers read it only.
type Projection struct {
	RetirementDate time.Time   `json:"retirement_date"`
	Rows           []LedgerRow `json:"rows"`
}

// FinalRow returns the retirement-month row, or nil for an empty projection
func (p *Projection) FinalRow() *LedgerRow {
	if len(p.Rows) == 0 {
		return nil
	}
	return &p.Rows[len(p.Rows)-1]
}

// TotalOwnContribution sums the employee-side contributions over the series
func (p *Projection) TotalOwnContribution() decimal.Decimal {
	total := decimal.Zero
	for i := range p.Rows {
		total = total.Add(p.Rows[i].OwnContribution)
	}
	return total
}

// TotalCompanyContribution sums the employer-side contributions over the series
func (p *Projection) TotalCompanyContribution() decimal.Decimal {
	total := decimal.Zero
	for i := range p.Rows {
		total = total.Add(p.Rows[i].CompanyContribution)
	}
	return total
}

// TotalOwnInterest sums the employee-side interest over the series
func (p *Projection) TotalOwnInterest() decimal.Decimal {
	total := decimal.Zero
	for i := range p.Rows {
		total = total.Add(p.Rows[i].OwnInterest)
	}
	return total
}

// TotalCompanyInterest sums the employer-side interest over the series
func (p *Projection) TotalCompanyInterest() decimal.Decimal {
	total := decimal.Zero
	for i := range p.Rows {
		total = total.Add(p.Rows[i].CompanyInterest)
	}
	return total
}
