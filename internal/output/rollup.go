package output

import (
	"github.com/pfgo/pf-corpus-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// YearSummary aggregates one calendar year of the monthly ledger: annual sums
// for the flow columns and the December (or final partial-year) snapshot for
// pay and balances. This is the series trend charts and yearly tables plot.
type YearSummary struct {
	Year int `json:"year"`

	PFPay decimal.Decimal `json:"pf_pay"` // last month of the year

	AnnualOwnContribution     decimal.Decimal `json:"annual_own_contribution"`
	AnnualCompanyContribution decimal.Decimal `json:"annual_company_contribution"`
	AnnualOwnInterest         decimal.Decimal `json:"annual_own_interest"`
	AnnualCompanyInterest     decimal.Decimal `json:"annual_company_interest"`

	OwnClosing     decimal.Decimal `json:"own_closing"`
	CompanyClosing decimal.Decimal `json:"company_closing"`
	TotalCorpus    decimal.Decimal `json:"total_corpus"`
}

// YearlyRollup folds the monthly ledger into one summary per calendar year,
// in chronological order.
func YearlyRollup(rows []domain.LedgerRow) []YearSummary {
	var summaries []YearSummary
	var current *YearSummary

	for i := range rows {
		r := &rows[i]
		year := r.Date.Year()
		if current == nil || current.Year != year {
			summaries = append(summaries, YearSummary{Year: year})
			current = &summaries[len(summaries)-1]
		}
		current.PFPay = r.PFPay
		current.AnnualOwnContribution = current.AnnualOwnContribution.Add(r.OwnContribution)
		current.AnnualCompanyContribution = current.AnnualCompanyContribution.Add(r.CompanyContribution)
		current.AnnualOwnInterest = current.AnnualOwnInterest.Add(r.OwnInterest)
		current.AnnualCompanyInterest = current.AnnualCompanyInterest.Add(r.CompanyInterest)
		current.OwnClosing = r.OwnClosing
		current.CompanyClosing = r.CompanyClosing
		current.TotalCorpus = r.TotalCorpus
	}

	return summaries
}
