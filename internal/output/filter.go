package output

import (
	"github.com/pfgo/pf-corpus-calculator/internal/domain"
)

// FilterByYearRange returns the rows whose calendar year falls in [from, to]
func FilterByYearRange(rows []domain.LedgerRow, from, to int) []domain.LedgerRow {
	var out []domain.LedgerRow
	for _, r := range rows {
		if y := r.Date.Year(); y >= from && y <= to {
			out = append(out, r)
		}
	}
	return out
}

// FilterByFinancialYear returns the rows carrying the given financial-year label
func FilterByFinancialYear(rows []domain.LedgerRow, financialYear string) []domain.LedgerRow {
	var out []domain.LedgerRow
	for _, r := range rows {
		if r.FinancialYear == financialYear {
			out = append(out, r)
		}
	}
	return out
}

// EventsOnly returns the rows in which at least one pay rule fired
func EventsOnly(rows []domain.LedgerRow) []domain.LedgerRow {
	var out []domain.LedgerRow
	for i := range rows {
		if rows[i].HasEvent() {
			out = append(out, rows[i])
		}
	}
	return out
}

// FinancialYears returns the distinct financial-year labels in row order
func FinancialYears(rows []domain.LedgerRow) []string {
	var labels []string
	seen := map[string]bool{}
	for _, r := range rows {
		if !seen[r.FinancialYear] {
			seen[r.FinancialYear] = true
			labels = append(labels, r.FinancialYear)
		}
	}
	return labels
}
