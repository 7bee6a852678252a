package output

import (
	"bytes"
	"encoding/csv"

	"github.com/pfgo/pf-corpus-calculator/internal/domain"
	pfdecimal "github.com/pfgo/pf-corpus-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// CSVDetailedExporter writes one row per projected month, the spreadsheet
// counterpart of the on-screen ledger. Pay and contribution columns are
// rounded up to the nearest ten, matching the export convention; balance
// columns keep two decimal places.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(projection *domain.Projection) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{
		"Month", "FinancialYear", "Basic", "DA", "PFPay",
		"OwnContribution", "CompanyContribution", "EPFOContribution",
		"OwnOpening", "OwnInterest", "OwnClosing",
		"CompanyOpening", "CompanyInterest", "CompanyClosing",
		"EPFOOpening", "EPFOInterest", "EPFOClosing",
		"TotalCorpus", "Event",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i := range projection.Rows {
		r := &projection.Rows[i]
		row := []string{
			r.MonthYear,
			r.FinancialYear,
			roundToTen(r.Basic),
			roundToTen(r.DA),
			roundToTen(r.PFPay),
			roundToTen(r.OwnContribution),
			roundToTen(r.CompanyContribution),
			roundToTen(r.EPFOContribution),
			r.OwnOpening.StringFixed(2),
			r.OwnInterest.StringFixed(2),
			r.OwnClosing.StringFixed(2),
			r.CompanyOpening.StringFixed(2),
			r.CompanyInterest.StringFixed(2),
			r.CompanyClosing.StringFixed(2),
			r.EPFOOpening.StringFixed(2),
			r.EPFOInterest.StringFixed(2),
			r.EPFOClosing.StringFixed(2),
			r.TotalCorpus.StringFixed(2),
			r.Event,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), nil
}

func roundToTen(d decimal.Decimal) string {
	return pfdecimal.NewMoneyFromDecimal(d).RoundUpToTen().StringFixed(0)
}
