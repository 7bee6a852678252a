package output

import (
	"bytes"
	"encoding/csv"

	"github.com/pfgo/pf-corpus-calculator/internal/domain"
)

// CSVYearlySummarizer implements the yearly rollup CSV output (one row per calendar year).
type CSVYearlySummarizer struct{}

func (c CSVYearlySummarizer) Name() string { return "yearly-csv" }

func (c CSVYearlySummarizer) Format(projection *domain.Projection) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "PFPay", "AnnualOwnContribution", "AnnualCompanyContribution",
		"AnnualOwnInterest", "AnnualCompanyInterest", "OwnClosing", "CompanyClosing", "TotalCorpus"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, ys := range YearlyRollup(projection.Rows) {
		row := []string{
			intToString(ys.Year),
			ys.PFPay.StringFixed(2),
			ys.AnnualOwnContribution.StringFixed(2),
			ys.AnnualCompanyContribution.StringFixed(2),
			ys.AnnualOwnInterest.StringFixed(2),
			ys.AnnualCompanyInterest.StringFixed(2),
			ys.OwnClosing.StringFixed(2),
			ys.CompanyClosing.StringFixed(2),
			ys.TotalCorpus.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), nil
}
