package output

import (
	"bytes"
	"fmt"

	"github.com/pfgo/pf-corpus-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(projection *domain.Projection) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "PF RETIREMENT CORPUS SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Retirement Date: %s\n", projection.RetirementDate.Format("02-Jan-2006"))
	fmt.Fprintf(&buf, "Projected Months: %d\n", len(projection.Rows))
	fmt.Fprintln(&buf)

	final := projection.FinalRow()
	if final == nil {
		return buf.Bytes(), nil
	}

	fmt.Fprintf(&buf, "Final Own PF Balance:     %s\n", FormatCurrency(final.OwnClosing))
	fmt.Fprintf(&buf, "Final Company PF Balance: %s\n", FormatCurrency(final.CompanyClosing))
	fmt.Fprintf(&buf, "Total Retirement Corpus:  %s (%s)\n",
		FormatCurrency(final.TotalCorpus), FormatCurrencyCompact(final.TotalCorpus))
	fmt.Fprintln(&buf)

	ownContrib := projection.TotalOwnContribution()
	ownInterest := projection.TotalOwnInterest()
	companyContrib := projection.TotalCompanyContribution()
	companyInterest := projection.TotalCompanyInterest()
	fmt.Fprintf(&buf, "Own: Contributions=%s Interest=%s\n", FormatCurrency(ownContrib), FormatCurrency(ownInterest))
	fmt.Fprintf(&buf, "Company: Contributions=%s Interest=%s\n", FormatCurrency(companyContrib), FormatCurrency(companyInterest))
	if ownContrib.IsPositive() {
		fmt.Fprintf(&buf, "Interest-to-Contribution Ratio (Own): %s\n", ownInterest.Div(ownContrib).StringFixed(2))
	}
	if companyContrib.IsPositive() {
		fmt.Fprintf(&buf, "Interest-to-Contribution Ratio (Company): %s\n", companyInterest.Div(companyContrib).StringFixed(2))
	}

	return buf.Bytes(), nil
}
