package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pfgo/pf-corpus-calculator/internal/domain"
)

// ConsoleVerboseFormatter renders the full text report: run summary, yearly
// rollup table, and a narrative of the key pay events with before/after pay.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(projection *domain.Projection) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "PF RETIREMENT CORPUS PROJECTION REPORT")
	fmt.Fprintln(&buf, strings.Repeat("=", 60))
	fmt.Fprintf(&buf, "Retirement Date: %s\n", projection.RetirementDate.Format("02-Jan-2006"))

	final := projection.FinalRow()
	if final == nil {
		return buf.Bytes(), nil
	}
	first := &projection.Rows[0]
	fmt.Fprintf(&buf, "Projection Window: %s to %s (%d months)\n", first.MonthYear, final.MonthYear, len(projection.Rows))
	fmt.Fprintf(&buf, "Final Own PF Balance:     %s\n", FormatCurrency(final.OwnClosing))
	fmt.Fprintf(&buf, "Final Company PF Balance: %s\n", FormatCurrency(final.CompanyClosing))
	fmt.Fprintf(&buf, "Total Retirement Corpus:  %s\n", FormatCurrency(final.TotalCorpus))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "YEARLY SUMMARY")
	fmt.Fprintln(&buf, strings.Repeat("-", 60))
	fmt.Fprintf(&buf, "%-6s %14s %14s %14s %14s\n", "Year", "PF Pay", "Contributions", "Interest", "Total Corpus")
	for _, ys := range YearlyRollup(projection.Rows) {
		contrib := ys.AnnualOwnContribution.Add(ys.AnnualCompanyContribution)
		interest := ys.AnnualOwnInterest.Add(ys.AnnualCompanyInterest)
		fmt.Fprintf(&buf, "%-6d %14s %14s %14s %14s\n",
			ys.Year,
			FormatCurrencyCompact(ys.PFPay),
			FormatCurrencyCompact(contrib),
			FormatCurrencyCompact(interest),
			FormatCurrencyCompact(ys.TotalCorpus))
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "KEY FINANCIAL EVENTS")
	fmt.Fprintln(&buf, strings.Repeat("-", 60))
	events := EventsOnly(projection.Rows)
	if len(events) == 0 {
		fmt.Fprintln(&buf, "No pay events in the projection period.")
		return buf.Bytes(), nil
	}
	for _, row := range events {
		fmt.Fprintf(&buf, "%s: %s\n", row.MonthYear, row.Event)
		if row.Index > 0 {
			prev := &projection.Rows[row.Index-1]
			if strings.Contains(row.Event, "Pay Commission") {
				fmt.Fprintf(&buf, "  Basic Pay %s -> %s, DA reset to %s\n",
					FormatCurrency(prev.Basic), FormatCurrency(row.Basic), FormatCurrency(row.DA))
			} else if !prev.DA.Equal(row.DA) {
				fmt.Fprintf(&buf, "  DA %s -> %s\n", FormatCurrency(prev.DA), FormatCurrency(row.DA))
			}
			fmt.Fprintf(&buf, "  PF Pay %s -> %s, Corpus %s\n",
				FormatCurrency(prev.PFPay), FormatCurrency(row.PFPay), FormatCurrency(row.TotalCorpus))
		}
	}

	return buf.Bytes(), nil
}
