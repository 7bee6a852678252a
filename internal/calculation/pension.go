package calculation

import (
	"errors"
	"fmt"
	"time"

	"github.com/pfgo/pf-corpus-calculator/internal/domain"
	"github.com/pfgo/pf-corpus-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// ErrLedgerTooShort is returned when the projected series does not cover the
// 60-month salary window the higher pension formula averages over.
var ErrLedgerTooShort = errors.New("projection does not cover the 60-month salary window")

const (
	pensionableAgeYears = 58
	bonusServiceDays    = 730 // two bonus years for service beyond 20 years
	salaryWindowMonths  = 60
)

// pensionDivisor is the 70 x 365 denominator of the EPFO higher pension formula
var pensionDivisor = decimal.NewFromInt(70 * 365)

// HigherPensionResult breaks the EPFO higher pension into its two components
type HigherPensionResult struct {
	ServiceDaysToAug2014 int             `json:"service_days_to_aug_2014"`
	BonusDaysAdded       int             `json:"bonus_days_added"`
	AdjustedServiceDays  int             `json:"adjusted_service_days"`
	HighestPFPay         decimal.Decimal `json:"highest_pf_pay"`
	Component1           decimal.Decimal `json:"component_1"`

	DaysAfterAug2014 int             `json:"days_after_aug_2014"`
	AveragePFPay     decimal.Decimal `json:"average_pf_pay_last_60_months"`
	Component2       decimal.Decimal `json:"component_2"`

	MonthlyPension    decimal.Decimal `json:"monthly_pension"`
	TotalServiceYears decimal.Decimal `json:"total_service_years"`
	WindowStart       time.Time       `json:"window_start"`
	WindowEnd         time.Time       `json:"window_end"`
}

// CalculateHigherPension computes the EPFO higher monthly pension from the
// finished projection ledger:
//
//	((service days to Aug 2014 + bonus) x highest PF pay till Aug 2014 +
//	 days after Aug 2014 x average PF pay of the last 60 months to age 58)
//	/ (70 x 365)
//
// Service beyond 20 years earns 730 bonus days on the first component.
func CalculateHigherPension(dob, dateOfJoining time.Time, highestPFPayAug2014 decimal.Decimal, rows []domain.LedgerRow) (*HigherPensionResult, error) {
	age58End := dateutil.EndOfMonth(dateutil.AddYears(dob, pensionableAgeYears))
	aug2014End := time.Date(2014, time.August, 31, 0, 0, 0, 0, time.UTC)
	sep2014Start := time.Date(2014, time.September, 1, 0, 0, 0, 0, time.UTC)

	totalServiceDays := dateutil.DaysBetween(dateOfJoining, age58End)
	totalServiceYears := decimal.NewFromInt(int64(totalServiceDays)).Div(decimal.NewFromFloat(365.25))

	bonusDays := 0
	if totalServiceYears.GreaterThan(decimal.NewFromInt(20)) {
		bonusDays = bonusServiceDays
	}

	serviceDays := dateutil.DaysBetween(dateOfJoining, aug2014End)
	adjustedServiceDays := serviceDays + bonusDays
	component1 := decimal.NewFromInt(int64(adjustedServiceDays)).Mul(highestPFPayAug2014)

	windowStart := age58End.AddDate(0, -salaryWindowMonths, 0)
	windowRows := rowsInWindow(rows, windowStart, age58End)
	if len(windowRows) < salaryWindowMonths {
		return nil, fmt.Errorf("%w: need %d months ending %s, have %d",
			ErrLedgerTooShort, salaryWindowMonths, age58End.Format("Jan-2006"), len(windowRows))
	}

	sum := decimal.Zero
	for _, r := range windowRows {
		sum = sum.Add(r.PFPay)
	}
	averagePFPay := sum.Div(decimal.NewFromInt(int64(len(windowRows))))

	daysAfter := dateutil.DaysBetween(sep2014Start, age58End)
	component2 := decimal.NewFromInt(int64(daysAfter)).Mul(averagePFPay)

	return &HigherPensionResult{
		ServiceDaysToAug2014: serviceDays,
		BonusDaysAdded:       bonusDays,
		AdjustedServiceDays:  adjustedServiceDays,
		HighestPFPay:         highestPFPayAug2014,
		Component1:           component1,
		DaysAfterAug2014:     daysAfter,
		AveragePFPay:         averagePFPay,
		Component2:           component2,
		MonthlyPension:       component1.Add(component2).Div(pensionDivisor).Round(2),
		TotalServiceYears:    totalServiceYears.Round(2),
		WindowStart:          windowStart,
		WindowEnd:            age58End,
	}, nil
}

func rowsInWindow(rows []domain.LedgerRow, start, end time.Time) []domain.LedgerRow {
	var out []domain.LedgerRow
	for _, r := range rows {
		if !r.Date.Before(start) && !r.Date.After(end) {
			out = append(out, r)
		}
	}
	return out
}
