package calculation

import (
	"errors"
	"fmt"

	"github.com/pfgo/pf-corpus-calculator/internal/domain"
	"github.com/pfgo/pf-corpus-calculator/pkg/dateutil"
)

// RetirementAgeYears is the fixed retirement age the projection runs to
const RetirementAgeYears = 60

// ErrInvalidInput is the engine's single failure mode: the retirement date
// derived from the date of birth is not strictly after the reference date.
var ErrInvalidInput = errors.New("invalid input")

// ProjectionEngine produces the month-by-month corpus ledger. It holds no
// per-run state, so one engine is safe to share across concurrent runs.
type ProjectionEngine struct {
	Logger Logger
}

// NewProjectionEngine creates a new projection engine with a no-op logger
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Project runs one complete projection from the month of input.Today through
// the retirement month inclusive. The input is not re-validated beyond the
// retirement-date check; range validation belongs to the caller.
func (e *ProjectionEngine) Project(input *domain.ProjectionInput) (*domain.Projection, error) {
	retirement := dateutil.AddYears(input.DateOfBirth, RetirementAgeYears)
	if !retirement.After(input.Today) {
		return nil, fmt.Errorf("%w: retirement date %s is not after %s",
			ErrInvalidInput, retirement.Format("2006-01-02"), input.Today.Format("2006-01-02"))
	}

	months := dateutil.MonthSequence(input.Today, retirement)
	e.Logger.Debugf("projecting %d months from %s to retirement on %s",
		len(months), months[0].Format("Jan-2006"), retirement.Format("2006-01-02"))

	rows := e.generateMonthlyLedger(input, months)
	finalizeRounding(rows)

	return &domain.Projection{RetirementDate: retirement, Rows: rows}, nil
}

// finalizeRounding rounds every monetary field to two decimal places in one
// pass over the finished series. Intermediate accrual stays unrounded so
// rounding error never compounds; the total corpus is recomputed from the
// rounded closings so the sum identity holds exactly on the output.
func finalizeRounding(rows []domain.LedgerRow) {
	for i := range rows {
		r := &rows[i]
		r.Basic = r.Basic.Round(2)
		r.DA = r.DA.Round(2)
		r.PFPay = r.PFPay.Round(2)
		r.OwnContribution = r.OwnContribution.Round(2)
		r.CompanyContribution = r.CompanyContribution.Round(2)
		r.EPFOContribution = r.EPFOContribution.Round(2)
		r.OwnOpening = r.OwnOpening.Round(2)
		r.OwnInterest = r.OwnInterest.Round(2)
		r.OwnClosing = r.OwnClosing.Round(2)
		r.CompanyOpening = r.CompanyOpening.Round(2)
		r.CompanyInterest = r.CompanyInterest.Round(2)
		r.CompanyClosing = r.CompanyClosing.Round(2)
		r.EPFOOpening = r.EPFOOpening.Round(2)
		r.EPFOInterest = r.EPFOInterest.Round(2)
		r.EPFOClosing = r.EPFOClosing.Round(2)
		r.TotalCorpus = r.OwnClosing.Add(r.CompanyClosing)
	}
}
