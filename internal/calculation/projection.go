package calculation

import (
	"fmt"
	"strings"
	"time"

	"github.com/pfgo/pf-corpus-calculator/internal/domain"
	"github.com/pfgo/pf-corpus-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)

	// Annual increment: flat 3% on basic
	incrementFactor = decimal.NewFromFloat(1.03)

	// Pay commission revisions land with three years of increments baked in
	commissionIncrementStep = decimal.NewFromFloat(1.03).Pow(decimal.NewFromInt(3))

	daHikeTwoPercent = decimal.NewFromFloat(0.02)
	daHikeOnePercent = decimal.NewFromFloat(0.01)

	// EPFO pension diversion: 8.33% of PF pay, plus 1.16% of the excess
	// over the 15000 wage ceiling less the flat 1250 offset
	epfoBaseRate    = decimal.NewFromFloat(0.0833)
	epfoExcessRate  = decimal.NewFromFloat(0.0116)
	epfoWageCeiling = decimal.NewFromInt(15000)
	epfoOffset      = decimal.NewFromInt(1250)
)

// payState is the fold accumulator carried across monthly steps. daPercent
// tracks DA as a fraction of basic so promotions can rescale DA the way the
// pay rules do.
type payState struct {
	basic     decimal.Decimal
	da        decimal.Decimal
	daPercent decimal.Decimal
}

// generateMonthlyLedger runs the left-to-right fold over the month sequence.
// Events mutate the pay state the same month they fire, so the row for an
// event month already shows the revised pay and contributions.
func (e *ProjectionEngine) generateMonthlyLedger(input *domain.ProjectionInput, months []time.Time) []domain.LedgerRow {
	monthlyRate := input.AnnualInterestPercent.Div(decimal.NewFromInt(1200))
	ownRate := input.OwnRatePercent.Div(hundred)
	companyRate := input.CompanyRatePercent.Div(hundred)

	pay := payState{basic: input.CurrentBasic, da: input.CurrentDA}
	if pay.basic.IsPositive() {
		pay.daPercent = pay.da.Div(pay.basic)
	}

	var prevOwnClosing, prevCompanyClosing, prevEPFOClosing decimal.Decimal

	rows := make([]domain.LedgerRow, len(months))
	for i, date := range months {
		labels := e.applyEvents(&pay, input, date)

		pfPay := pay.basic.Add(pay.da)
		ownContribution := pfPay.Mul(ownRate)
		companyContribution := pfPay.Mul(companyRate)
		epfoContribution := epfoOutflowContribution(pfPay)

		ownOpening := input.CurrentOwnBalance
		companyOpening := input.CurrentCompanyBalance
		epfoOpening := input.CurrentEPFOBalance
		if i > 0 {
			ownOpening = prevOwnClosing
			companyOpening = prevCompanyClosing
			epfoOpening = prevEPFOClosing
		}

		// Interest accrues on the previous closing balance, except in March
		// where the business rule sets it to zero. The first step has no
		// prior balance, so it accrues nothing either.
		var ownInterest, companyInterest, epfoInterest decimal.Decimal
		if i > 0 && date.Month() != time.March {
			ownInterest = prevOwnClosing.Mul(monthlyRate)
			companyInterest = prevCompanyClosing.Mul(monthlyRate)
			epfoInterest = prevEPFOClosing.Mul(monthlyRate)
		}

		ownClosing := ownOpening.Add(ownContribution).Add(ownInterest)
		companyClosing := companyOpening.Add(companyContribution).Add(companyInterest)
		epfoClosing := epfoOpening.Add(epfoContribution).Add(epfoInterest)

		rows[i] = domain.LedgerRow{
			Index:               i,
			Date:                date,
			MonthYear:           date.Format("Jan-2006"),
			FinancialYear:       dateutil.FinancialYear(date),
			Basic:               pay.basic,
			DA:                  pay.da,
			PFPay:               pfPay,
			OwnContribution:     ownContribution,
			CompanyContribution: companyContribution,
			EPFOContribution:    epfoContribution,
			OwnOpening:          ownOpening,
			OwnInterest:         ownInterest,
			OwnClosing:          ownClosing,
			CompanyOpening:      companyOpening,
			CompanyInterest:     companyInterest,
			CompanyClosing:      companyClosing,
			EPFOOpening:         epfoOpening,
			EPFOInterest:        epfoInterest,
			EPFOClosing:         epfoClosing,
			TotalCorpus:         ownClosing.Add(companyClosing),
			Event:               strings.Join(labels, " "),
		}

		prevOwnClosing = ownClosing
		prevCompanyClosing = companyClosing
		prevEPFOClosing = epfoClosing
	}

	return rows
}

// applyEvents mutates the pay state for every rule firing in this calendar
// month and returns the human-readable labels, in evaluation order:
// promotion, annual increment, January revision. A promotion suppresses the
// annual increment when both land in the same month.
func (e *ProjectionEngine) applyEvents(pay *payState, input *domain.ProjectionInput, date time.Time) []string {
	month := date.Month()
	year := date.Year()

	var labels []string

	promoted := false
	for _, promo := range input.Promotions {
		if promo.Year == year && promo.Month == month {
			pay.basic = pay.basic.Mul(one.Add(promo.HikePercent.Div(hundred)))
			pay.da = pay.basic.Mul(pay.daPercent)
			labels = append(labels, fmt.Sprintf("Promotion: Basic +%s%%", promo.HikePercent.String()))
			promoted = true
			break
		}
	}

	if month == input.IncrementMonth && !promoted {
		pay.basic = pay.basic.Mul(incrementFactor)
		labels = append(labels, "Annual 3% Increment")
	}

	if month == time.January {
		switch {
		case year < 2030:
			pay.da = pay.da.Mul(one.Add(input.Pre2030DAHikePercent.Div(hundred)))
			labels = append(labels, fmt.Sprintf("DA Hike %s%%", input.Pre2030DAHikePercent.String()))
		case year == 2030:
			pay.basic = pay.basic.Mul(input.PayCommission2030Factor).Mul(commissionIncrementStep)
			pay.da = decimal.Zero
			labels = append(labels, "Pay Commission 2030")
		case year <= 2039:
			pay.da = pay.da.Add(pay.basic.Mul(daHikeTwoPercent))
			labels = append(labels, "DA Hike 2%")
		case year == 2040:
			pay.basic = pay.basic.Mul(input.PayCommission2040Factor).Mul(commissionIncrementStep)
			pay.da = decimal.Zero
			labels = append(labels, "Pay Commission 2040")
		default:
			pay.da = pay.da.Add(pay.basic.Mul(daHikeOnePercent))
			labels = append(labels, "DA Hike 1%")
		}
	}

	if pay.basic.IsPositive() {
		pay.daPercent = pay.da.Div(pay.basic)
	}

	if len(labels) > 0 {
		e.Logger.Debugf("%s: %s (basic=%s da=%s)",
			date.Format("Jan-2006"), strings.Join(labels, " "), pay.basic.StringFixed(2), pay.da.StringFixed(2))
	}

	return labels
}

// epfoOutflowContribution computes the monthly pension-scheme diversion for a
// given PF pay.
func epfoOutflowContribution(pfPay decimal.Decimal) decimal.Decimal {
	if pfPay.LessThanOrEqual(epfoWageCeiling) {
		return pfPay.Mul(epfoBaseRate)
	}
	return pfPay.Mul(epfoBaseRate).
		Add(pfPay.Sub(epfoWageCeiling).Mul(epfoExcessRate)).
		Sub(epfoOffset)
}
