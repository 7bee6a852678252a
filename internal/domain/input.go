package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectionInput holds the scalar inputs for one projection run. The struct
// is treated as immutable once handed to the engine; Today is injected
// explicitly so a run is deterministic for a given invocation date.
type ProjectionInput struct {
	DateOfBirth time.Time `yaml:"date_of_birth" json:"date_of_birth"`
	Today       time.Time `yaml:"today,omitempty" json:"today"`

	CurrentBasic          decimal.Decimal `yaml:"current_basic" json:"current_basic"`
	CurrentDA             decimal.Decimal `yaml:"current_da" json:"current_da"`
	CurrentOwnBalance     decimal.Decimal `yaml:"current_own_balance" json:"current_own_balance"`
	CurrentCompanyBalance decimal.Decimal `yaml:"current_company_balance" json:"current_company_balance"`
	CurrentEPFOBalance    decimal.Decimal `yaml:"current_epfo_balance" json:"current_epfo_balance"`

	IncrementMonth        time.Month      `yaml:"increment_month" json:"increment_month"`
	OwnRatePercent        decimal.Decimal `yaml:"own_rate_percent" json:"own_rate_percent"`
	CompanyRatePercent    decimal.Decimal `yaml:"company_rate_percent" json:"company_rate_percent"`
	AnnualInterestPercent decimal.Decimal `yaml:"annual_interest_percent" json:"annual_interest_percent"`
	Pre2030DAHikePercent  decimal.Decimal `yaml:"pre_2030_da_hike_percent" json:"pre_2030_da_hike_percent"`

	// Pay commission scale revision factors; default to 1.86 (2030) and 1.40 (2040)
	PayCommission2030Factor decimal.Decimal `yaml:"pay_commission_2030_factor,omitempty" json:"pay_commission_2030_factor"`
	PayCommission2040Factor decimal.Decimal `yaml:"pay_commission_2040_factor,omitempty" json:"pay_commission_2040_factor"`

	Promotions []Promotion `yaml:"promotions,omitempty" json:"promotions,omitempty"`

	// EPFO higher pension inputs (optional; zero highest pay disables the calculation)
	DateOfJoining       time.Time       `yaml:"date_of_joining,omitempty" json:"date_of_joining"`
	HighestPFPayAug2014 decimal.Decimal `yaml:"highest_pf_pay_aug_2014,omitempty" json:"highest_pf_pay_aug_2014"`
}

// Promotion is a user-scheduled one-time basic pay revision
type Promotion struct {
	Year        int             `yaml:"year" json:"year"`
	Month       time.Month      `yaml:"month" json:"month"`
	HikePercent decimal.Decimal `yaml:"hike_percent" json:"hike_percent"`
}

// ApplyDefaults fills the pay commission factors when the input omits them
func (in *ProjectionInput) ApplyDefaults() {
	if in.PayCommission2030Factor.IsZero() {
		in.PayCommission2030Factor = decimal.NewFromFloat(1.86)
	}
	if in.PayCommission2040Factor.IsZero() {
		in.PayCommission2040Factor = decimal.NewFromFloat(1.40)
	}
}
