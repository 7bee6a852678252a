package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pfgo/pf-corpus-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of projection input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a projection input from a YAML file, applies defaults,
// and validates the numeric ranges the engine itself does not re-check.
func (ip *InputParser) LoadFromFile(filename string) (*domain.ProjectionInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var input domain.ProjectionInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	input.ApplyDefaults()

	if err := ip.ValidateInput(&input); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}

	return &input, nil
}

// ValidateInput validates the range constraints on a projection input.
// The engine assumes these hold; it only re-checks the retirement date.
func (ip *InputParser) ValidateInput(input *domain.ProjectionInput) error {
	if input.DateOfBirth.IsZero() {
		return fmt.Errorf("date of birth is required")
	}
	if input.CurrentBasic.IsNegative() {
		return fmt.Errorf("current basic pay cannot be negative")
	}
	if input.CurrentDA.IsNegative() {
		return fmt.Errorf("current DA cannot be negative")
	}
	if input.CurrentOwnBalance.IsNegative() {
		return fmt.Errorf("own-side opening balance cannot be negative")
	}
	if input.CurrentCompanyBalance.IsNegative() {
		return fmt.Errorf("company-side opening balance cannot be negative")
	}
	if input.CurrentEPFOBalance.IsNegative() {
		return fmt.Errorf("EPFO opening balance cannot be negative")
	}
	if input.IncrementMonth < time.January || input.IncrementMonth > time.December {
		return fmt.Errorf("increment month must be between 1 and 12, got %d", input.IncrementMonth)
	}
	if err := ratePercentInRange("own contribution rate", input.OwnRatePercent, 1, 100); err != nil {
		return err
	}
	if err := ratePercentInRange("company contribution rate", input.CompanyRatePercent, 1, 100); err != nil {
		return err
	}
	if err := ratePercentInRange("annual interest rate", input.AnnualInterestPercent, 1, 20); err != nil {
		return err
	}
	if err := ratePercentInRange("pre-2030 DA hike", input.Pre2030DAHikePercent, 0, 20); err != nil {
		return err
	}
	if input.PayCommission2030Factor.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("2030 pay commission factor must be positive")
	}
	if input.PayCommission2040Factor.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("2040 pay commission factor must be positive")
	}

	for i, promo := range input.Promotions {
		if promo.Month < time.January || promo.Month > time.December {
			return fmt.Errorf("promotion %d: month must be between 1 and 12, got %d", i+1, promo.Month)
		}
		if promo.Year <= 0 {
			return fmt.Errorf("promotion %d: year is required", i+1)
		}
		if promo.HikePercent.LessThanOrEqual(decimal.Zero) || promo.HikePercent.GreaterThan(decimal.NewFromInt(100)) {
			return fmt.Errorf("promotion %d: hike percent must be between 0 and 100, got %s", i+1, promo.HikePercent)
		}
	}

	if !input.HighestPFPayAug2014.IsZero() {
		if input.HighestPFPayAug2014.IsNegative() {
			return fmt.Errorf("highest PF pay till Aug 2014 cannot be negative")
		}
		if input.DateOfJoining.IsZero() {
			return fmt.Errorf("date of joining is required for the higher pension calculation")
		}
		if input.DateOfJoining.Before(input.DateOfBirth) {
			return fmt.Errorf("date of joining cannot be before date of birth")
		}
	}

	return nil
}

func ratePercentInRange(name string, rate decimal.Decimal, min, max int64) error {
	if rate.LessThan(decimal.NewFromInt(min)) || rate.GreaterThan(decimal.NewFromInt(max)) {
		return fmt.Errorf("%s must be between %d%% and %d%%, got %s%%", name, min, max, rate)
	}
	return nil
}

// CreateExampleInput creates an example projection input
func (ip *InputParser) CreateExampleInput() *domain.ProjectionInput {
	dob, _ := time.Parse("2006-01-02", "1980-01-15")
	joining, _ := time.Parse("2006-01-02", "2004-07-01")

	input := &domain.ProjectionInput{
		DateOfBirth:           dob,
		CurrentBasic:          decimal.NewFromInt(80000),
		CurrentDA:             decimal.NewFromInt(30000),
		CurrentOwnBalance:     decimal.NewFromInt(2148242),
		CurrentCompanyBalance: decimal.NewFromInt(1637688),
		CurrentEPFOBalance:    decimal.Zero,
		IncrementMonth:        time.July,
		OwnRatePercent:        decimal.NewFromInt(12),
		CompanyRatePercent:    decimal.NewFromInt(12),
		AnnualInterestPercent: decimal.NewFromFloat(8.25),
		Pre2030DAHikePercent:  decimal.NewFromInt(4),
		Promotions: []domain.Promotion{
			{Year: 2029, Month: time.April, HikePercent: decimal.NewFromInt(10)},
			{Year: 2035, Month: time.April, HikePercent: decimal.NewFromInt(10)},
		},
		DateOfJoining:       joining,
		HighestPFPayAug2014: decimal.NewFromInt(15000),
	}
	input.ApplyDefaults()
	return input
}

// SaveInput writes a projection input back out as YAML
func SaveInput(input *domain.ProjectionInput, filename string) error {
	b, err := yaml.Marshal(input)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
