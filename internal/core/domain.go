package core

import (
	"errors"
	"fmt"
	"strings"
)

type (
	// CostCode identifies a budget line category within a project. One
	// instance per distinct code per project; immutable once produced by
	// the enumerator.
	CostCode struct {
		ID          string
		Code        string
		Description string
	}

	// PeriodRef names an accounting period (year + month).
	PeriodRef struct {
		Year  int
		Month int // 1-12
	}

	// ForecastFlags is the per-invocation configuration of the derivation
	// engine: which optional buckets are included and which cost-forecast
	// formula variant applies.
	ForecastFlags struct {
		IncludePending bool
		Period         *PeriodRef
		// UseAltForecastWhenNoOverride selects I = A + F instead of
		// I = C + G + H. The two formulas are mutually exclusive.
		UseAltForecastWhenNoOverride bool
	}
)

var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrEmptyCostCode  = errors.New("empty cost code")
	ErrEmptyProjectID = errors.New("empty project id")
	ErrInvalidPeriod  = errors.New("invalid period")
)

func (c CostCode) Validate() error {
	if strings.TrimSpace(c.Code) == "" {
		return ErrEmptyCostCode
	}
	return nil
}

// Label renders the display label for the cost code: "{code} — {description}".
// A missing description renders as empty, never as a "null" placeholder.
func (c CostCode) Label() string {
	return c.Code + " — " + c.Description
}

func (p PeriodRef) Validate() error {
	if p.Month < 1 || p.Month > 12 {
		return fmt.Errorf("%w: month %d", ErrInvalidPeriod, p.Month)
	}
	if p.Year < 1900 || p.Year > 9999 {
		return fmt.Errorf("%w: year %d", ErrInvalidPeriod, p.Year)
	}
	return nil
}

// String renders the period as "YYYY-MM" for cache keys and logs.
func (p PeriodRef) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

func (f ForecastFlags) Validate() error {
	if f.Period != nil {
		return f.Period.Validate()
	}
	return nil
}

// CacheKey renders the flags in a stable textual form, used to key cached
// reports per (project, flag-set).
func (f ForecastFlags) CacheKey() string {
	period := "-"
	if f.Period != nil {
		period = f.Period.String()
	}
	return fmt.Sprintf("pending=%t|period=%s|alt=%t", f.IncludePending, period, f.UseAltForecastWhenNoOverride)
}
