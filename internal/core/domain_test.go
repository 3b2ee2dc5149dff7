package core

import (
	"errors"
	"testing"
)

func TestCostCodeLabel(t *testing.T) {
	tests := []struct {
		name string
		cc   CostCode
		want string
	}{
		{
			name: "code with description",
			cc:   CostCode{ID: "03-100", Code: "03-100", Description: "Concrete"},
			want: "03-100 — Concrete",
		},
		{
			name: "missing description renders empty",
			cc:   CostCode{ID: "09-900", Code: "09-900"},
			want: "09-900 — ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cc.Label(); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCostCodeValidate(t *testing.T) {
	if err := (CostCode{Code: "03-100"}).Validate(); err != nil {
		t.Errorf("valid cost code rejected: %v", err)
	}
	if err := (CostCode{Code: "  "}).Validate(); !errors.Is(err, ErrEmptyCostCode) {
		t.Errorf("blank code: got %v, want ErrEmptyCostCode", err)
	}
}

func TestPeriodRefValidate(t *testing.T) {
	if err := (PeriodRef{Year: 2026, Month: 8}).Validate(); err != nil {
		t.Errorf("valid period rejected: %v", err)
	}
	for _, p := range []PeriodRef{
		{Year: 2026, Month: 0},
		{Year: 2026, Month: 13},
		{Year: 0, Month: 6},
	} {
		if err := p.Validate(); !errors.Is(err, ErrInvalidPeriod) {
			t.Errorf("period %+v: got %v, want ErrInvalidPeriod", p, err)
		}
	}
}

func TestForecastFlagsCacheKey(t *testing.T) {
	plain := ForecastFlags{IncludePending: true}
	withPeriod := ForecastFlags{IncludePending: true, Period: &PeriodRef{Year: 2026, Month: 8}}
	alt := ForecastFlags{UseAltForecastWhenNoOverride: true}

	keys := map[string]bool{}
	for _, f := range []ForecastFlags{plain, withPeriod, alt} {
		keys[f.CacheKey()] = true
	}
	if len(keys) != 3 {
		t.Errorf("expected 3 distinct cache keys, got %d", len(keys))
	}
	if got := withPeriod.CacheKey(); got != "pending=true|period=2026-08|alt=false" {
		t.Errorf("CacheKey() = %q", got)
	}
}
