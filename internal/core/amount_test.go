package core

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out string
		ok  bool
	}{
		{"", "0.00", true}, // absent means zero
		{"  ", "0.00", true},
		{"0", "0.00", true},
		{"1", "1.00", true},
		{"1.2", "1.20", true},
		{"12.34", "12.34", true},
		{"-12.34", "-12.34", true},
		{"12.345", "12.34", true}, // half-to-even: 4 stays
		{"12.355", "12.36", true}, // half-to-even: 5 bumps to 6
		{"2.675", "2.68", true},
		{"0.005", "0.00", true},
		{"-0.005", "0.00", true},
		{" 2.50 ", "2.50", true},
		{"1000000000.99", "1000000000.99", true},
		{"abc", "", false},
		{"1.2.3", "", false},
		{"12,34", "", false}, // decimal comma is not numeric here
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("ParseAmount(%q) unexpected error: %v", tc.in, err)
			}
			if got.String() != tc.out {
				t.Fatalf("ParseAmount(%q) = %s, want %s", tc.in, got.String(), tc.out)
			}
		} else {
			if err == nil {
				t.Fatalf("ParseAmount(%q) expected error", tc.in)
			}
			if !errors.Is(err, ErrInvalidAmount) {
				t.Fatalf("ParseAmount(%q) error = %v, want ErrInvalidAmount", tc.in, err)
			}
		}
	}
}

func TestQuantizeBankersRounding(t *testing.T) {
	cases := []struct{ in, out string }{
		{"12.345", "12.34"},
		{"12.335", "12.34"},
		{"12.346", "12.35"},
		{"12.344", "12.34"},
		{"-12.345", "-12.34"},
	}
	for _, tc := range cases {
		d, err := decimal.NewFromString(tc.in)
		if err != nil {
			t.Fatalf("bad fixture %q: %v", tc.in, err)
		}
		if got := Quantize(d).String(); got != tc.out {
			t.Errorf("Quantize(%s) = %s, want %s", tc.in, got, tc.out)
		}
	}
}

func TestAmountArithmetic(t *testing.T) {
	a := AmountFromCents(60000) // 600.00
	b := AmountFromCents(40000) // 400.00

	if got := a.Add(b).String(); got != "1000.00" {
		t.Errorf("Add = %s, want 1000.00", got)
	}
	if got := b.Sub(a).String(); got != "-200.00" {
		t.Errorf("Sub = %s, want -200.00", got)
	}
	if !b.Sub(a).IsNegative() {
		t.Error("expected negative result")
	}
	if !b.LessThan(a) {
		t.Error("expected 400.00 < 600.00")
	}
	if a.LessThan(b) {
		t.Error("600.00 < 400.00 should be false")
	}

	var zero Amount
	if !zero.IsZero() || zero.String() != "0.00" {
		t.Errorf("zero value = %s, want 0.00", zero.String())
	}
	if got := a.Cents(); got != 60000 {
		t.Errorf("Cents = %d, want 60000", got)
	}
}

func TestAmountJSONRoundTrip(t *testing.T) {
	a := AmountFromCents(123456)
	data, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"1234.56"` {
		t.Fatalf("marshal = %s, want \"1234.56\"", data)
	}

	var back Amount
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(a) {
		t.Fatalf("round trip = %s, want %s", back.String(), a.String())
	}
}
