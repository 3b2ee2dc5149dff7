// Package core holds the domain types shared by every layer: fixed-point
// amounts, cost codes, forecast flags and the computed forecast row.
//
// This file contains the fixed-point quantizer. Every aggregate that enters
// the derivation engine passes through it exactly once, so all downstream
// arithmetic stays at two fractional digits.
package core

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a currency amount fixed to two fractional digits (cents).
//
// The zero value is 0.00. Addition, subtraction and comparison of Amounts
// never introduce rounding drift: only construction quantizes.
type Amount struct {
	d decimal.Decimal
}

// Quantize normalizes an arbitrary decimal to two fractional digits using
// round-half-to-even (banker's rounding), matching fixed-point currency
// semantics.
func Quantize(d decimal.Decimal) Amount {
	return Amount{d: d.RoundBank(2)}
}

// ParseAmount parses a numeric string into an Amount.
//
// An empty or all-whitespace string means "absent" and yields 0.00. Anything
// else must be numeric; a value that cannot be quantized is a hard failure
// wrapping ErrInvalidAmount, never a silent zero.
//
// Examples:
//
//	ParseAmount("")       -> 0.00
//	ParseAmount("12.345") -> 12.34 (half-to-even)
//	ParseAmount("12.355") -> 12.36
//	ParseAmount("abc")    -> ErrInvalidAmount
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return Quantize(d), nil
}

// AmountFromCents builds an Amount from an integer number of cents, the
// representation the storage layer persists.
func AmountFromCents(cents int64) Amount {
	return Amount{d: decimal.New(cents, -2)}
}

// Add returns a + b. Exact: both operands are already two-digit fixed point.
func (a Amount) Add(b Amount) Amount {
	return Amount{d: a.d.Add(b.d)}
}

// Sub returns a - b.
func (a Amount) Sub(b Amount) Amount {
	return Amount{d: a.d.Sub(b.d)}
}

// LessThan reports whether a < b.
func (a Amount) LessThan(b Amount) bool {
	return a.d.Cmp(b.d) < 0
}

// IsNegative reports whether a < 0.
func (a Amount) IsNegative() bool {
	return a.d.IsNegative()
}

// IsZero reports whether a == 0.00.
func (a Amount) IsZero() bool {
	return a.d.IsZero()
}

// Equal reports whether two amounts represent the same value.
func (a Amount) Equal(b Amount) bool {
	return a.d.Equal(b.d)
}

// Cents returns the amount as an integer number of cents.
func (a Amount) Cents() int64 {
	return a.d.Shift(2).IntPart()
}

// String renders the amount with exactly two fractional digits, e.g. "12.40".
func (a Amount) String() string {
	return a.d.StringFixed(2)
}

// MarshalJSON encodes the amount as a JSON string with two fractional digits
// so serialized rows never pick up binary floating point noise.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

// UnmarshalJSON accepts either a JSON string or a bare number.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
