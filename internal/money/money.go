// Package money parses and formats amounts in the single implicit currency
// used across projects and invoices.
package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned for malformed amount text.
var ErrInvalidAmount = errors.New("invalid amount")

// Parse converts user supplied text into a decimal amount.
//
// Both dot (12.34) and comma (12,34) decimal separators are accepted, and at
// most two fractional digits are kept with half-up rounding. Empty text,
// thousands separators, exponents and non numeric input are rejected. The sign
// is preserved; callers decide whether zero or negative values are allowed.
func Parse(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	if strings.Count(s, ".") > 1 || strings.ContainsAny(s, "eE_ ") {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d.Round(2), nil
}

// ParsePositive is Parse restricted to strictly positive amounts.
func ParsePositive(s string) (decimal.Decimal, error) {
	d, err := Parse(s)
	if err != nil {
		return decimal.Zero, err
	}
	if !d.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// Format renders an amount with two fractional digits.
func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Sum adds amounts.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
