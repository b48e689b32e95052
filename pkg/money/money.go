// Package money parses decimal amounts and rates from untrusted input.
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	// MaxScale is the most fractional digits an input may carry
	MaxScale = 12
	// MaxMagnitude bounds the absolute value of an input: |d| <= 10^MaxMagnitude
	MaxMagnitude = 15

	maxInputLen = 64
)

// ErrOutOfRange is returned for numbers outside the accepted currency range
var ErrOutOfRange = errors.New("number out of range")

var maxAbs = decimal.New(1, MaxMagnitude)

// Parse reads a decimal string and rejects it when its exponent or magnitude
// is outside the accepted range. The checks run before any arithmetic, so
// inputs like "1e50000000" cost nothing.
func Parse(s string) (decimal.Decimal, error) {
	if len(s) > maxInputLen {
		return decimal.Zero, fmt.Errorf("%w: longer than %d characters", ErrOutOfRange, maxInputLen)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if err := Check(d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

// Check reports whether d is inside the accepted range
func Check(d decimal.Decimal) error {
	exp := d.Exponent()
	if exp < -MaxScale {
		return fmt.Errorf("%w: more than %d decimal places", ErrOutOfRange, MaxScale)
	}
	if exp > MaxMagnitude {
		return fmt.Errorf("%w: magnitude above 1e%d", ErrOutOfRange, MaxMagnitude)
	}
	if d.Abs().GreaterThan(maxAbs) {
		return fmt.Errorf("%w: magnitude above 1e%d", ErrOutOfRange, MaxMagnitude)
	}
	return nil
}
