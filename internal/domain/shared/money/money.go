package money

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrInvalidCurrency = errors.New("money: invalid currency code")

// Money keeps nightly prices in integer minor units (grosze, cents) to avoid
// floating point drift across per-day aggregation. The zero value means
// "no price set" and drives the resolver fallback chains.
type Money struct {
	Amount   int64
	Currency string
}

// New constructs a Money value validating minimal invariants.
func New(amount int64, currency string) (Money, error) {
	if len(currency) != 3 {
		return Money{}, ErrInvalidCurrency
	}
	return Money{Amount: amount, Currency: strings.ToUpper(currency)}, nil
}

// Must creates Money and panics if validation fails; useful in tests and fixtures.
func Must(amount int64, currency string) Money {
	m, err := New(amount, currency)
	if err != nil {
		panic(err)
	}
	return m
}

// FromFloat converts a decimal price to minor units, rounding to the nearest
// hundredth the way channel payloads expect.
func FromFloat(v float64, currency string) Money {
	return Money{Amount: int64(math.Round(v * 100)), Currency: strings.ToUpper(currency)}
}

// Float64 returns the decimal value, exact to two places.
func (m Money) Float64() float64 {
	return float64(m.Amount) / 100
}

// Format2 renders the amount with exactly two decimals, e.g. "300.00".
func (m Money) Format2() string {
	return fmt.Sprintf("%.2f", m.Float64())
}

// IsZero reports whether no price is set.
func (m Money) IsZero() bool {
	return m.Amount == 0
}
