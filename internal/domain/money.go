package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is a fixed-point currency amount held at two fractional
// digits. Every operation re-rounds half-up, so amounts never drift.
type Money struct {
	d decimal.Decimal
}

// Zero returns the 0.00 amount.
func Zero() Money {
	return Money{decimal.Zero}
}

// MoneyFromDecimal rounds d to two fractional digits, half-up.
func MoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d.Round(2)}
}

// MoneyFromString parses a plain decimal string like "3.50".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return MoneyFromDecimal(d), nil
}

// MustMoney parses a compiled-in amount literal and panics on failure.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Add(o Money) Money {
	return Money{m.d.Add(o.d).Round(2)}
}

func (m Money) Sub(o Money) Money {
	return Money{m.d.Sub(o.d).Round(2)}
}

// MulInt returns the extended cost of n units priced at m.
func (m Money) MulInt(n int) Money {
	return Money{m.d.Mul(decimal.NewFromInt(int64(n))).Round(2)}
}

func (m Money) Cmp(o Money) int {
	return m.d.Cmp(o.d)
}

func (m Money) Equal(o Money) bool {
	return m.d.Equal(o.d)
}

func (m Money) IsZero() bool {
	return m.d.IsZero()
}

func (m Money) IsPositive() bool {
	return m.d.IsPositive()
}

func (m Money) IsNegative() bool {
	return m.d.IsNegative()
}

// String renders the amount with exactly two fractional digits.
func (m Money) String() string {
	return m.d.StringFixed(2)
}
