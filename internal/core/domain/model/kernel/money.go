package kernel

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Money is a value object representing a non-negative monetary amount.
// Amounts are stored as integer cents so that arithmetic on order totals
// is exact; floating point never enters the domain model.
//
// The zero value is a valid amount of 0.00, which is what a freshly
// constructed order carries before any items are added.
//
// Money is immutable: arithmetic methods return new values.
//
// Example:
//
//	price, _ := kernel.NewMoneyFromCents(1599)      // 15.99
//	line := price.MultiplyBy(2)                     // 31.98
//	total := line.Add(otherLine)
type Money struct {
	cents int64
}

// NewMoneyFromCents creates a Money value from an amount in cents.
// Negative amounts are rejected: the domain has no concept of negative
// prices or totals.
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d cents is negative", cents))
	}
	return Money{cents: cents}, nil
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// MultiplyBy returns the amount multiplied by a quantity.
// Callers are expected to pass a positive quantity; item quantity
// validation happens at item construction.
func (m Money) MultiplyBy(quantity int) Money {
	return Money{cents: m.cents * int64(quantity)}
}

// IsZero reports whether the amount is 0.00.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String renders the amount with two decimal places, e.g. "31.98".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
