package rental

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is a monetary value for display. Calculations happen on float64
// metrics and exact decimal inputs; Money only formats them.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
	valid bool
}

// M returns the Money of value in currency.
//
// A non finite float value (see IsFinite) gives an invalid Money that
// prints as "n/a".
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	switch v := any(value).(type) {
	case float64:
		if !IsFinite(v) {
			return Money{cur: currency}
		}
	case float32:
		if !IsFinite(float64(v)) {
			return Money{cur: currency}
		}
	}
	return Money{value: newDecimal(value), cur: currency, valid: true}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value.
func (m Money) String() string {
	if !m.valid {
		return "n/a"
	}
	cur := m.currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-"
func (m Money) SignedString() string {
	if !m.valid {
		return "n/a"
	}
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Currency() string { return m.cur }
func (m Money) IsValid() bool    { return m.valid }
func (m Money) IsNegative() bool { return m.valid && m.value.IsNegative() }
func (m Money) Equal(n Money) bool {
	return m.valid == n.valid && m.value.Equal(n.value) && m.cur == n.cur
}
