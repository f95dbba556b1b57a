package txconv

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an exact amount in a currency.
type Money struct {
	value decimal.Decimal // in major units
	cur   string
}

// M returns value in currency cur.
func M(value decimal.Decimal, cur string) Money { return Money{value: value, cur: cur} }

// ValidCurrency reports whether code is a known ISO currency code.
func ValidCurrency(code string) bool { return money.GetCurrency(code) != nil }

// currency never returns nil, unknown codes get a default formatting.
func (m Money) currency() *money.Currency {
	return money.New(0, m.cur).Currency()
}

// String formats the amount the way it is usually written in its currency,
// i.e. "$1,234.56".
func (m Money) String() string {
	cur := m.currency()
	minor := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

func (m Money) Currency() string       { return m.cur }
func (m Money) Value() decimal.Decimal { return m.value }
func (m Money) IsZero() bool           { return m.value.IsZero() }
func (m Money) Equal(n Money) bool     { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) Add(n Money) Money      { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Mul(q int64) Money      { return Money{value: m.value.Mul(decimal.NewFromInt(q)), cur: m.cur} }
func (m Money) Abs() Money             { return Money{value: m.value.Abs(), cur: m.cur} }

// cur returns the common currency of A and B, the empty currency being neutral.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch " + A.cur + " != " + B.cur)
	}
	return A.cur
}
