package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is an exact monetary value carried to 2 decimal places.
// Arithmetic never passes through binary floating point.
type Money struct {
	d decimal.Decimal
}

// Zero is the zero value, usable directly.
var Zero = Money{}

const centExponent = -2

// Parse converts a decimal string like "1500.00" to Money.
// More than 2 decimal places is rejected rather than rounded.
func Parse(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	if d.Exponent() < centExponent && !d.Equal(d.Round(2)) {
		return Money{}, fmt.Errorf("amount %q has more than 2 decimal places", s)
	}
	return Money{d: d}, nil
}

// MustParse is Parse for literals in tests and seed data. Panics on error.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

// FromCents builds Money from an integer number of cents.
func FromCents(cents int64) Money {
	return Money{d: decimal.New(cents, centExponent)}
}

func (m Money) Add(o Money) Money { return Money{d: m.d.Add(o.d)} }
func (m Money) Sub(o Money) Money { return Money{d: m.d.Sub(o.d)} }
func (m Money) Neg() Money        { return Money{d: m.d.Neg()} }
func (m Money) Abs() Money        { return Money{d: m.d.Abs()} }

// Equal reports exact equality, not epsilon equality.
func (m Money) Equal(o Money) bool { return m.d.Equal(o.d) }

// Cmp returns -1, 0, or 1 comparing m to o.
func (m Money) Cmp(o Money) int { return m.d.Cmp(o.d) }

func (m Money) IsZero() bool     { return m.d.IsZero() }
func (m Money) IsNegative() bool { return m.d.IsNegative() }
func (m Money) IsPositive() bool { return m.d.IsPositive() }

// Split divides m into n equal parts, rounded half-up to the cent.
// The parts may not sum back to m when m is not evenly divisible;
// callers that require exactness must check.
func (m Money) Split(n int) Money {
	return Money{d: m.d.Div(decimal.NewFromInt(int64(n))).Round(2)}
}

// String renders the value with exactly 2 decimal places.
func (m Money) String() string { return m.d.StringFixed(2) }

// Decimal exposes the underlying decimal for report formatting.
func (m Money) Decimal() decimal.Decimal { return m.d }

// MarshalJSON encodes the value as a quoted 2dp decimal string.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON accepts either a quoted decimal string or a bare number.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
