package capgains

import "github.com/shopspring/decimal"

// Percent is a percentage rounded to two decimals. Its zero value is undefined,
// which is how a return over an empty cost basis is represented.
type Percent struct {
	value decimal.Decimal
	valid bool
}

// NewPercent returns the defined percentage v, rounded to 2 decimals.
func NewPercent(v decimal.Decimal) Percent {
	return Percent{value: v.Round(2), valid: true}
}

// Undefined returns the undefined percentage.
func Undefined() Percent { return Percent{} }

// Valid reports whether the percentage is defined.
func (p Percent) Valid() bool { return p.valid }

// Decimal returns the value, zero when undefined.
func (p Percent) Decimal() decimal.Decimal { return p.value }

func (p Percent) Equal(q Percent) bool {
	return p.valid == q.valid && p.value.Equal(q.value)
}

func (p Percent) String() string {
	if !p.valid {
		return "n/a"
	}
	return p.value.StringFixed(2) + "%"
}

func (p Percent) SignedString() string {
	if !p.valid {
		return "n/a"
	}
	if p.value.IsZero() {
		return "-"
	}
	if p.value.IsPositive() {
		return "+" + p.String()
	}
	return p.String()
}

// MarshalJSON writes the number, or null when undefined.
func (p Percent) MarshalJSON() ([]byte, error) {
	if !p.valid {
		return []byte("null"), nil
	}
	return []byte(p.value.StringFixed(2)), nil
}
