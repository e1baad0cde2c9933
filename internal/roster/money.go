package roster

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/apd/v3"
	"gopkg.in/yaml.v3"
)

// Money is an immutable fixed-point decimal amount.
// The zero value is 0.
type Money struct {
	d *apd.Decimal // never mutated after construction
}

// minorContext quantizes amounts for integer storage.
var minorContext = apd.BaseContext.WithPrecision(34)

// ParseMoney parses a decimal literal such as "60000.3".
// Exponent notation is accepted; NaN and infinities are not.
func ParseMoney(s string) (Money, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("parse money %q: %w", s, err)
	}
	if d.Form != apd.Finite {
		return Money{}, fmt.Errorf("parse money %q: not a finite amount", s)
	}
	return Money{d: d}, nil
}

// MustMoney is ParseMoney that panics on error. For literals only.
func MustMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) dec() *apd.Decimal {
	if m.d == nil {
		return apd.New(0, 0)
	}
	return m.d
}

// Cmp compares m and o numerically: -1 if m < o, 0 if equal, +1 if m > o.
// Trailing zeros do not matter (1.50 equals 1.5).
func (m Money) Cmp(o Money) int {
	return m.dec().Cmp(o.dec())
}

// GreaterThan reports whether m > o.
func (m Money) GreaterThan(o Money) bool {
	return m.Cmp(o) > 0
}

// AtLeast reports whether m >= o.
func (m Money) AtLeast(o Money) bool {
	return m.Cmp(o) >= 0
}

// String renders m in plain notation, keeping the parsed scale
// (60000.3 stays "60000.3").
func (m Money) String() string {
	return m.dec().Text('f')
}

// MinorUnits returns m scaled by 10^scale as an integer, e.g. cents for
// scale 2. Fails if m has more fractional digits than scale.
func (m Money) MinorUnits(scale int32) (int64, error) {
	var q apd.Decimal
	cond, err := minorContext.Quantize(&q, m.dec(), -scale)
	if err != nil {
		return 0, fmt.Errorf("quantize %s: %w", m, err)
	}
	if cond.Inexact() {
		return 0, fmt.Errorf("quantize %s: more than %d fractional digits", m, scale)
	}
	// q has exponent -scale; its coefficient is the minor-unit count.
	q.Exponent = 0
	return q.Int64()
}

// MoneyFromMinor is the inverse of MinorUnits.
func MoneyFromMinor(units int64, scale int32) Money {
	return Money{d: apd.New(units, -scale)}
}

// MarshalJSON encodes m as a JSON string so no precision is lost.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts a JSON string or number.
func (m *Money) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("money must be a string or number: %s", data)
		}
		s = n.String()
	}
	parsed, err := ParseMoney(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// UnmarshalYAML parses the scalar's literal text, never a float64.
func (m *Money) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: money must be a scalar", node.Line)
	}
	parsed, err := ParseMoney(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*m = parsed
	return nil
}
