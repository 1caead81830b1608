package invoicify

import (
	"math"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used to format amounts when the invoice does not name one.
const DefaultCurrency = money.USD

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// parseDecimal converts free text to a decimal, the way a form field is read:
// surrounding blanks are ignored, an empty string is zero and anything that is
// not a finite number is zero too.
func parseDecimal(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	if d, err := decimal.NewFromString(s); err == nil {
		return d
	}
	// strconv knows a few more spellings, such as hexadecimal floats ("0x1Fp0").
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

// Quantity is a number of units on a line item. It can be fractional (hours).
type Quantity struct {
	value decimal.Decimal
}

func Q[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

// ParseQuantity reads a quantity from user input. Invalid input is 0.
func ParseQuantity(s string) Quantity { return Quantity{value: parseDecimal(s)} }

func (q Quantity) Equal(p Quantity) bool { return q.value.Equal(p.value) }
func (q Quantity) IsZero() bool          { return q.value.IsZero() }
func (q Quantity) IsNegative() bool      { return q.value.IsNegative() }
func (q Quantity) String() string        { return q.value.String() }

// MarshalJSON writes the quantity as a plain JSON number.
func (q Quantity) MarshalJSON() ([]byte, error) { return []byte(q.value.String()), nil }

func (q *Quantity) UnmarshalJSON(decimalBytes []byte) error {
	return q.value.UnmarshalJSON(decimalBytes)
}

// Money represents a monetary value in major units (dollars, euros).
// It carries no currency: an invoice has a single one, applied when formatting.
type Money struct {
	value decimal.Decimal
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// ParseMoney reads an amount from user input. Invalid input is 0.
func ParseMoney(s string) Money { return Money{value: parseDecimal(s)} }

func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) Add(n Money) Money        { return Money{value: m.value.Add(n.value)} }
func (m Money) Mul(q Quantity) Money     { return Money{value: m.value.Mul(q.value)} }
func (m Money) Decimal() decimal.Decimal { return m.value }

// Percentage returns p percent of m.
func (m Money) Percentage(p Percent) Money {
	return Money{value: m.value.Mul(p.value).Shift(-2)}
}

// String returns the exact value, without currency nor rounding.
func (m Money) String() string { return m.value.String() }

// Format returns the amount rounded to the currency minor unit and formatted
// with the currency symbol, e.g. "$1,627.50". Unknown currencies are formatted as USD.
func (m Money) Format(currency string) string {
	cur := money.GetCurrency(strings.ToUpper(currency))
	if cur == nil {
		cur = money.GetCurrency(DefaultCurrency)
	}
	minor := m.value.Shift(int32(cur.Fraction)).Round(0)
	if minor.BigInt().IsInt64() {
		return cur.Formatter().Format(minor.IntPart())
	}
	return formatMinor(cur.Formatter(), minor)
}

// formatMinor is money.Formatter.Format for amounts of minor units beyond int64.
func formatMinor(f *money.Formatter, minor decimal.Decimal) string {
	sa := minor.Abs().StringFixed(0)
	if len(sa) <= f.Fraction {
		sa = strings.Repeat("0", f.Fraction-len(sa)+1) + sa
	}
	if f.Thousand != "" {
		for i := len(sa) - f.Fraction - 3; i > 0; i -= 3 {
			sa = sa[:i] + f.Thousand + sa[i:]
		}
	}
	if f.Fraction > 0 {
		sa = sa[:len(sa)-f.Fraction] + f.Decimal + sa[len(sa)-f.Fraction:]
	}
	sa = strings.Replace(f.Template, "1", sa, 1)
	sa = strings.Replace(sa, "$", f.Grapheme, 1)
	if minor.IsNegative() {
		sa = "-" + sa
	}
	return sa
}

// MarshalJSON writes the amount as a plain JSON number, with all its digits.
func (m Money) MarshalJSON() ([]byte, error) { return []byte(m.value.String()), nil }

func (m *Money) UnmarshalJSON(decimalBytes []byte) error {
	return m.value.UnmarshalJSON(decimalBytes)
}

// Percent is a rate expressed in percent: 8.5 means 8.5%.
type Percent struct {
	value decimal.Decimal
}

func P[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Percent {
	return Percent{value: newDecimal(value)}
}

// ParsePercent reads a rate from user input. Invalid input is 0.
func ParsePercent(s string) Percent { return Percent{value: parseDecimal(s)} }

func (p Percent) Equal(q Percent) bool { return p.value.Equal(q.value) }

// String returns the rate without the percent sign, e.g. "8.5".
func (p Percent) String() string { return p.value.String() }

func (p Percent) MarshalJSON() ([]byte, error) { return []byte(p.value.String()), nil }

func (p *Percent) UnmarshalJSON(decimalBytes []byte) error {
	return p.value.UnmarshalJSON(decimalBytes)
}
