package hoard

import (
	"github.com/shopspring/decimal"
)

// Currency is the game's monetary value: an arbitrary-magnitude amount of
// gold. It is a value type; operations return new values and never mutate
// their receiver. Arithmetic is exact decimal arithmetic, which keeps the
// per-year compounding loops reproducible across saves.
type Currency struct {
	value decimal.Decimal
}

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

// G constructs a Currency from any numeric value.
func G[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Currency {
	return Currency{value: newDecimal(value)}
}

// ZeroGold returns the zero amount.
func ZeroGold() Currency { return Currency{} }

// GoldFromParts reconstructs a Currency from a normalized mantissa and a
// base-10 exponent, the representation used by savegames.
func GoldFromParts(mantissa float64, exponent int32) Currency {
	return Currency{value: decimal.NewFromFloat(mantissa).Shift(exponent)}
}

// Parts decomposes the value into a normalized mantissa (absolute value in
// [1, 10), or 0 for zero) and a base-10 exponent.
func (c Currency) Parts() (mantissa float64, exponent int32) {
	if c.value.IsZero() {
		return 0, 0
	}
	// Exact decimal digit count, no float log involved.
	exponent = int32(c.value.NumDigits()) - 1 + c.value.Exponent()
	mantissa = c.value.Shift(-exponent).InexactFloat64()
	return mantissa, exponent
}

func (c Currency) Add(n Currency) Currency     { return Currency{value: c.value.Add(n.value)} }
func (c Currency) Sub(n Currency) Currency     { return Currency{value: c.value.Sub(n.value)} }
func (c Currency) Mul(n Currency) Currency     { return Currency{value: c.value.Mul(n.value)} }
func (c Currency) Equal(n Currency) bool       { return c.value.Equal(n.value) }
func (c Currency) LessThan(n Currency) bool    { return c.value.LessThan(n.value) }
func (c Currency) GreaterThan(n Currency) bool { return c.value.GreaterThan(n.value) }
func (c Currency) Cmp(n Currency) int          { return c.value.Cmp(n.value) }
func (c Currency) IsZero() bool                { return c.value.IsZero() }
func (c Currency) IsNegative() bool            { return c.value.IsNegative() }
func (c Currency) IsPositive() bool            { return c.value.IsPositive() }

// MulFloat scales the value by a float factor. The factor is converted to a
// decimal once per call, so repeated calls with the same factor multiply by
// exactly the same decimal each time.
func (c Currency) MulFloat(f float64) Currency {
	return Currency{value: c.value.Mul(decimal.NewFromFloat(f))}
}

// Float64 returns the nearest float64. Intended for display and tests; all
// engine math stays in decimals.
func (c Currency) Float64() float64 { return c.value.InexactFloat64() }

// String returns the full decimal representation.
func (c Currency) String() string { return c.value.String() }

// suffixes is the idle-game magnitude ladder, one step per factor of 1000.
var suffixes = []string{"", "K", "M", "B", "T", "Qa", "Qi", "Sx", "Sp", "Oc", "No", "Dc"}

// FormatShort renders the value the way the game UI shows gold: at most two
// decimals and a magnitude suffix (1.5K, 23.47M, ...). Values beyond the
// suffix ladder fall back to scientific notation.
func (c Currency) FormatShort() string {
	neg := c.value.IsNegative()
	abs := c.value.Abs()
	if abs.LessThan(decimal.NewFromInt(1000)) {
		s := abs.Round(2).String()
		if neg {
			return "-" + s
		}
		return s
	}
	mantissa, exponent := Currency{value: abs}.Parts()
	step := int(exponent) / 3
	if step >= len(suffixes) {
		s := decimal.NewFromFloat(mantissa).Round(2).String() + "e" + decimal.NewFromInt(int64(exponent)).String()
		if neg {
			return "-" + s
		}
		return s
	}
	scaled := abs.Shift(-int32(step * 3))
	s := scaled.Round(2).String() + suffixes[step]
	if neg {
		return "-" + s
	}
	return s
}
