package hoard

import "fmt"

// maxImprovements caps how many improvements a single property can carry.
const maxImprovements = 5

// PropertySubtype is the kind of land or building a property represents.
type PropertySubtype int

const (
	PropertyAgricultural PropertySubtype = iota
	PropertyUrban
	PropertyMining
	PropertyTimber
	PropertyCoastal
)

func (s PropertySubtype) String() string {
	switch s {
	case PropertyAgricultural:
		return "agricultural"
	case PropertyUrban:
		return "urban"
	case PropertyMining:
		return "mining"
	case PropertyTimber:
		return "timber"
	case PropertyCoastal:
		return "coastal"
	}
	return fmt.Sprintf("property(%d)", int(s))
}

// ParsePropertySubtype returns the subtype named by s.
func ParsePropertySubtype(s string) (PropertySubtype, error) {
	for _, t := range []PropertySubtype{PropertyAgricultural, PropertyUrban, PropertyMining, PropertyTimber, PropertyCoastal} {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown property subtype %q", s)
}

// PropertyInvestment is land or buildings. Slow, steady compound growth,
// strengthened by improvements and cushioned by a stability bonus.
type PropertyInvestment struct {
	Investment

	subtype      PropertySubtype
	stability    float64
	improvements int
}

// NewProperty creates a property investment. An empty id draws a fresh one.
// The value becomes both purchase price and current value.
func NewProperty(id, name string, subtype PropertySubtype, value Currency) *PropertyInvestment {
	p := &PropertyInvestment{
		subtype:   subtype,
		stability: 1.2,
	}
	p.Investment = Investment{
		id:           orNewID(id),
		name:         name,
		category:     CategoryProperty,
		risk:         RiskLow,
		purchase:     value,
		current:      value,
		purchaseYear: 0,
	}
	if name == "" {
		p.Investment.name = "Unknown Investment"
	}
	p.Investment.behavior = p
	return p
}

func (p *PropertyInvestment) Subtype() PropertySubtype { return p.subtype }
func (p *PropertyInvestment) StabilityBonus() float64  { return p.stability }
func (p *PropertyInvestment) Improvements() int        { return p.improvements }

// SetStabilityBonus updates the stability bonus. Values outside [0.5, 3.0]
// are rejected and logged.
func (p *PropertyInvestment) SetStabilityBonus(bonus float64) {
	if bonus < 0.5 || bonus > 3.0 {
		logger.Warn().Str("id", p.id).Float64("bonus", bonus).Msg("stability bonus out of range, ignored")
		return
	}
	if p.stability == bonus {
		return
	}
	p.stability = bonus
}

// BaseReturnRate is the annual rate for the property's subtype.
func (p *PropertyInvestment) BaseReturnRate() float64 {
	switch p.subtype {
	case PropertyAgricultural:
		return 0.03
	case PropertyUrban:
		return 0.04
	case PropertyMining:
		return 0.05
	case PropertyTimber:
		return 0.035
	case PropertyCoastal:
		return 0.045
	}
	return 0.035
}

// RiskModifier shrinks with stability. A bonus above 1 means the holding is
// safer than its tier suggests.
func (p *PropertyInvestment) RiskModifier() float64 { return 1.0 / p.stability }

// CanSell is always true for property.
func (p *PropertyInvestment) CanSell() bool { return true }

// ApplyEvent logs the event. Property weathers upheaval on its stability
// bonus alone; value effects belong to the world simulation.
func (p *PropertyInvestment) ApplyEvent(e Event) {
	logger.Debug().Str("id", p.id).Str("event", e.Label()).Float64("stability", p.stability).Msg("property event applied")
}

// CalculateReturns compounds the current value at the subtype rate plus
// 0.5% per improvement. The stability-driven risk modifier is reported
// through RiskModifier but takes no part in growth.
func (p *PropertyInvestment) CalculateReturns(years int) Currency {
	rate := p.BaseReturnRate() + float64(p.improvements)*0.005
	result := compound(p.current, rate, years)
	logger.Debug().Str("id", p.id).Int("years", years).
		Str("from", p.current.FormatShort()).Str("to", result.FormatShort()).
		Float64("rate", rate).Msg("property returns calculated")
	return result
}

// AddImprovement invests cost into the property: the cost is added to the
// current value and the improvement count goes up. Fails without mutation
// once the cap is reached.
func (p *PropertyInvestment) AddImprovement(cost Currency) bool {
	if p.improvements >= maxImprovements {
		logger.Debug().Str("id", p.id).Int("max", maxImprovements).Msg("improvement cap reached")
		return false
	}
	p.SetCurrentValue(p.current.Add(cost))
	p.improvements++
	logger.Debug().Str("id", p.id).Int("improvements", p.improvements).Str("cost", cost.FormatShort()).Msg("improvement added")
	return true
}

// UpkeepCost is the annual maintenance bill: 0.5% of current value plus
// 0.1% per improvement. It is a query only; nothing deducts it.
func (p *PropertyInvestment) UpkeepCost() Currency {
	return p.current.MulFloat(0.005 + float64(p.improvements)*0.001)
}

// IsDeveloped reports whether the property carries its maximum improvements.
func (p *PropertyInvestment) IsDeveloped() bool { return p.improvements >= maxImprovements }
