package hoard

import (
	"fmt"

	"github.com/google/uuid"
)

// AssetCategory classifies an investment by the economic rules that drive it.
type AssetCategory int

const (
	// CategoryProperty is land and buildings.
	CategoryProperty AssetCategory = iota
	// CategoryTrade is routes, commodities and mercantile ventures.
	CategoryTrade
	// CategoryFinancial is bonds, debts and other paper instruments.
	CategoryFinancial
	// CategoryMagical is reserved. It parses and persists but no behavior
	// ships for it yet.
	CategoryMagical
	// CategoryPolitical is reserved.
	CategoryPolitical
	// CategoryDark is reserved. Dark holdings still weigh double in
	// exposure calculations.
	CategoryDark
)

func (c AssetCategory) String() string {
	switch c {
	case CategoryProperty:
		return "property"
	case CategoryTrade:
		return "trade"
	case CategoryFinancial:
		return "financial"
	case CategoryMagical:
		return "magical"
	case CategoryPolitical:
		return "political"
	case CategoryDark:
		return "dark"
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// ParseAssetCategory returns the category named by s.
func ParseAssetCategory(s string) (AssetCategory, error) {
	for _, c := range []AssetCategory{CategoryProperty, CategoryTrade, CategoryFinancial, CategoryMagical, CategoryPolitical, CategoryDark} {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown asset category %q", s)
}

// RiskTier grades how volatile an investment is expected to be.
type RiskTier int

const (
	RiskLow RiskTier = iota
	RiskMedium
	RiskHigh
	RiskExtreme
)

func (r RiskTier) String() string {
	switch r {
	case RiskLow:
		return "low"
	case RiskMedium:
		return "medium"
	case RiskHigh:
		return "high"
	case RiskExtreme:
		return "extreme"
	}
	return fmt.Sprintf("risk(%d)", int(r))
}

// ParseRiskTier returns the risk tier named by s.
func ParseRiskTier(s string) (RiskTier, error) {
	for _, r := range []RiskTier{RiskLow, RiskMedium, RiskHigh, RiskExtreme} {
		if r.String() == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown risk tier %q", s)
}

// Event is an occurrence in the game world that may affect holdings. The
// engine forwards events blindly; interpretation belongs to the behaviors.
type Event interface {
	Label() string
}

// Behavior is the valuation contract every investment carries. An investment
// receives exactly one behavior at construction and keeps it for life.
type Behavior interface {
	// CalculateReturns projects the value after the given number of years,
	// starting from the current value. Zero or negative years project no
	// growth and return the current value unchanged.
	CalculateReturns(years int) Currency
	// ApplyEvent lets the behavior react to a world event.
	ApplyEvent(e Event)
	// CanSell reports whether the holding is currently liquid.
	CanSell() bool
	// RiskModifier scales the nominal risk of the tier up or down.
	RiskModifier() float64
	// BaseReturnRate is the nominal annual rate before any situational
	// factor is applied.
	BaseReturnRate() float64
}

// Investment is the common entity under every holding: identity, pricing and
// a category behavior. Category structs embed it and override the behavior.
type Investment struct {
	id           string
	name         string
	description  string
	category     AssetCategory
	risk         RiskTier
	purchase     Currency
	current      Currency
	purchaseYear int
	region       string

	behavior Behavior

	onValueChanged func(old, new Currency)
}

// NewInvestment builds an uncategorized investment carrying the generic
// behavior: growth from the risk tier alone. Category factories should be
// preferred; this one exists for holdings with no specialized rules yet.
func NewInvestment(id, name string, risk RiskTier, purchase Currency, purchaseYear int) *Investment {
	inv := &Investment{
		id:           orNewID(id),
		name:         name,
		description:  "",
		category:     CategoryProperty,
		risk:         risk,
		purchase:     purchase,
		current:      purchase,
		purchaseYear: purchaseYear,
	}
	if name == "" {
		inv.name = "Unknown Investment"
	}
	inv.behavior = &genericBehavior{inv: inv}
	return inv
}

func orNewID(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}

func (inv *Investment) ID() string              { return inv.id }
func (inv *Investment) Name() string            { return inv.name }
func (inv *Investment) Description() string     { return inv.description }
func (inv *Investment) Category() AssetCategory { return inv.category }
func (inv *Investment) Risk() RiskTier          { return inv.risk }
func (inv *Investment) PurchasePrice() Currency { return inv.purchase }
func (inv *Investment) CurrentValue() Currency  { return inv.current }
func (inv *Investment) PurchaseYear() int       { return inv.purchaseYear }
func (inv *Investment) Region() string          { return inv.region }

// Behavior returns the category behavior fixed at construction.
func (inv *Investment) Behavior() Behavior { return inv.behavior }

// SetName renames the holding.
func (inv *Investment) SetName(name string) {
	if inv.name == name {
		return
	}
	inv.name = name
}

// SetDescription updates the free-form description.
func (inv *Investment) SetDescription(description string) {
	if inv.description == description {
		return
	}
	inv.description = description
}

// SetRisk regrades the risk tier.
func (inv *Investment) SetRisk(risk RiskTier) {
	if inv.risk == risk {
		return
	}
	inv.risk = risk
}

// SetRegion moves the holding to another region.
func (inv *Investment) SetRegion(region string) {
	if inv.region == region {
		return
	}
	inv.region = region
}

// SetPurchaseYear rewrites the acquisition year.
func (inv *Investment) SetPurchaseYear(year int) {
	if inv.purchaseYear == year {
		return
	}
	inv.purchaseYear = year
}

// SetCurrentValue overwrites the market value. The change hook fires even
// when the new value equals the old one, so observers can treat every
// revaluation as a tick.
func (inv *Investment) SetCurrentValue(value Currency) {
	old := inv.current
	inv.current = value
	if inv.onValueChanged != nil {
		inv.onValueChanged(old, value)
	}
}

// OnValueChanged registers the revaluation hook. Pass nil to unregister.
func (inv *Investment) OnValueChanged(fn func(old, new Currency)) {
	inv.onValueChanged = fn
}

// CalculateReturns projects the holding's value after the given years by
// delegating to the category behavior.
func (inv *Investment) CalculateReturns(years int) Currency {
	return inv.behavior.CalculateReturns(years)
}

// ApplyEvent forwards a world event to the category behavior.
func (inv *Investment) ApplyEvent(e Event) { inv.behavior.ApplyEvent(e) }

// CanSell reports whether the holding can be liquidated right now.
func (inv *Investment) CanSell() bool { return inv.behavior.CanSell() }

// RiskModifier returns the behavior's situational risk scaling.
func (inv *Investment) RiskModifier() float64 { return inv.behavior.RiskModifier() }

// BaseReturnRate returns the behavior's nominal annual rate.
func (inv *Investment) BaseReturnRate() float64 { return inv.behavior.BaseReturnRate() }

// Age returns how many years the holding has been owned as of currentYear.
// A purchase year in the future ages zero.
func (inv *Investment) Age(currentYear int) int {
	if currentYear <= inv.purchaseYear {
		return 0
	}
	return currentYear - inv.purchaseYear
}

// ReturnPercentage is the total gain or loss since purchase, in percent of
// the purchase price. A free holding (zero purchase price) returns zero.
func (inv *Investment) ReturnPercentage() float64 {
	if inv.purchase.IsZero() {
		return 0
	}
	return inv.current.Sub(inv.purchase).Float64() / inv.purchase.Float64() * 100
}

// ExposureContribution scores how much this holding weighs in the owner's
// total risk exposure: a value band crossed with the risk tier. Dark
// holdings count double.
func (inv *Investment) ExposureContribution() int {
	band := 0
	switch v := inv.current.Float64(); {
	case v >= 100000:
		band = 5
	case v >= 10000:
		band = 3
	case v >= 1000:
		band = 2
	case v > 0:
		band = 1
	}
	mult := 1
	switch inv.risk {
	case RiskMedium:
		mult = 2
	case RiskHigh:
		mult = 3
	case RiskExtreme:
		mult = 5
	}
	score := band * mult
	if inv.category == CategoryDark {
		score *= 2
	}
	return score
}

// compound multiplies v by (1+rate) once per elapsed year. Growth is applied
// year by year rather than as a closed-form power so every yearly step goes
// through the same decimal multiplication as a live game tick.
func compound(v Currency, rate float64, years int) Currency {
	if years <= 0 || rate == 0 {
		return v
	}
	factor := 1 + rate
	for i := 0; i < years; i++ {
		v = v.MulFloat(factor)
	}
	return v
}

// genericBehavior grows a holding from its risk tier alone. It is the
// fallback for investments without category rules.
type genericBehavior struct {
	inv *Investment
}

func (b *genericBehavior) BaseReturnRate() float64 {
	switch b.inv.risk {
	case RiskLow:
		return 0.03
	case RiskMedium:
		return 0.06
	case RiskHigh:
		return 0.10
	case RiskExtreme:
		return 0.15
	}
	return 0.05
}

func (b *genericBehavior) RiskModifier() float64 { return 1.0 }

func (b *genericBehavior) CanSell() bool { return true }

func (b *genericBehavior) ApplyEvent(e Event) {
	logger.Debug().Str("id", b.inv.id).Str("event", e.Label()).Msg("event ignored by generic holding")
}

func (b *genericBehavior) CalculateReturns(years int) Currency {
	result := compound(b.inv.current, b.BaseReturnRate()*b.RiskModifier(), years)
	logger.Debug().Str("id", b.inv.id).Int("years", years).Str("value", result.String()).Msg("calculated returns")
	return result
}
