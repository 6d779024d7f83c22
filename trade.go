package hoard

import "fmt"

// TradeSubtype is the kind of mercantile venture a trade holding represents.
type TradeSubtype int

const (
	TradeRoute TradeSubtype = iota
	TradeCommodity
	TradeGuild
	TradeShipping
	TradeCaravan
)

func (s TradeSubtype) String() string {
	switch s {
	case TradeRoute:
		return "route"
	case TradeCommodity:
		return "commodity"
	case TradeGuild:
		return "guild"
	case TradeShipping:
		return "shipping"
	case TradeCaravan:
		return "caravan"
	}
	return fmt.Sprintf("trade(%d)", int(s))
}

// ParseTradeSubtype returns the subtype named by s.
func ParseTradeSubtype(s string) (TradeSubtype, error) {
	for _, t := range []TradeSubtype{TradeRoute, TradeCommodity, TradeGuild, TradeShipping, TradeCaravan} {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown trade subtype %q", s)
}

// RouteStatus is the operational state of a trade venture's route.
type RouteStatus int

const (
	RouteOpen RouteStatus = iota
	RouteDisrupted
	RouteClosed
)

func (s RouteStatus) String() string {
	switch s {
	case RouteOpen:
		return "open"
	case RouteDisrupted:
		return "disrupted"
	case RouteClosed:
		return "closed"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// ParseRouteStatus returns the route status named by s.
func ParseRouteStatus(s string) (RouteStatus, error) {
	for _, t := range []RouteStatus{RouteOpen, RouteDisrupted, RouteClosed} {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown route status %q", s)
}

// TradeInvestment is a mercantile venture. Returns swing with the route
// status and market conditions; a closed route yields nothing at all.
type TradeInvestment struct {
	Investment

	subtype        TradeSubtype
	status         RouteStatus
	marketModifier float64

	sourceRegion      string
	destinationRegion string
	commodity         string

	onRouteStatusChanged func(old, new RouteStatus)
}

// NewTrade creates a trade investment with an open route and a neutral
// market. The value becomes both purchase price and current value.
func NewTrade(id, name string, subtype TradeSubtype, value Currency) *TradeInvestment {
	t := &TradeInvestment{
		subtype:        subtype,
		status:         RouteOpen,
		marketModifier: 1.0,
	}
	t.Investment = Investment{
		id:           orNewID(id),
		name:         name,
		category:     CategoryTrade,
		risk:         RiskMedium,
		purchase:     value,
		current:      value,
		purchaseYear: 0,
	}
	if name == "" {
		t.Investment.name = "Unknown Investment"
	}
	t.Investment.behavior = t
	return t
}

func (t *TradeInvestment) Subtype() TradeSubtype     { return t.subtype }
func (t *TradeInvestment) RouteStatus() RouteStatus  { return t.status }
func (t *TradeInvestment) MarketModifier() float64   { return t.marketModifier }
func (t *TradeInvestment) SourceRegion() string      { return t.sourceRegion }
func (t *TradeInvestment) DestinationRegion() string { return t.destinationRegion }
func (t *TradeInvestment) Commodity() string         { return t.commodity }

// SetRouteStatus transitions the route. The status hook fires only when the
// status actually changes.
func (t *TradeInvestment) SetRouteStatus(status RouteStatus) {
	if t.status == status {
		return
	}
	old := t.status
	t.status = status
	if t.onRouteStatusChanged != nil {
		t.onRouteStatusChanged(old, status)
	}
	logger.Debug().Str("id", t.id).Stringer("from", old).Stringer("to", status).Msg("route status changed")
}

// OnRouteStatusChanged registers the status transition hook. Pass nil to
// unregister.
func (t *TradeInvestment) OnRouteStatusChanged(fn func(old, new RouteStatus)) {
	t.onRouteStatusChanged = fn
}

// SetMarketModifier updates market conditions, clamped to [0, 3].
func (t *TradeInvestment) SetMarketModifier(modifier float64) {
	if modifier < 0 {
		modifier = 0
	} else if modifier > 3 {
		modifier = 3
	}
	if t.marketModifier == modifier {
		return
	}
	t.marketModifier = modifier
}

// SetSourceRegion records where the venture's goods come from.
func (t *TradeInvestment) SetSourceRegion(region string) { t.sourceRegion = region }

// SetDestinationRegion records where the goods are sold.
func (t *TradeInvestment) SetDestinationRegion(region string) { t.destinationRegion = region }

// SetCommodity labels the goods being traded.
func (t *TradeInvestment) SetCommodity(commodity string) { t.commodity = commodity }

// BaseReturnRate is the annual rate for the venture's subtype.
func (t *TradeInvestment) BaseReturnRate() float64 {
	switch t.subtype {
	case TradeRoute:
		return 0.06
	case TradeCommodity:
		return 0.08
	case TradeGuild:
		return 0.05
	case TradeShipping:
		return 0.07
	case TradeCaravan:
		return 0.065
	}
	return 0.06
}

// RiskModifier grows with disruption and with market volatility. The two
// factors compose multiplicatively.
func (t *TradeInvestment) RiskModifier() float64 {
	risk := 1.0
	switch t.status {
	case RouteDisrupted:
		risk = 1.5
	case RouteClosed:
		risk = 2.0
	}
	if t.marketModifier > 1.2 || t.marketModifier < 0.8 {
		risk *= 1.25
	}
	return risk
}

// CanSell is always true. A closed route still finds a buyer, just not a
// generous one.
func (t *TradeInvestment) CanSell() bool { return true }

// ApplyEvent logs the event. Trade reacts to the world through its route
// status and market modifier, which the simulation layer drives.
func (t *TradeInvestment) ApplyEvent(e Event) {
	logger.Debug().Str("id", t.id).Str("event", e.Label()).
		Stringer("status", t.status).Float64("market", t.marketModifier).
		Msg("trade event applied")
}

// CalculateReturns compounds the current value at the subtype rate scaled by
// the route status (full, half, or zero) and the market modifier. A closed
// route returns the principal unchanged for any number of years.
func (t *TradeInvestment) CalculateReturns(years int) Currency {
	statusFactor := 1.0
	switch t.status {
	case RouteDisrupted:
		statusFactor = 0.5
	case RouteClosed:
		statusFactor = 0.0
	}
	rate := t.BaseReturnRate() * statusFactor * t.marketModifier
	result := compound(t.current, rate, years)
	logger.Debug().Str("id", t.id).Int("years", years).
		Str("from", t.current.FormatShort()).Str("to", result.FormatShort()).
		Float64("rate", rate).Stringer("status", t.status).Float64("market", t.marketModifier).
		Msg("trade returns calculated")
	return result
}

// IsDisrupted reports whether the route is anything but fully open.
func (t *TradeInvestment) IsDisrupted() bool { return t.status != RouteOpen }
