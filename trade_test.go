package hoard

import (
	"math"
	"testing"
)

func TestTradeBaseRates(t *testing.T) {
	tests := []struct {
		name    string
		subtype TradeSubtype
		rate    float64
	}{
		{"route", TradeRoute, 0.06},
		{"commodity", TradeCommodity, 0.08},
		{"guild", TradeGuild, 0.05},
		{"shipping", TradeShipping, 0.07},
		{"caravan", TradeCaravan, 0.065},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTrade("", "Venture", tt.subtype, G(1000))
			if got := tr.BaseReturnRate(); got != tt.rate {
				t.Errorf("BaseReturnRate: got %g, want %g", got, tt.rate)
			}
		})
	}
}

func TestTradeReturnsByRouteStatus(t *testing.T) {
	tests := []struct {
		name   string
		status RouteStatus
		rate   float64
	}{
		{"open", RouteOpen, 0.06},
		{"disrupted", RouteDisrupted, 0.03},
		{"closed", RouteClosed, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTrade("", "Silk Road", TradeRoute, G(1000))
			tr.SetRouteStatus(tt.status)

			want := 1000.0
			for i := 0; i < 5; i++ {
				want *= 1 + tt.rate
			}
			got := tr.CalculateReturns(5).Float64()
			if math.Abs(got-want) > 0.01 {
				t.Errorf("returns over 5 years: got %.4f, want %.4f", got, want)
			}
		})
	}
}

// A closed route yields exactly the principal, whatever the horizon.
func TestTradeClosedRouteNoGrowth(t *testing.T) {
	tr := NewTrade("", "Blockaded", TradeShipping, G(2500))
	tr.SetRouteStatus(RouteClosed)
	for _, years := range []int{0, 1, 10, 100} {
		if got := tr.CalculateReturns(years); !got.Equal(G(2500)) {
			t.Errorf("years=%d: got %s, want 2500", years, got)
		}
	}
	if !tr.CanSell() {
		t.Error("a closed route must still be sellable")
	}
}

func TestTradeMarketModifierScalesRate(t *testing.T) {
	tr := NewTrade("", "Spice", TradeCommodity, G(1000))
	tr.SetMarketModifier(1.5)
	// 8% x 1.5 = 12%.
	want := 1000 * 1.12
	if got := tr.CalculateReturns(1).Float64(); math.Abs(got-want) > 0.01 {
		t.Errorf("boom returns: got %.4f, want %.4f", got, want)
	}
}

func TestTradeMarketModifierClamped(t *testing.T) {
	tr := NewTrade("", "Spice", TradeCommodity, G(1000))
	tr.SetMarketModifier(7.5)
	if tr.MarketModifier() != 3.0 {
		t.Errorf("upper clamp: got %g, want 3", tr.MarketModifier())
	}
	tr.SetMarketModifier(-1)
	if tr.MarketModifier() != 0 {
		t.Errorf("lower clamp: got %g, want 0", tr.MarketModifier())
	}
}

func TestTradeRiskModifier(t *testing.T) {
	tests := []struct {
		name     string
		status   RouteStatus
		modifier float64
		want     float64
	}{
		{"open calm", RouteOpen, 1.0, 1.0},
		{"disrupted", RouteDisrupted, 1.0, 1.5},
		{"closed", RouteClosed, 1.0, 2.0},
		{"open volatile", RouteOpen, 1.5, 1.25},
		{"disrupted volatile", RouteDisrupted, 0.5, 1.875},
		{"closed volatile", RouteClosed, 2.0, 2.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTrade("", "Venture", TradeRoute, G(1000))
			tr.SetRouteStatus(tt.status)
			tr.SetMarketModifier(tt.modifier)
			if got := tr.RiskModifier(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("RiskModifier: got %g, want %g", got, tt.want)
			}
		})
	}
}

func TestTradeRouteStatusHook(t *testing.T) {
	tr := NewTrade("", "Venture", TradeRoute, G(1000))
	var transitions []RouteStatus
	tr.OnRouteStatusChanged(func(old, new RouteStatus) { transitions = append(transitions, new) })

	tr.SetRouteStatus(RouteOpen) // unchanged, no hook
	tr.SetRouteStatus(RouteDisrupted)
	tr.SetRouteStatus(RouteDisrupted) // unchanged, no hook
	tr.SetRouteStatus(RouteClosed)

	if len(transitions) != 2 || transitions[0] != RouteDisrupted || transitions[1] != RouteClosed {
		t.Errorf("transitions: got %v", transitions)
	}
}

func TestTradeRouteDetails(t *testing.T) {
	tr := NewTrade("", "Amber Road", TradeCaravan, G(500))
	tr.SetSourceRegion("north-coast")
	tr.SetDestinationRegion("capital")
	tr.SetCommodity("amber")

	if tr.SourceRegion() != "north-coast" || tr.DestinationRegion() != "capital" || tr.Commodity() != "amber" {
		t.Error("route details were not stored")
	}
	if tr.IsDisrupted() {
		t.Error("open route reported as disrupted")
	}
	tr.SetRouteStatus(RouteDisrupted)
	if !tr.IsDisrupted() {
		t.Error("disrupted route not reported")
	}
}
