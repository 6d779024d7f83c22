package hoard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortfolioStartsWithDefaultGold(t *testing.T) {
	p := NewPortfolio()
	assert.True(t, p.Gold().Equal(G(1000)), "default starting gold")
	assert.Equal(t, 0, p.Len())
}

func TestPortfolioGoldArithmetic(t *testing.T) {
	p := NewPortfolioWithGold(G(100))

	require.True(t, p.CanAfford(G(100)))
	require.False(t, p.CanAfford(G(101)))

	// Failed subtraction leaves the balance untouched.
	require.False(t, p.SubtractGold(G(500)))
	assert.True(t, p.Gold().Equal(G(100)))

	require.True(t, p.SubtractGold(G(40)))
	assert.True(t, p.Gold().Equal(G(60)))

	p.AddGold(G(15))
	assert.True(t, p.Gold().Equal(G(75)))
}

func TestPortfolioGoldNeverNegative(t *testing.T) {
	p := NewPortfolioWithGold(G(50))
	p.SetGold(G(-10))
	assert.True(t, p.Gold().IsZero(), "negative balance must clamp to zero")

	p2 := NewPortfolioWithGold(G(-100))
	assert.True(t, p2.Gold().IsZero())
}

func TestPortfolioAddRemove(t *testing.T) {
	p := NewPortfolio()
	farm := NewProperty("farm-1", "Farm", PropertyAgricultural, G(500))
	bond := NewFinancial("bond-1", "Bond", FinancialCrownBond, G(1000), 0.05)

	var added, removed []string
	p.OnInvestmentAdded(func(inv *Investment) { added = append(added, inv.ID()) })
	p.OnInvestmentRemoved(func(inv *Investment) { removed = append(removed, inv.ID()) })

	p.AddInvestment(&farm.Investment)
	p.AddInvestment(&bond.Investment)
	require.Equal(t, 2, p.Len())
	assert.Equal(t, []string{"farm-1", "bond-1"}, added)

	require.NotNil(t, p.Investment("bond-1"))
	assert.Nil(t, p.Investment("missing"))

	require.True(t, p.RemoveInvestmentByID("farm-1"))
	assert.False(t, p.RemoveInvestmentByID("farm-1"), "second removal must fail")
	require.True(t, p.RemoveInvestment(&bond.Investment))
	assert.Equal(t, []string{"farm-1", "bond-1"}, removed)
	assert.Equal(t, 0, p.Len())
}

func TestPortfolioFilters(t *testing.T) {
	p := NewPortfolio()
	p.AddInvestment(&NewProperty("p1", "Farm", PropertyAgricultural, G(500)).Investment)
	p.AddInvestment(&NewTrade("t1", "Route", TradeRoute, G(800)).Investment)
	p.AddInvestment(&NewFinancial("f1", "Bond", FinancialCrownBond, G(1000), 0.05).Investment)

	assert.Len(t, p.InvestmentsByCategory(CategoryProperty), 1)
	assert.Len(t, p.InvestmentsByCategory(CategoryTrade), 1)
	assert.Len(t, p.InvestmentsByCategory(CategoryDark), 0)

	// Property defaults to low risk, trade and financial to medium.
	assert.Len(t, p.InvestmentsByRisk(RiskLow), 1)
	assert.Len(t, p.InvestmentsByRisk(RiskMedium), 2)
}

func TestPortfolioTotalValue(t *testing.T) {
	p := NewPortfolioWithGold(G(1000))
	p.AddInvestment(&NewProperty("p1", "Farm", PropertyAgricultural, G(500)).Investment)
	p.AddInvestment(&NewTrade("t1", "Route", TradeRoute, G(800)).Investment)

	assert.True(t, p.InvestmentValue().Equal(G(1300)))
	assert.True(t, p.TotalValue().Equal(G(2300)))

	// The invariant holds across a slumber as well.
	p.ApplySlumber(5)
	assert.True(t, p.TotalValue().Equal(p.Gold().Add(p.InvestmentValue())))
}

func TestPortfolioCalculateIncomeExcludesLosses(t *testing.T) {
	p := NewPortfolioWithGold(G(0))

	bond := NewFinancial("f1", "Bond", FinancialCrownBond, G(1000), 0.05)
	p.AddInvestment(&bond.Investment)

	// A defaulted usury note is worth less than its current value, a loss.
	bad := NewFinancial("f2", "Loanshark", FinancialUsury, G(1000), 0.12)
	bad.SetDebtStatus(DebtDefault)
	bad.SetCurrentValue(G(400)) // above the 100 recovery value
	p.AddInvestment(&bad.Investment)

	// Only the bond's 1000 + 50x10 - 1000 = 500 counts.
	income := p.CalculateIncome(10)
	assert.True(t, income.Equal(G(500)), "income %s", income)

	// Read-only: nothing moved.
	assert.True(t, bond.CurrentValue().Equal(G(1000)))
	assert.True(t, bad.CurrentValue().Equal(G(400)))
	assert.True(t, p.Gold().IsZero())
}

func TestPortfolioApplySlumberEmpty(t *testing.T) {
	p := NewPortfolioWithGold(G(1234))
	income := p.ApplySlumber(50)
	assert.True(t, income.IsZero())
	assert.True(t, p.Gold().Equal(G(1234)))
}

func TestPortfolioApplySlumberEndToEnd(t *testing.T) {
	p := NewPortfolioWithGold(G(1000))
	farm := NewProperty("p1", "Farm", PropertyAgricultural, G(500))
	p.AddInvestment(&farm.Investment)

	goldUpdates := 0
	p.OnGoldChanged(func(old, new Currency) { goldUpdates++ })

	income := p.ApplySlumber(10)

	// 500 x 1.03^10 = 671.96, income 171.96, banked in one update.
	assert.InDelta(t, 671.96, farm.CurrentValue().Float64(), 0.01)
	assert.InDelta(t, 171.96, income.Float64(), 0.01)
	assert.InDelta(t, 1171.96, p.Gold().Float64(), 0.01)
	assert.Equal(t, 1, goldUpdates, "slumber must commit the balance once")
}

func TestPortfolioApplySlumberSkipsLossesButWritesValues(t *testing.T) {
	p := NewPortfolioWithGold(G(0))
	bad := NewFinancial("f1", "Loanshark", FinancialUsury, G(1000), 0.12)
	bad.SetDebtStatus(DebtDefault)
	bad.SetCurrentValue(G(400))
	p.AddInvestment(&bad.Investment)

	income := p.ApplySlumber(10)

	// The loss is not charged against the balance, but the holding is still
	// revalued to its recovery worth.
	assert.True(t, income.IsZero())
	assert.True(t, p.Gold().IsZero())
	assert.True(t, bad.CurrentValue().Equal(G(100)))
}

func TestPortfolioApplyEventBroadcast(t *testing.T) {
	p := NewPortfolio()
	p.AddInvestment(&NewProperty("p1", "Farm", PropertyAgricultural, G(500)).Investment)
	p.AddInvestment(&NewTrade("t1", "Route", TradeRoute, G(800)).Investment)

	before := p.InvestmentValue()
	p.ApplyEvent(NewWorldEvent("Great Frost", EventEconomic))
	assert.True(t, p.InvestmentValue().Equal(before), "events alone must not move values")
}

func TestPortfolioReset(t *testing.T) {
	p := NewPortfolioWithGold(G(9999))
	p.AddInvestment(&NewProperty("p1", "Farm", PropertyAgricultural, G(500)).Investment)

	p.Reset(nil)
	assert.Equal(t, 0, p.Len())
	assert.True(t, p.Gold().Equal(G(1000)), "nil reset restores the default")

	fresh := G(50)
	p.Reset(&fresh)
	assert.True(t, p.Gold().Equal(G(50)))
}

func TestPortfolioExposureScore(t *testing.T) {
	p := NewPortfolio()
	p.AddInvestment(&NewProperty("p1", "Farm", PropertyAgricultural, G(5000)).Investment) // band 2 x low 1
	p.AddInvestment(&NewTrade("t1", "Route", TradeRoute, G(5000)).Investment)             // band 2 x medium 2
	assert.Equal(t, 6, p.ExposureScore())
}
