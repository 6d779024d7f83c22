package hoard

// defaultStartingGold is the balance every new or reset portfolio begins
// with.
var defaultStartingGold = G(1000)

// Portfolio owns the gold balance and the investments. Insertion order is
// preserved but carries no meaning. All operations are synchronous; callers
// running concurrent simulations must serialize access themselves.
type Portfolio struct {
	gold        Currency
	investments []*Investment

	onGoldChanged       func(old, new Currency)
	onInvestmentAdded   func(*Investment)
	onInvestmentRemoved func(*Investment)
}

// NewPortfolio creates a portfolio with the default starting gold.
func NewPortfolio() *Portfolio {
	return &Portfolio{gold: defaultStartingGold}
}

// NewPortfolioWithGold creates a portfolio with an explicit balance.
// Negative balances are clamped to zero.
func NewPortfolioWithGold(gold Currency) *Portfolio {
	if gold.IsNegative() {
		logger.Warn().Str("gold", gold.String()).Msg("negative starting gold clamped to zero")
		gold = ZeroGold()
	}
	return &Portfolio{gold: gold}
}

// Gold returns the current balance.
func (p *Portfolio) Gold() Currency { return p.gold }

// SetGold overwrites the balance. Negative values are clamped to zero. The
// gold hook fires with the old and new balance.
func (p *Portfolio) SetGold(gold Currency) {
	if gold.IsNegative() {
		gold = ZeroGold()
	}
	old := p.gold
	p.gold = gold
	if p.onGoldChanged != nil {
		p.onGoldChanged(old, gold)
	}
}

// AddGold credits the balance.
func (p *Portfolio) AddGold(amount Currency) {
	p.SetGold(p.gold.Add(amount))
}

// SubtractGold debits the balance. It fails without mutation when the
// balance cannot cover the amount; success never drives the balance below
// zero.
func (p *Portfolio) SubtractGold(amount Currency) bool {
	if !p.CanAfford(amount) {
		return false
	}
	p.SetGold(p.gold.Sub(amount))
	return true
}

// CanAfford reports whether the balance covers the cost.
func (p *Portfolio) CanAfford(cost Currency) bool {
	return p.gold.Cmp(cost) >= 0
}

// OnGoldChanged registers the balance hook. Pass nil to unregister.
func (p *Portfolio) OnGoldChanged(fn func(old, new Currency)) { p.onGoldChanged = fn }

// OnInvestmentAdded registers the addition hook. Pass nil to unregister.
func (p *Portfolio) OnInvestmentAdded(fn func(*Investment)) { p.onInvestmentAdded = fn }

// OnInvestmentRemoved registers the removal hook. Pass nil to unregister.
func (p *Portfolio) OnInvestmentRemoved(fn func(*Investment)) { p.onInvestmentRemoved = fn }

// AddInvestment appends a holding. Nil investments are rejected and logged.
func (p *Portfolio) AddInvestment(inv *Investment) {
	if inv == nil {
		logger.Warn().Msg("nil investment not added")
		return
	}
	p.investments = append(p.investments, inv)
	if p.onInvestmentAdded != nil {
		p.onInvestmentAdded(inv)
	}
	logger.Debug().Str("id", inv.id).Str("name", inv.name).Msg("investment added")
}

// RemoveInvestment removes the given holding. It reports false without
// mutation when the holding is not in the portfolio.
func (p *Portfolio) RemoveInvestment(inv *Investment) bool {
	for i, held := range p.investments {
		if held == inv {
			p.removeAt(i)
			return true
		}
	}
	return false
}

// RemoveInvestmentByID removes the holding with the given id. It reports
// false without mutation when no holding matches.
func (p *Portfolio) RemoveInvestmentByID(id string) bool {
	for i, held := range p.investments {
		if held.id == id {
			p.removeAt(i)
			return true
		}
	}
	return false
}

func (p *Portfolio) removeAt(i int) {
	inv := p.investments[i]
	p.investments = append(p.investments[:i], p.investments[i+1:]...)
	if p.onInvestmentRemoved != nil {
		p.onInvestmentRemoved(inv)
	}
	logger.Debug().Str("id", inv.id).Str("name", inv.name).Msg("investment removed")
}

// Investment returns the holding with the given id, or nil.
func (p *Portfolio) Investment(id string) *Investment {
	for _, inv := range p.investments {
		if inv.id == id {
			return inv
		}
	}
	return nil
}

// Investments returns the holdings in insertion order. The slice is shared;
// callers must not mutate it.
func (p *Portfolio) Investments() []*Investment { return p.investments }

// Len returns the number of holdings.
func (p *Portfolio) Len() int { return len(p.investments) }

// InvestmentsByCategory returns the holdings of one asset category, in
// insertion order.
func (p *Portfolio) InvestmentsByCategory(category AssetCategory) []*Investment {
	var out []*Investment
	for _, inv := range p.investments {
		if inv.category == category {
			out = append(out, inv)
		}
	}
	return out
}

// InvestmentsByRisk returns the holdings of one risk tier, in insertion
// order.
func (p *Portfolio) InvestmentsByRisk(risk RiskTier) []*Investment {
	var out []*Investment
	for _, inv := range p.investments {
		if inv.risk == risk {
			out = append(out, inv)
		}
	}
	return out
}

// TotalValue is the balance plus every holding's current value, recomputed
// fresh on each call.
func (p *Portfolio) TotalValue() Currency {
	return p.gold.Add(p.InvestmentValue())
}

// InvestmentValue is the sum of the holdings' current values, without the
// gold balance.
func (p *Portfolio) InvestmentValue() Currency {
	total := ZeroGold()
	for _, inv := range p.investments {
		total = total.Add(inv.current)
	}
	return total
}

// CalculateIncome projects the gain of every holding over the given years
// and sums the non-negative ones. Losses are excluded rather than
// subtracted. Nothing is mutated.
func (p *Portfolio) CalculateIncome(years int) Currency {
	income := ZeroGold()
	for _, inv := range p.investments {
		gain := inv.CalculateReturns(years).Sub(inv.current)
		if !gain.IsNegative() {
			income = income.Add(gain)
		}
	}
	return income
}

// ApplySlumber advances every holding by the given years: each current value
// is overwritten with its projected returns, and the non-negative gains are
// credited to the balance in a single update after the full pass. It returns
// the total income earned.
func (p *Portfolio) ApplySlumber(years int) Currency {
	income := ZeroGold()
	for _, inv := range p.investments {
		returns := inv.CalculateReturns(years)
		gain := returns.Sub(inv.current)
		inv.SetCurrentValue(returns)
		if !gain.IsNegative() {
			income = income.Add(gain)
		}
	}
	p.AddGold(income)
	logger.Debug().Int("years", years).Int("investments", len(p.investments)).
		Str("income", income.FormatShort()).Msg("slumber applied")
	return income
}

// ApplyEvent broadcasts a world event to every holding in order. Results are
// not aggregated.
func (p *Portfolio) ApplyEvent(e Event) {
	for _, inv := range p.investments {
		inv.ApplyEvent(e)
	}
}

// Reset clears the holdings and restores the balance, used when the game
// prestiges. A nil startingGold restores the default.
func (p *Portfolio) Reset(startingGold *Currency) {
	logger.Debug().Msg("resetting portfolio")
	p.investments = nil
	if startingGold != nil {
		p.SetGold(*startingGold)
		return
	}
	p.SetGold(defaultStartingGold)
}

// ExposureScore sums every holding's exposure contribution, a coarse gauge
// of how much of the hoard sits in risky places.
func (p *Portfolio) ExposureScore() int {
	score := 0
	for _, inv := range p.investments {
		score += inv.ExposureContribution()
	}
	return score
}
