package hoard

import (
	"math"
	"testing"
)

func TestFinancialSimpleInterest(t *testing.T) {
	// 1000 + 1000 x 5% x 10 = 1500, simple interest.
	f := NewFinancial("", "War Bond", FinancialCrownBond, G(1000), 0.05)
	if got := f.CalculateReturns(10); !got.Equal(G(1500)) {
		t.Errorf("returns over 10 years: got %s, want 1500", got)
	}
	if got := f.CalculateReturns(0); !got.Equal(G(1000)) {
		t.Errorf("returns over 0 years: got %s, want 1000", got)
	}
}

func TestFinancialSubtypeDefaults(t *testing.T) {
	tests := []struct {
		name    string
		subtype FinancialSubtype
		rate    float64
	}{
		{"crown-bond", FinancialCrownBond, 0.04},
		{"noble-debt", FinancialNobleDebt, 0.06},
		{"merchant-note", FinancialMerchantNote, 0.07},
		{"insurance", FinancialInsurance, 0.05},
		{"usury", FinancialUsury, 0.12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFinancial("", "Paper", tt.subtype, G(1000), 0)
			if got := f.BaseReturnRate(); got != tt.rate {
				t.Errorf("default rate: got %g, want %g", got, tt.rate)
			}
		})
	}
}

func TestFinancialInstanceRateWins(t *testing.T) {
	f := NewFinancial("", "Paper", FinancialUsury, G(1000), 0.02)
	if got := f.BaseReturnRate(); got != 0.02 {
		t.Errorf("instance rate ignored: got %g", got)
	}
}

func TestFinancialDelinquentHalvesInterest(t *testing.T) {
	f := NewFinancial("", "Late Note", FinancialMerchantNote, G(1000), 0.10)
	f.SetDebtStatus(DebtDelinquent)
	// 1000 + 1000 x 10% x 0.5 x 4 = 1200.
	if got := f.CalculateReturns(4); !got.Equal(G(1200)) {
		t.Errorf("delinquent returns: got %s, want 1200", got)
	}
}

func TestFinancialDefaultTransition(t *testing.T) {
	f := NewFinancial("", "Crown Paper", FinancialCrownBond, G(1000), 0.05)

	var transitions []DebtStatus
	f.OnDebtStatusChanged(func(old, new DebtStatus) { transitions = append(transitions, new) })

	f.SetDebtStatus(DebtDefault)

	// 50% recovery on crown bonds, written into the value at transition time.
	if !f.CurrentValue().Equal(G(500)) {
		t.Errorf("current value after default: got %s, want 500", f.CurrentValue())
	}
	for _, years := range []int{0, 1, 10, 100} {
		if got := f.CalculateReturns(years); !got.Equal(G(500)) {
			t.Errorf("years=%d: got %s, want 500", years, got)
		}
	}
	if !f.CanSell() {
		t.Error("defaulted paper must still sell at recovery value")
	}

	// Repeating the transition is idempotent.
	f.SetDebtStatus(DebtDefault)
	if len(transitions) != 1 {
		t.Errorf("status hook fired %d times, want 1", len(transitions))
	}
	if !f.IsDefaulted() {
		t.Error("IsDefaulted is false after default")
	}
}

func TestFinancialRecoveryRates(t *testing.T) {
	tests := []struct {
		name    string
		subtype FinancialSubtype
		want    float64
	}{
		{"crown-bond", FinancialCrownBond, 0.50},
		{"noble-debt", FinancialNobleDebt, 0.30},
		{"merchant-note", FinancialMerchantNote, 0.20},
		{"insurance", FinancialInsurance, 0.00},
		{"usury", FinancialUsury, 0.10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFinancial("", "Paper", tt.subtype, G(1000), 0)
			if got := f.RecoveryRate(); got != tt.want {
				t.Errorf("RecoveryRate: got %g, want %g", got, tt.want)
			}
		})
	}
}

func TestFinancialRiskModifier(t *testing.T) {
	tests := []struct {
		name    string
		subtype FinancialSubtype
		status  DebtStatus
		want    float64
	}{
		{"crown performing", FinancialCrownBond, DebtPerforming, 0.8},
		{"noble performing", FinancialNobleDebt, DebtPerforming, 1.0},
		{"merchant performing", FinancialMerchantNote, DebtPerforming, 1.2},
		{"insurance performing", FinancialInsurance, DebtPerforming, 1.0},
		{"usury performing", FinancialUsury, DebtPerforming, 1.5},
		{"crown delinquent", FinancialCrownBond, DebtDelinquent, 1.2},
		{"usury defaulted", FinancialUsury, DebtDefault, 3.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFinancial("", "Paper", tt.subtype, G(1000), 0)
			f.SetDebtStatus(tt.status)
			if got := f.RiskModifier(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("RiskModifier: got %g, want %g", got, tt.want)
			}
		})
	}
}

func TestFinancialMaturity(t *testing.T) {
	f := NewFinancial("", "Paper", FinancialNobleDebt, G(1000), 0.06)
	if f.IsMatured(9999) {
		t.Error("paper without maturity year matured")
	}
	f.SetMaturityYear(1250)
	if f.IsMatured(1249) {
		t.Error("matured before maturity year")
	}
	if !f.IsMatured(1250) {
		t.Error("not matured at maturity year")
	}
}

func TestFinancialInterestPayment(t *testing.T) {
	f := NewFinancial("", "Paper", FinancialCrownBond, G(2000), 0.05)
	if got := f.InterestPayment(); !got.Equal(G(100)) {
		t.Errorf("InterestPayment: got %s, want 100", got)
	}
}

func TestFinancialInterestRateRange(t *testing.T) {
	f := NewFinancial("", "Paper", FinancialCrownBond, G(1000), 0.05)
	f.SetInterestRate(1.5)
	if f.InterestRate() != 0.05 {
		t.Errorf("out-of-range rate accepted: %g", f.InterestRate())
	}
	f.SetInterestRate(0.08)
	if f.InterestRate() != 0.08 {
		t.Errorf("in-range rate rejected: %g", f.InterestRate())
	}
}
