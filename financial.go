package hoard

import "fmt"

// FinancialSubtype is the kind of paper a financial instrument represents.
type FinancialSubtype int

const (
	FinancialCrownBond FinancialSubtype = iota
	FinancialNobleDebt
	FinancialMerchantNote
	FinancialInsurance
	FinancialUsury
)

func (s FinancialSubtype) String() string {
	switch s {
	case FinancialCrownBond:
		return "crown-bond"
	case FinancialNobleDebt:
		return "noble-debt"
	case FinancialMerchantNote:
		return "merchant-note"
	case FinancialInsurance:
		return "insurance"
	case FinancialUsury:
		return "usury"
	}
	return fmt.Sprintf("financial(%d)", int(s))
}

// ParseFinancialSubtype returns the subtype named by s.
func ParseFinancialSubtype(s string) (FinancialSubtype, error) {
	for _, t := range []FinancialSubtype{FinancialCrownBond, FinancialNobleDebt, FinancialMerchantNote, FinancialInsurance, FinancialUsury} {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown financial subtype %q", s)
}

// DebtStatus is the issuer's payment state. Default is terminal in practice;
// nothing in the engine transitions out of it.
type DebtStatus int

const (
	DebtPerforming DebtStatus = iota
	DebtDelinquent
	DebtDefault
)

func (s DebtStatus) String() string {
	switch s {
	case DebtPerforming:
		return "performing"
	case DebtDelinquent:
		return "delinquent"
	case DebtDefault:
		return "default"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// ParseDebtStatus returns the debt status named by s.
func ParseDebtStatus(s string) (DebtStatus, error) {
	for _, t := range []DebtStatus{DebtPerforming, DebtDelinquent, DebtDefault} {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown debt status %q", s)
}

// FinancialInvestment is a paper instrument: bonds, debts, notes. The only
// simple-interest category, and the only one with a terminal state.
type FinancialInvestment struct {
	Investment

	subtype      FinancialSubtype
	debtStatus   DebtStatus
	interestRate float64
	faceValue    Currency
	maturityYear int
	issuer       string

	onDebtStatusChanged func(old, new DebtStatus)
}

// NewFinancial creates a financial instrument. The face value becomes the
// purchase price and current value. Interest is paid at the contract rate
// only; a zero rate earns nothing even though BaseReturnRate still reports
// the subtype default.
func NewFinancial(id, name string, subtype FinancialSubtype, faceValue Currency, interestRate float64) *FinancialInvestment {
	f := &FinancialInvestment{
		subtype:      subtype,
		debtStatus:   DebtPerforming,
		interestRate: interestRate,
		faceValue:    faceValue,
	}
	if interestRate < 0 || interestRate > 1 {
		logger.Warn().Str("name", name).Float64("rate", interestRate).Msg("interest rate out of range, using subtype default")
		f.interestRate = 0
	}
	f.Investment = Investment{
		id:           orNewID(id),
		name:         name,
		category:     CategoryFinancial,
		risk:         RiskMedium,
		purchase:     faceValue,
		current:      faceValue,
		purchaseYear: 0,
	}
	if name == "" {
		f.Investment.name = "Unknown Investment"
	}
	f.Investment.behavior = f
	return f
}

func (f *FinancialInvestment) Subtype() FinancialSubtype { return f.subtype }
func (f *FinancialInvestment) DebtStatus() DebtStatus    { return f.debtStatus }
func (f *FinancialInvestment) InterestRate() float64     { return f.interestRate }
func (f *FinancialInvestment) FaceValue() Currency       { return f.faceValue }
func (f *FinancialInvestment) MaturityYear() int         { return f.maturityYear }
func (f *FinancialInvestment) Issuer() string            { return f.issuer }

// SetDebtStatus transitions the issuer's payment state. Entering Default
// immediately writes the recovery value into the current value; the status
// hook fires after the revaluation. Setting the same status again is a
// no-op, so the Default transition happens at most once.
func (f *FinancialInvestment) SetDebtStatus(status DebtStatus) {
	if f.debtStatus == status {
		return
	}
	old := f.debtStatus
	f.debtStatus = status

	if status == DebtDefault {
		f.SetCurrentValue(f.faceValue.MulFloat(f.RecoveryRate()))
	}

	if f.onDebtStatusChanged != nil {
		f.onDebtStatusChanged(old, status)
	}
	logger.Debug().Str("id", f.id).Stringer("from", old).Stringer("to", status).Msg("debt status changed")
}

// OnDebtStatusChanged registers the status transition hook. Pass nil to
// unregister.
func (f *FinancialInvestment) OnDebtStatusChanged(fn func(old, new DebtStatus)) {
	f.onDebtStatusChanged = fn
}

// SetInterestRate updates the contract rate. Rates outside [0, 1] are
// rejected and logged.
func (f *FinancialInvestment) SetInterestRate(rate float64) {
	if rate < 0 || rate > 1 {
		logger.Warn().Str("id", f.id).Float64("rate", rate).Msg("interest rate out of range, ignored")
		return
	}
	if f.interestRate == rate {
		return
	}
	f.interestRate = rate
}

// SetFaceValue replaces the instrument's principal.
func (f *FinancialInvestment) SetFaceValue(value Currency) { f.faceValue = value }

// SetMaturityYear sets the redemption year. Zero means no maturity.
func (f *FinancialInvestment) SetMaturityYear(year int) { f.maturityYear = year }

// SetIssuer records who owes the debt.
func (f *FinancialInvestment) SetIssuer(issuer string) { f.issuer = issuer }

// BaseReturnRate is the contract rate if one is set, else the subtype
// default.
func (f *FinancialInvestment) BaseReturnRate() float64 {
	if f.interestRate > 0 {
		return f.interestRate
	}
	switch f.subtype {
	case FinancialCrownBond:
		return 0.04
	case FinancialNobleDebt:
		return 0.06
	case FinancialMerchantNote:
		return 0.07
	case FinancialInsurance:
		return 0.05
	case FinancialUsury:
		return 0.12
	}
	return 0.05
}

// RiskModifier is the subtype's base risk scaled up by payment trouble.
func (f *FinancialInvestment) RiskModifier() float64 {
	risk := 1.0
	switch f.subtype {
	case FinancialCrownBond:
		risk = 0.8
	case FinancialMerchantNote:
		risk = 1.2
	case FinancialUsury:
		risk = 1.5
	}
	switch f.debtStatus {
	case DebtDelinquent:
		risk *= 1.5
	case DebtDefault:
		risk *= 2.0
	}
	return risk
}

// CanSell is always true. A defaulted instrument sells at recovery value.
func (f *FinancialInvestment) CanSell() bool { return true }

// ApplyEvent logs the event. Issuer solvency is the world simulation's to
// decide; it acts through SetDebtStatus.
func (f *FinancialInvestment) ApplyEvent(e Event) {
	logger.Debug().Str("id", f.id).Str("event", e.Label()).
		Stringer("status", f.debtStatus).Str("issuer", f.issuer).
		Msg("financial event applied")
}

// CalculateReturns pays simple interest on the face value: one interest
// payment per year, halved while Delinquent. A defaulted instrument is worth
// its recovery value no matter how many years pass.
func (f *FinancialInvestment) CalculateReturns(years int) Currency {
	if f.debtStatus == DebtDefault {
		result := f.faceValue.MulFloat(f.RecoveryRate())
		logger.Debug().Str("id", f.id).Float64("recovery", f.RecoveryRate()).Msg("defaulted, returning recovery value")
		return result
	}

	annual := f.InterestPayment()
	if f.debtStatus == DebtDelinquent {
		annual = annual.MulFloat(0.5)
	}
	result := f.faceValue
	for i := 0; i < years; i++ {
		result = result.Add(annual)
	}
	logger.Debug().Str("id", f.id).Int("years", years).
		Str("value", result.FormatShort()).Stringer("status", f.debtStatus).
		Msg("financial returns calculated")
	return result
}

// InterestPayment is one year's interest at the contract rate.
func (f *FinancialInvestment) InterestPayment() Currency {
	return f.faceValue.MulFloat(f.interestRate)
}

// IsDefaulted reports whether the issuer has defaulted.
func (f *FinancialInvestment) IsDefaulted() bool { return f.debtStatus == DebtDefault }

// IsMatured reports whether the instrument has reached its maturity year.
// Instruments without a maturity never mature.
func (f *FinancialInvestment) IsMatured(currentYear int) bool {
	if f.maturityYear == 0 {
		return false
	}
	return currentYear >= f.maturityYear
}

// RecoveryRate is the fraction of face value salvaged if the issuer
// defaults.
func (f *FinancialInvestment) RecoveryRate() float64 {
	switch f.subtype {
	case FinancialCrownBond:
		return 0.50
	case FinancialNobleDebt:
		return 0.30
	case FinancialMerchantNote:
		return 0.20
	case FinancialInsurance:
		return 0.00
	case FinancialUsury:
		return 0.10
	}
	return 0.20
}
