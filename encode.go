package hoard

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// Savegame line discriminators.
const (
	kindPortfolio = "portfolio"
	kindProperty  = "property"
	kindTrade     = "trade"
	kindFinancial = "financial"
	kindGeneric   = "generic"
)

// currencyRec reads a persisted currency from its two fields.
type currencyRec struct {
	Mantissa float64
	Exponent int32
}

func (r currencyRec) Gold() Currency { return GoldFromParts(r.Mantissa, r.Exponent) }

// commonRec holds the entity fields shared by every investment line.
type commonRec struct {
	Kind         string  `json:"kind"`
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Category     string  `json:"category,omitempty"`
	Risk         string  `json:"risk"`
	PurchaseM    float64 `json:"purchase-price-mantissa"`
	PurchaseE    int32   `json:"purchase-price-exponent"`
	CurrentM     float64 `json:"current-value-mantissa"`
	CurrentE     int32   `json:"current-value-exponent"`
	PurchaseYear int     `json:"purchase-year,omitempty"`
	Region       string  `json:"region,omitempty"`
}

func (r commonRec) PurchasePrice() Currency { return GoldFromParts(r.PurchaseM, r.PurchaseE) }
func (r commonRec) CurrentValue() Currency  { return GoldFromParts(r.CurrentM, r.CurrentE) }

// restore copies the common record into an investment's entity fields. It
// writes the fields directly so loading never trips change hooks or the
// default-transition side effect.
func (r commonRec) restore(inv *Investment) error {
	risk, err := ParseRiskTier(r.Risk)
	if err != nil {
		return err
	}
	inv.id = r.ID
	inv.name = r.Name
	inv.description = r.Description
	inv.risk = risk
	inv.purchase = r.PurchasePrice()
	inv.current = r.CurrentValue()
	inv.purchaseYear = r.PurchaseYear
	inv.region = r.Region
	return nil
}

// writeCommon appends the shared entity fields in their canonical order.
func writeCommon(w *jsonObjectWriter, inv *Investment, kind string) {
	w.Append("kind", kind).
		Append("id", inv.id).
		Append("name", inv.name).
		Optional("description", inv.description).
		Append("risk", inv.risk.String()).
		Gold("purchase-price", inv.purchase).
		Gold("current-value", inv.current).
		Optional("purchase-year", inv.purchaseYear).
		Optional("region", inv.region)
}

// MarshalJSON writes a property line with ordered keys.
func (p *PropertyInvestment) MarshalJSON() ([]byte, error) {
	w := &jsonObjectWriter{}
	writeCommon(w, &p.Investment, kindProperty)
	w.Append("subtype", p.subtype.String()).
		Append("stability-bonus", p.stability).
		Append("improvements", p.improvements)
	return w.MarshalJSON()
}

// MarshalJSON writes a trade line with ordered keys.
func (t *TradeInvestment) MarshalJSON() ([]byte, error) {
	w := &jsonObjectWriter{}
	writeCommon(w, &t.Investment, kindTrade)
	w.Append("subtype", t.subtype.String()).
		Append("route-status", t.status.String()).
		Append("market-modifier", t.marketModifier).
		Optional("source-region", t.sourceRegion).
		Optional("destination-region", t.destinationRegion).
		Optional("commodity", t.commodity)
	return w.MarshalJSON()
}

// MarshalJSON writes a financial line with ordered keys.
func (f *FinancialInvestment) MarshalJSON() ([]byte, error) {
	w := &jsonObjectWriter{}
	writeCommon(w, &f.Investment, kindFinancial)
	w.Append("subtype", f.subtype.String()).
		Append("debt-status", f.debtStatus.String()).
		Append("interest-rate", f.interestRate).
		Gold("face-value", f.faceValue).
		Optional("maturity-year", f.maturityYear).
		Optional("issuer", f.issuer)
	return w.MarshalJSON()
}

// encodeInvestment marshals one holding to a JSON line. The behavior decides
// which record shape is written.
func encodeInvestment(w io.Writer, inv *Investment) error {
	var data []byte
	var err error
	switch b := inv.behavior.(type) {
	case *PropertyInvestment:
		data, err = b.MarshalJSON()
	case *TradeInvestment:
		data, err = b.MarshalJSON()
	case *FinancialInvestment:
		data, err = b.MarshalJSON()
	default:
		jw := &jsonObjectWriter{}
		writeCommon(jw, inv, kindGeneric)
		jw.Append("category", inv.category.String())
		data, err = jw.MarshalJSON()
	}
	if err != nil {
		return fmt.Errorf("failed to marshal investment %s: %w", inv.id, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write investment %s: %w", inv.id, err)
	}
	return nil
}

// EncodeHoard persists a portfolio to an io.Writer in JSONL format: one
// portfolio line carrying the balance, then one line per investment in
// insertion order.
func EncodeHoard(w io.Writer, p *Portfolio) error {
	jw := &jsonObjectWriter{}
	jw.Append("kind", kindPortfolio).Gold("gold", p.gold)
	data, err := jw.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal portfolio: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write portfolio: %w", err)
	}

	for _, inv := range p.investments {
		if err := encodeInvestment(w, inv); err != nil {
			return err
		}
	}
	return nil
}

// DecodeHoard reads a JSONL savegame from an io.Reader and rebuilds the
// portfolio. Decoding is all-or-nothing: any malformed or unknown line fails
// the whole load.
func DecodeHoard(r io.Reader) (*Portfolio, error) {
	p := NewPortfolio()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Kind string `json:"kind"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify kind in line %q: %w", string(lineBytes), err)
		}

		switch identifier.Kind {
		case kindPortfolio:
			var temp struct {
				GoldM float64 `json:"gold-mantissa"`
				GoldE int32   `json:"gold-exponent"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			p.gold = currencyRec{temp.GoldM, temp.GoldE}.Gold()

		case kindProperty:
			var temp struct {
				commonRec
				Subtype      string  `json:"subtype"`
				Stability    float64 `json:"stability-bonus"`
				Improvements int     `json:"improvements"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			subtype, err := ParsePropertySubtype(temp.Subtype)
			if err != nil {
				return nil, err
			}
			prop := NewProperty(temp.ID, temp.Name, subtype, ZeroGold())
			if err := temp.restore(&prop.Investment); err != nil {
				return nil, err
			}
			prop.stability = temp.Stability
			prop.improvements = temp.Improvements
			p.investments = append(p.investments, &prop.Investment)

		case kindTrade:
			var temp struct {
				commonRec
				Subtype           string  `json:"subtype"`
				RouteStatus       string  `json:"route-status"`
				MarketModifier    float64 `json:"market-modifier"`
				SourceRegion      string  `json:"source-region"`
				DestinationRegion string  `json:"destination-region"`
				Commodity         string  `json:"commodity"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			subtype, err := ParseTradeSubtype(temp.Subtype)
			if err != nil {
				return nil, err
			}
			status, err := ParseRouteStatus(temp.RouteStatus)
			if err != nil {
				return nil, err
			}
			trade := NewTrade(temp.ID, temp.Name, subtype, ZeroGold())
			if err := temp.restore(&trade.Investment); err != nil {
				return nil, err
			}
			trade.status = status
			trade.marketModifier = temp.MarketModifier
			trade.sourceRegion = temp.SourceRegion
			trade.destinationRegion = temp.DestinationRegion
			trade.commodity = temp.Commodity
			p.investments = append(p.investments, &trade.Investment)

		case kindFinancial:
			var temp struct {
				commonRec
				Subtype      string  `json:"subtype"`
				DebtStatus   string  `json:"debt-status"`
				InterestRate float64 `json:"interest-rate"`
				FaceM        float64 `json:"face-value-mantissa"`
				FaceE        int32   `json:"face-value-exponent"`
				MaturityYear int     `json:"maturity-year"`
				Issuer       string  `json:"issuer"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			subtype, err := ParseFinancialSubtype(temp.Subtype)
			if err != nil {
				return nil, err
			}
			status, err := ParseDebtStatus(temp.DebtStatus)
			if err != nil {
				return nil, err
			}
			fin := NewFinancial(temp.ID, temp.Name, subtype, ZeroGold(), temp.InterestRate)
			if err := temp.restore(&fin.Investment); err != nil {
				return nil, err
			}
			fin.debtStatus = status
			fin.faceValue = currencyRec{temp.FaceM, temp.FaceE}.Gold()
			fin.maturityYear = temp.MaturityYear
			fin.issuer = temp.Issuer
			p.investments = append(p.investments, &fin.Investment)

		case kindGeneric:
			var temp commonRec
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			category, err := ParseAssetCategory(temp.Category)
			if err != nil {
				return nil, err
			}
			inv := NewInvestment(temp.ID, temp.Name, RiskLow, ZeroGold(), 0)
			if err := temp.restore(inv); err != nil {
				return nil, err
			}
			inv.category = category
			p.investments = append(p.investments, inv)

		default:
			return nil, fmt.Errorf("unknown savegame kind: %q", identifier.Kind)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	return p, nil
}
