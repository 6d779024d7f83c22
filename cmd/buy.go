package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/duskhall/hoard"
	"github.com/google/subcommands"
)

// buyCommon carries the flags every purchase shares.
type buyCommon struct {
	name        string
	description string
	value       float64
	region      string
}

func (c *buyCommon) setFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Display name of the holding.")
	f.StringVar(&c.description, "description", "", "Optional free-form description.")
	f.Float64Var(&c.value, "value", 0, "Purchase price in gold.")
	f.StringVar(&c.region, "region", "", "Region the holding sits in.")
}

func (c *buyCommon) validate() error {
	if c.name == "" {
		return fmt.Errorf("-name is required")
	}
	if c.value <= 0 {
		return fmt.Errorf("-value must be positive")
	}
	return nil
}

// completePurchase debits the price, records the holding and saves. The
// purchase is all-or-nothing: an unaffordable price changes nothing.
func completePurchase(p *hoard.Portfolio, inv *hoard.Investment, price hoard.Currency) subcommands.ExitStatus {
	if !p.SubtractGold(price) {
		fmt.Fprintf(os.Stderr, "Error: cannot afford %s, the hoard holds %s\n",
			price.FormatShort(), p.Gold().FormatShort())
		return subcommands.ExitFailure
	}
	p.AddInvestment(inv)
	fmt.Printf("Bought %q for %s, gold is now %s\n",
		inv.Name(), price.FormatShort(), p.Gold().FormatShort())
	return saveAndReport(p)
}

type buyPropertyCmd struct {
	buyCommon
	subtype   string
	stability float64
}

func (*buyPropertyCmd) Name() string     { return "buy-property" }
func (*buyPropertyCmd) Synopsis() string { return "buy land or buildings" }
func (*buyPropertyCmd) Usage() string {
	return `hoard buy-property -name <name> -value <gold> [-subtype <subtype>] [-stability <bonus>] [-region <id>]

  Buys a property holding. Subtypes: agricultural, urban, mining, timber,
  coastal.
`
}

func (c *buyPropertyCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.StringVar(&c.subtype, "subtype", "agricultural", "Property subtype.")
	f.Float64Var(&c.stability, "stability", 0, "Stability bonus in [0.5, 3.0]. Zero keeps the default.")
}

func (c *buyPropertyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	subtype, err := hoard.ParsePropertySubtype(c.subtype)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	p, err := LoadPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	price := hoard.G(c.value)
	prop := hoard.NewProperty("", c.name, subtype, price)
	prop.SetDescription(c.description)
	prop.SetRegion(c.region)
	prop.SetPurchaseYear(AppSettings().CurrentYear)
	if c.stability != 0 {
		prop.SetStabilityBonus(c.stability)
	}

	return completePurchase(p, &prop.Investment, price)
}

type buyTradeCmd struct {
	buyCommon
	subtype     string
	source      string
	destination string
	commodity   string
}

func (*buyTradeCmd) Name() string     { return "buy-trade" }
func (*buyTradeCmd) Synopsis() string { return "buy a trade venture" }
func (*buyTradeCmd) Usage() string {
	return `hoard buy-trade -name <name> -value <gold> [-subtype <subtype>] [-source <id>] [-destination <id>] [-commodity <label>]

  Buys a trade venture with an open route and a neutral market. Subtypes:
  route, commodity, guild, shipping, caravan.
`
}

func (c *buyTradeCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.StringVar(&c.subtype, "subtype", "route", "Trade subtype.")
	f.StringVar(&c.source, "source", "", "Source region id.")
	f.StringVar(&c.destination, "destination", "", "Destination region id.")
	f.StringVar(&c.commodity, "commodity", "", "Commodity label.")
}

func (c *buyTradeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	subtype, err := hoard.ParseTradeSubtype(c.subtype)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	p, err := LoadPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	price := hoard.G(c.value)
	trade := hoard.NewTrade("", c.name, subtype, price)
	trade.SetDescription(c.description)
	trade.SetRegion(c.region)
	trade.SetPurchaseYear(AppSettings().CurrentYear)
	trade.SetSourceRegion(c.source)
	trade.SetDestinationRegion(c.destination)
	trade.SetCommodity(c.commodity)

	return completePurchase(p, &trade.Investment, price)
}

type buyFinancialCmd struct {
	buyCommon
	subtype  string
	rate     float64
	maturity int
	issuer   string
}

func (*buyFinancialCmd) Name() string     { return "buy-financial" }
func (*buyFinancialCmd) Synopsis() string { return "buy a bond, debt or note" }
func (*buyFinancialCmd) Usage() string {
	return `hoard buy-financial -name <name> -value <gold> [-subtype <subtype>] [-rate <rate>] [-maturity <year>] [-issuer <id>]

  Buys a financial instrument at face value. Subtypes: crown-bond,
  noble-debt, merchant-note, insurance, usury. A zero rate uses the
  subtype default.
`
}

func (c *buyFinancialCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.StringVar(&c.subtype, "subtype", "crown-bond", "Financial subtype.")
	f.Float64Var(&c.rate, "rate", 0, "Annual interest rate in [0, 1]. Zero uses the subtype default.")
	f.IntVar(&c.maturity, "maturity", 0, "Maturity year. Zero means none.")
	f.StringVar(&c.issuer, "issuer", "", "Issuer id.")
}

func (c *buyFinancialCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	subtype, err := hoard.ParseFinancialSubtype(c.subtype)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	p, err := LoadPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	price := hoard.G(c.value)
	fin := hoard.NewFinancial("", c.name, subtype, price, c.rate)
	if c.rate == 0 {
		// Materialize the subtype default into the contract rate, otherwise
		// the instrument would pay no interest at all.
		fin.SetInterestRate(fin.BaseReturnRate())
	}
	fin.SetDescription(c.description)
	fin.SetRegion(c.region)
	fin.SetPurchaseYear(AppSettings().CurrentYear)
	fin.SetMaturityYear(c.maturity)
	fin.SetIssuer(c.issuer)

	return completePurchase(p, &fin.Investment, price)
}
