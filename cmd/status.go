package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/duskhall/hoard"
	"github.com/google/subcommands"
)

type statusCmd struct {
	category string
}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "show the hoard: gold, holdings and totals" }
func (*statusCmd) Usage() string {
	return `hoard status [-category <category>]

  Prints the gold balance and every holding with its value, risk and
  category details. Use -category to narrow the table to one asset
  category (property, trade, financial, ...).
`
}

func (c *statusCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "category", "", "Only show holdings of this asset category.")
}

func (c *statusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := LoadPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	holdings := p.Investments()
	if c.category != "" {
		cat, err := hoard.ParseAssetCategory(c.category)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		holdings = p.InvestmentsByCategory(cat)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Hoard\n\n")
	fmt.Fprintf(&b, "* Gold: **%s**\n", p.Gold().FormatShort())
	fmt.Fprintf(&b, "* Holdings value: **%s**\n", p.InvestmentValue().FormatShort())
	fmt.Fprintf(&b, "* Total: **%s**\n", p.TotalValue().FormatShort())
	fmt.Fprintf(&b, "* Exposure score: %d\n\n", p.ExposureScore())

	if len(holdings) == 0 {
		fmt.Fprintf(&b, "No holdings.\n")
	} else {
		fmt.Fprintf(&b, "| Name | Category | Risk | Value | Gain | Liquid |\n")
		fmt.Fprintf(&b, "|---|---|---|---:|---:|---|\n")
		for _, inv := range holdings {
			liquid := "yes"
			if !inv.CanSell() {
				liquid = "no"
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %+.1f%% | %s |\n",
				inv.Name(), inv.Category(), inv.Risk(),
				inv.CurrentValue().FormatShort(), inv.ReturnPercentage(), liquid)
		}
	}

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
