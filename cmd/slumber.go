package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type slumberCmd struct {
	years int
}

func (*slumberCmd) Name() string     { return "slumber" }
func (*slumberCmd) Synopsis() string { return "sleep for years and bank the returns" }
func (*slumberCmd) Usage() string {
	return `hoard slumber -years <n>

  Advances every holding by the given number of years, overwrites each
  value with its projected returns, and adds the realized income to the
  gold balance in one update.
`
}

func (c *slumberCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.years, "years", 1, "Number of years to slumber.")
}

func (c *slumberCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.years <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -years must be positive.")
		return subcommands.ExitUsageError
	}

	p, err := LoadPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	income := p.ApplySlumber(c.years)
	fmt.Printf("Slumbered %d years: earned %s, gold is now %s\n",
		c.years, income.FormatShort(), p.Gold().FormatShort())

	return saveAndReport(p)
}
