package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type incomeCmd struct {
	years int
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "project income over a number of years" }
func (*incomeCmd) Usage() string {
	return `hoard income [-years <n>]

  Projects the income the hoard would earn over the given horizon without
  touching anything. Holdings projected to lose value contribute nothing.
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.years, "years", 1, "Projection horizon in years.")
}

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.years < 0 {
		fmt.Fprintln(os.Stderr, "Error: -years must not be negative.")
		return subcommands.ExitUsageError
	}

	p, err := LoadPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	income := p.CalculateIncome(c.years)
	fmt.Printf("Projected income over %d years: %s\n", c.years, income.FormatShort())
	return subcommands.ExitSuccess
}
