package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/duskhall/hoard"
	"github.com/google/subcommands"
)

type resetCmd struct {
	gold    float64
	confirm bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "clear all holdings and restart with fresh gold" }
func (*resetCmd) Usage() string {
	return `hoard reset -yes [-gold <amount>]

  Clears every holding and resets the gold balance, the prestige action.
  Requires -yes because there is no way back.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.gold, "gold", 0, "Starting gold after the reset. Defaults to the standard stake.")
	f.BoolVar(&c.confirm, "yes", false, "Confirm the reset.")
}

func (c *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.confirm {
		fmt.Fprintln(os.Stderr, "Error: reset discards every holding; pass -yes to confirm.")
		return subcommands.ExitUsageError
	}

	p, err := LoadPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.gold > 0 {
		stake := hoard.G(c.gold)
		p.Reset(&stake)
	} else {
		p.Reset(nil)
	}
	fmt.Printf("Hoard reset: gold is %s\n", p.Gold().FormatShort())
	return saveAndReport(p)
}
