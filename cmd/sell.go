package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type sellCmd struct {
	id string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell a holding at its current value" }
func (*sellCmd) Usage() string {
	return `hoard sell -id <investment-id>

  Sells a holding: its current value is credited to the gold balance and
  the holding is removed. Fails if the holding is not liquid.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the holding to sell.")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}

	p, err := LoadPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	inv := p.Investment(c.id)
	if inv == nil {
		fmt.Fprintf(os.Stderr, "Error: no holding with id %q\n", c.id)
		return subcommands.ExitFailure
	}
	if !inv.CanSell() {
		fmt.Fprintf(os.Stderr, "Error: %q cannot be sold right now\n", inv.Name())
		return subcommands.ExitFailure
	}

	proceeds := inv.CurrentValue()
	if !p.RemoveInvestment(inv) {
		fmt.Fprintf(os.Stderr, "Error: could not remove holding %q\n", c.id)
		return subcommands.ExitFailure
	}
	p.AddGold(proceeds)

	fmt.Printf("Sold %q for %s, gold is now %s\n",
		inv.Name(), proceeds.FormatShort(), p.Gold().FormatShort())
	return saveAndReport(p)
}
