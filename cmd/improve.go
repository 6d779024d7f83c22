package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/duskhall/hoard"
	"github.com/google/subcommands"
)

type improveCmd struct {
	id   string
	cost float64
}

func (*improveCmd) Name() string     { return "improve" }
func (*improveCmd) Synopsis() string { return "invest gold into improving a property" }
func (*improveCmd) Usage() string {
	return `hoard improve -id <investment-id> -cost <gold>

  Pays the cost from the gold balance and adds one improvement to a
  property: the cost joins its value and the yearly rate rises by 0.5%.
  Properties carry at most five improvements.
`
}

func (c *improveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the property to improve.")
	f.Float64Var(&c.cost, "cost", 0, "Gold spent on the improvement.")
}

func (c *improveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" || c.cost <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -id and a positive -cost are required.")
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
	prop, ok := inv.Behavior().(*hoard.PropertyInvestment)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: %q is not a property\n", inv.Name())
		return subcommands.ExitFailure
	}

	cost := hoard.G(c.cost)
	if !p.CanAfford(cost) {
		fmt.Fprintf(os.Stderr, "Error: cannot afford %s, the hoard holds %s\n",
			cost.FormatShort(), p.Gold().FormatShort())
		return subcommands.ExitFailure
	}
	if !prop.AddImprovement(cost) {
		fmt.Fprintf(os.Stderr, "Error: %q already carries its maximum improvements\n", inv.Name())
		return subcommands.ExitFailure
	}
	p.SubtractGold(cost)

	fmt.Printf("Improved %q (%d improvements), value is now %s\n",
		inv.Name(), prop.Improvements(), inv.CurrentValue().FormatShort())
	return saveAndReport(p)
}
