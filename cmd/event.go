package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/duskhall/hoard"
	"github.com/google/subcommands"
)

type eventCmd struct {
	name string
	kind string
}

func (*eventCmd) Name() string     { return "event" }
func (*eventCmd) Synopsis() string { return "broadcast a world event to every holding" }
func (*eventCmd) Usage() string {
	return `hoard event -name <name> [-kind <kind>]

  Forwards a world event to every holding in order. Kinds: economic,
  political, magical, personal.
`
}

func (c *eventCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the event.")
	f.StringVar(&c.kind, "kind", "economic", "Event kind.")
}

func (c *eventCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}
	kind, err := hoard.ParseEventKind(c.kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	p, err := LoadPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	e := hoard.NewWorldEvent(c.name, kind)
	e.Year = AppSettings().CurrentYear
	p.ApplyEvent(e)

	fmt.Printf("Event %q reached %d holdings\n", e.Label(), p.Len())
	return saveAndReport(p)
}
