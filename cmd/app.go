// Package cmd implements the CLI application to manage a hoard.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/duskhall/hoard"
	"github.com/google/subcommands"
)

// Commands is the full command set, in registration order. A main package
// registers each of them on a commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&statusCmd{},
	&incomeCmd{},
	&slumberCmd{},
	&resetCmd{},
	&buyPropertyCmd{},
	&buyTradeCmd{},
	&buyFinancialCmd{},
	&sellCmd{},
	&improveCmd{},
	&eventCmd{},
	&topicCmd{},
}

// LoadPortfolio reads the savegame named by the settings. A missing file
// yields a fresh portfolio, so the first command works out of the box.
func LoadPortfolio() (*hoard.Portfolio, error) {
	s := AppSettings()
	f, err := os.Open(s.SaveFile)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: no savegame at %q, starting a fresh hoard\n", s.SaveFile)
		return hoard.NewPortfolioWithGold(hoard.G(s.StartingGold)), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open savegame %q: %w", s.SaveFile, err)
	}
	defer f.Close()

	p, err := hoard.DecodeHoard(f)
	if err != nil {
		return nil, fmt.Errorf("could not load savegame %q: %w", s.SaveFile, err)
	}
	return p, nil
}

// SavePortfolio writes the whole savegame back. The file is rewritten
// atomically through a temporary file so a failed write never corrupts the
// previous save.
func SavePortfolio(p *hoard.Portfolio) error {
	s := AppSettings()
	tmp := s.SaveFile + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("could not create savegame %q: %w", tmp, err)
	}
	if err := hoard.EncodeHoard(f, p); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("could not write savegame: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("could not close savegame: %w", err)
	}
	return os.Rename(tmp, s.SaveFile)
}

// saveAndReport persists the portfolio and converts the outcome to an exit
// status, the shared tail of every mutating command.
func saveAndReport(p *hoard.Portfolio) subcommands.ExitStatus {
	if err := SavePortfolio(p); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
