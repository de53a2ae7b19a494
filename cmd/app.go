// Package cmd implements the cgs command line application.
package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/capgains"
	"github.com/etnz/capgains/degiro"
	"github.com/rs/zerolog"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	ledgerFile = flag.String("l", "", "account export to read (default $CGS_LEDGER or Account.csv)")
	taxYear    = flag.Int("y", 0, "tax year (default $CGS_YEAR or the previous year)")
	subPeriod  = flag.String("p", "", "part of the year: initial, later or all (default $CGS_PERIOD or all)")
)

// config is loaded once by Setup.
var config Config

// stdout is where reports are printed.
var stdout io.Writer = os.Stdout

// Setup loads the configuration and returns ctx carrying the logger.
func Setup(ctx context.Context) (context.Context, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return ctx, err
	}
	config = cfg
	logger := NewLogger(cfg, os.Stderr)
	return logger.WithContext(ctx), nil
}

// options are the global flags resolved against the configuration.
type options struct {
	ledger string
	year   int
	period capgains.SubPeriod
	keyer  capgains.OrderKeyer
}

func resolveOptions() (options, error) {
	o := options{ledger: *ledgerFile, year: *taxYear}
	if o.ledger == "" {
		o.ledger = config.Ledger
	}
	if o.ledger == "" {
		o.ledger = "Account.csv"
	}
	if o.year == 0 {
		o.year = config.Year
	}
	period := *subPeriod
	if period == "" {
		period = config.Period
	}
	if period == "" {
		period = capgains.All.String()
	}
	var err error
	if o.period, err = capgains.ParseSubPeriod(period); err != nil {
		return options{}, err
	}
	var ok bool
	if o.keyer, ok = capgains.ParseKeyer(config.OrderKey); !ok {
		return options{}, fmt.Errorf("unknown order key %q (want truncate or uuid)", config.OrderKey)
	}
	return o, nil
}

// DecodeRows reads the ledger rows of the account export.
func DecodeRows(ctx context.Context, file string) ([]capgains.LedgerRow, error) {
	rows, err := degiro.DecodeFile(file)
	if err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Debug().Str("ledger", file).Int("rows", len(rows)).Msg("ledger decoded")
	return rows, nil
}

// outputFlags selects how a report is printed.
type outputFlags struct {
	json bool
	raw  bool
}

func (o *outputFlags) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&o.json, "json", false, "print JSON")
	f.BoolVar(&o.raw, "raw", false, "print the markdown source instead of rendering it")
}

// print prints v as JSON or the markdown report, as selected.
func (o *outputFlags) print(markdown string, v any) error {
	switch {
	case o.json:
		return json.NewEncoder(stdout).Encode(v)
	case o.raw:
		_, err := fmt.Fprint(stdout, markdown)
		return err
	default:
		printMarkdown(markdown)
		return nil
	}
}

// printMarkdown renders markdown for the terminal, falling back to the source.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		if out, err := r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	fmt.Fprint(stdout, md)
}
