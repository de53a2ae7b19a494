package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/capgains"
	"github.com/etnz/capgains/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	outputFlags
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "every statistic of a tax year" }
func (*summaryCmd) Usage() string {
	return `cgs [-l <ledger>] [-y <year>] [-p <period>] summary [-json] [-raw]

  Reports the realized gains, fees, deposits and dividends of the year.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) { c.outputFlags.SetFlags(f) }

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	opts, rows, status := loadRows(ctx)
	if status != subcommands.ExitSuccess {
		return status
	}
	s, err := capgains.Summarize(ctx, rows, opts.year, opts.period, opts.keyer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := c.print(renderer.SummaryMarkdown(s), s); err != nil {
		fmt.Fprintf(os.Stderr, "Error printing summary: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
