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

// earningsCmd holds the flags for the 'earnings' subcommand.
type earningsCmd struct {
	outputFlags
}

func (*earningsCmd) Name() string     { return "earnings" }
func (*earningsCmd) Synopsis() string { return "realized gains of the sales of a tax year" }
func (*earningsCmd) Usage() string {
	return `cgs [-l <ledger>] [-y <year>] [-p <period>] earnings [-json] [-raw]

  Matches every sale of the year (or part of the year) against the earlier
  purchases of the same product and reports the gain and the return.
  See 'cgs topic lifo'.
`
}

func (c *earningsCmd) SetFlags(f *flag.FlagSet) { c.outputFlags.SetFlags(f) }

func (c *earningsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	opts, err := resolveOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	txs, err := buildTransactions(ctx, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	earnings := capgains.Earnings(txs, opts.year, opts.period)
	md := renderer.EarningsMarkdown(opts.year, opts.period, earnings)
	if err := c.print(md, capgains.NonNil(earnings)); err != nil {
		fmt.Fprintf(os.Stderr, "Error printing earnings: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// buildTransactions decodes the ledger and rebuilds its orders.
func buildTransactions(ctx context.Context, opts options) ([]capgains.Transaction, error) {
	rows, err := DecodeRows(ctx, opts.ledger)
	if err != nil {
		return nil, err
	}
	txs, err := capgains.Transactions(ctx, rows, opts.keyer)
	if err != nil {
		return nil, fmt.Errorf("cannot rebuild the orders of %s: %w", opts.ledger, err)
	}
	return txs, nil
}
