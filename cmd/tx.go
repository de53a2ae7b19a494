package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/capgains"
	"github.com/etnz/capgains/renderer"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	outputFlags
	all bool
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the orders rebuilt from the ledger" }
func (*txCmd) Usage() string {
	return `cgs [-l <ledger>] [-y <year>] [-p <period>] tx [-all] [-json] [-raw]

  Lists the transactions of the year (or part of the year): one line per order,
  fills, currency conversions and fees merged. See 'cgs topic ledger'.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	c.outputFlags.SetFlags(f)
	f.BoolVar(&c.all, "all", false, "list the transactions of every year")
}

func (c *txCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	log := zerolog.Ctx(ctx)
	for _, tx := range txs {
		log.Debug().Str("date", tx.Date.String()).Int("fills", tx.Fills).Msg(renderer.Transaction(tx))
	}

	if !c.all {
		r := opts.period.Range(opts.year)
		selected := txs[:0:0]
		for _, tx := range txs {
			if r.Contains(tx.Date) {
				selected = append(selected, tx)
			}
		}
		txs = selected
	}

	if err := c.print(renderer.TransactionsMarkdown(txs), capgains.NonNil(txs)); err != nil {
		fmt.Fprintf(os.Stderr, "Error printing transactions: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

