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

// feesCmd holds the flags for the 'fees' subcommand.
type feesCmd struct {
	outputFlags
}

func (*feesCmd) Name() string     { return "fees" }
func (*feesCmd) Synopsis() string { return "transaction and connection fees of a tax year" }
func (*feesCmd) Usage() string {
	return `cgs [-l <ledger>] [-y <year>] fees [-json] [-raw]

  Sums the transaction fees and the exchange connection fees booked in the year.
`
}

func (c *feesCmd) SetFlags(f *flag.FlagSet) { c.outputFlags.SetFlags(f) }

func (c *feesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	opts, rows, status := loadRows(ctx)
	if status != subcommands.ExitSuccess {
		return status
	}
	fees := capgains.TotalFees(rows, opts.year)
	v := struct {
		Year int            `json:"year"`
		Fees capgains.Money `json:"fees"`
	}{opts.year, fees}
	if err := c.print(renderer.FeesMarkdown(opts.year, fees), v); err != nil {
		fmt.Fprintf(os.Stderr, "Error printing fees: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// depositsCmd holds the flags for the 'deposits' subcommand.
type depositsCmd struct {
	outputFlags
}

func (*depositsCmd) Name() string     { return "deposits" }
func (*depositsCmd) Synopsis() string { return "cash deposits per year" }
func (*depositsCmd) Usage() string {
	return `cgs [-l <ledger>] deposits [-json] [-raw]

  Sums the cash deposits of every year of the ledger.
`
}

func (c *depositsCmd) SetFlags(f *flag.FlagSet) { c.outputFlags.SetFlags(f) }

func (c *depositsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, rows, status := loadRows(ctx)
	if status != subcommands.ExitSuccess {
		return status
	}
	years := capgains.DepositsByYear(rows)
	total := capgains.TotalDeposits(rows, 0)
	v := struct {
		Years []capgains.YearAmount `json:"years"`
		Total capgains.Money        `json:"total"`
	}{capgains.NonNil(years), total}
	if err := c.print(renderer.DepositsMarkdown(years, total), v); err != nil {
		fmt.Fprintf(os.Stderr, "Error printing deposits: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// dividendsCmd holds the flags for the 'dividends' subcommand.
type dividendsCmd struct {
	outputFlags
}

func (*dividendsCmd) Name() string     { return "dividends" }
func (*dividendsCmd) Synopsis() string { return "dividend income and withholding of a tax year" }
func (*dividendsCmd) Usage() string {
	return `cgs [-l <ledger>] [-y <year>] dividends [-json] [-raw]

  Lists the gross dividends and the tax withheld on them, per product.
`
}

func (c *dividendsCmd) SetFlags(f *flag.FlagSet) { c.outputFlags.SetFlags(f) }

func (c *dividendsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	opts, rows, status := loadRows(ctx)
	if status != subcommands.ExitSuccess {
		return status
	}
	dividends := capgains.Dividends(rows, opts.year)
	if err := c.print(renderer.DividendsMarkdown(opts.year, dividends), capgains.NonNil(dividends)); err != nil {
		fmt.Fprintf(os.Stderr, "Error printing dividends: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// loadRows resolves the options and decodes the ledger, reporting errors on stderr.
func loadRows(ctx context.Context) (options, []capgains.LedgerRow, subcommands.ExitStatus) {
	opts, err := resolveOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return options{}, nil, subcommands.ExitUsageError
	}
	rows, err := DecodeRows(ctx, opts.ledger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return options{}, nil, subcommands.ExitFailure
	}
	return opts, rows, subcommands.ExitSuccess
}
