package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/capgains"
)

// EarningsMarkdown renders the realized gains of a tax year.
func EarningsMarkdown(year int, period capgains.SubPeriod, earnings []capgains.Earning) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Capital Gains %d (%s)\n\n", year, periodLabel(year, period))
	writeEarnings(&b, earnings)
	return b.String()
}

// periodLabel names the dates a sub-period covers.
func periodLabel(year int, period capgains.SubPeriod) string {
	r := period.Range(year)
	return fmt.Sprintf("%s to %s", r.From, r.To)
}

func writeEarnings(b *strings.Builder, earnings []capgains.Earning) {
	if len(earnings) == 0 {
		fmt.Fprint(b, "No sales found.\n")
		return
	}

	fmt.Fprintln(b, "| Date | Product | Type | Quantity | Proceeds | Cost Basis | Gain | Return |")
	fmt.Fprintln(b, "|:---|:---|:---|---:|---:|---:|---:|---:|")
	uncovered := false
	for _, e := range earnings {
		quantity := fmt.Sprint(e.Quantity)
		if e.Uncovered > 0 {
			quantity += "*"
			uncovered = true
		}
		fmt.Fprintf(b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			e.Date,
			escape(e.Product),
			e.ProductType,
			quantity,
			e.Proceeds,
			e.CostBasis,
			e.Value.SignedString(),
			e.Percent.SignedString(),
		)
	}
	fmt.Fprintf(b, "| **%s** | | | | | | **%s** | |\n", "Total", capgains.TotalGain(earnings).SignedString())

	fmt.Fprint(b, "\nPurchases are matched last in, first out (LIFO), not in the FIFO order tax authorities usually require.\n")
	if uncovered {
		fmt.Fprint(b, "\n\\* part of the quantity sold has no earlier purchase in the ledger.\n")
	}
}

// escape protects table cells from the pipe character.
func escape(s string) string { return strings.ReplaceAll(s, "|", "\\|") }
