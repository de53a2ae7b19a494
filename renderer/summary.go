package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/capgains"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders every statistic of a tax year in one report.
func SummaryMarkdown(s capgains.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Summary %d (%s)\n\n", s.Year, periodLabel(s.Year, s.Period))

	fmt.Fprintln(&b, "| Statistic | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Sales | %d |\n", len(s.Earnings))
	fmt.Fprintf(&b, "| Realized Gains | %s |\n", s.TotalGain.SignedString())
	// fees, deposits and dividends always cover the whole year
	fmt.Fprintf(&b, "| Fees (full year %d) | %s |\n", s.Year, s.Fees.SignedString())
	fmt.Fprintf(&b, "| Deposits (full year %d) | %s |\n", s.Year, s.Deposits)
	fmt.Fprintf(&b, "| Deposits (all years) | %s |\n", s.TotalDeposits)
	fmt.Fprintln(&b)

	fmt.Fprint(&b, "## Sales\n\n")
	writeEarnings(&b, s.Earnings)
	fmt.Fprintln(&b)

	ConditionalBlock(&b, func(w io.Writer) bool {
		var buf bytes.Buffer
		doc := md.NewMarkdown(&buf)
		doc.H2(fmt.Sprintf("Dividends (full year %d)", s.Year))
		writeDividends(doc, s.Dividends)
		fmt.Fprint(w, doc.String())
		return len(s.Dividends) > 0
	})
	return b.String()
}
