package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/capgains"
)

// TransactionsMarkdown lists orders, one line per transaction.
func TransactionsMarkdown(txs []capgains.Transaction) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Transactions\n\n")
	if len(txs) == 0 {
		fmt.Fprint(&b, "No transactions found.\n")
		return b.String()
	}

	fmt.Fprintln(&b, "| Date | Order | Product | Direction | Quantity | Unit Price | Total Cost | Fees |")
	fmt.Fprintln(&b, "|:---|:---|:---|:---|---:|---:|---:|---:|")
	for _, tx := range txs {
		direction := tx.Direction.String()
		if tx.IsCancelled() {
			direction = "Cancelled"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %d | %s %s | %s | %s |\n",
			tx.Date,
			tx.OrderID,
			escape(tx.Product),
			direction,
			tx.Quantity,
			tx.UnitPrice.String(), tx.ValueCurrency,
			tx.TotalCost,
			tx.Fees,
		)
	}
	return b.String()
}
