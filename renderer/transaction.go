package renderer

import (
	"fmt"

	"github.com/etnz/capgains"
)

// Transaction renders a transaction to a sentence.
func Transaction(tx capgains.Transaction) string {
	switch {
	case tx.IsCancelled():
		return fmt.Sprintf("Cancelled order %s on %s", tx.OrderID, tx.Product)
	case tx.Direction == capgains.Buy:
		return fmt.Sprintf("Bought %d %s for %s", tx.Quantity, tx.Product, tx.TotalCost.Neg())
	default:
		return fmt.Sprintf("Sold %d %s for %s", tx.Quantity, tx.Product, tx.TotalCost)
	}
}
