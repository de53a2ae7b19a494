package capgains

import (
	"github.com/etnz/capgains/date"
	"github.com/shopspring/decimal"
)

// eur is a helper for test to create euro money from const
func eur(v float64) Money { return M(v, EUR) }

// usd is a helper for test to create dollar money from const
func usd(v float64) Money { return M(v, USD) }

// dec parses a decimal literal.
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// row is a helper for test to create a ledger row of product "Apple Inc".
func row(day, hour, description string, cur Currency, amount string, order string) LedgerRow {
	return LedgerRow{
		Date:        date.MustParse(day),
		Time:        hour,
		ValueDate:   date.MustParse(day),
		Product:     "Apple Inc",
		ISIN:        "US0378331005",
		Description: description,
		Currency:    cur,
		Amount:      dec(amount),
		OrderID:     order,
	}
}

// of returns a copy of r for another product.
func of(r LedgerRow, product, isin string) LedgerRow {
	r.Product, r.ISIN = product, isin
	return r
}

// buy is a helper for test to create a euro purchase.
func buy(day, product string, qty int64, cost float64) Transaction {
	return Transaction{Date: date.MustParse(day), Direction: Buy, Product: product, Quantity: qty, TotalCost: eur(cost), Fees: eur(0)}
}

// sell is a helper for test to create a euro sale.
func sell(day, product string, qty int64, proceeds float64) Transaction {
	return Transaction{Date: date.MustParse(day), Direction: Sell, Product: product, Quantity: qty, TotalCost: eur(proceeds), Fees: eur(0)}
}
