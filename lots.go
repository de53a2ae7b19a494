package capgains

import (
	"cmp"
	"slices"

	"github.com/etnz/capgains/date"
	"github.com/shopspring/decimal"
)

// lot is a purchase a sale can be matched against.
type lot struct {
	Date     date.Date
	Quantity int64
	Cost     Money // negative cash flow of the whole purchase
}

type lots []lot

// purchases returns the lots of product bought strictly before day, most
// recent first. Purchases of the same day keep their order.
func purchases(txs []Transaction, product string, day date.Date) lots {
	var l lots
	for _, tx := range txs {
		if tx.Direction != Buy || tx.Product != product || tx.Quantity == 0 || !tx.Date.Before(day) {
			continue
		}
		l = append(l, lot{Date: tx.Date, Quantity: tx.Quantity, Cost: tx.TotalCost})
	}
	slices.SortStableFunc(l, func(a, b lot) int { return cmp.Compare(0, a.Date.Compare(b.Date)) })
	return l
}

// lifoCostOfSelling walks the lots in order and returns the cost of the sold
// quantity, and the quantity no lot could cover.
func (l lots) lifoCostOfSelling(quantityToSell int64) (Money, int64) {
	cost := M(0, EUR)
	for _, current := range l {
		if quantityToSell == 0 {
			break
		}
		if current.Quantity > quantityToSell {
			// partial
			cost = cost.Add(current.Cost.MulInt(quantityToSell).DivInt(current.Quantity))
			return cost, 0
		}
		cost = cost.Add(current.Cost)
		quantityToSell -= current.Quantity
	}
	return cost, quantityToSell
}

// LotMatch is the outcome of matching one sale against earlier purchases.
type LotMatch struct {
	Quantity  int64
	Proceeds  Money   // sale cash flow, positive
	CostBasis Money   // matched purchase cost, negative
	Gain      Money   // Proceeds + CostBasis
	Percent   Percent // undefined when nothing was matched
	Uncovered int64   // sold quantity without a prior purchase
}

// Ratio returns the gain over the cost basis, in percent.
func (m LotMatch) Ratio() (decimal.Decimal, error) {
	if m.CostBasis.IsZero() {
		return decimal.Zero, ErrZeroCostBasis
	}
	return m.Gain.Decimal().Div(m.CostBasis.Decimal().Neg()).Mul(decimal.NewFromInt(100)), nil
}

// MatchLots computes the realized gain of sale against the purchases of the
// same product in txs.
//
// Purchases are consumed last in, first out: the most recent purchase before
// the sale is matched first. This is not the FIFO order most tax authorities
// require.
func MatchLots(txs []Transaction, sale Transaction) LotMatch {
	basis, uncovered := purchases(txs, sale.Product, sale.Date).lifoCostOfSelling(sale.Quantity)
	m := LotMatch{
		Quantity:  sale.Quantity,
		Proceeds:  sale.TotalCost,
		CostBasis: basis,
		Gain:      sale.TotalCost.Add(basis),
		Percent:   Undefined(),
		Uncovered: uncovered,
	}
	if r, err := m.Ratio(); err == nil {
		m.Percent = NewPercent(r)
	}
	return m
}
