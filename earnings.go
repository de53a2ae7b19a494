package capgains

import (
	"cmp"
	"slices"

	"github.com/etnz/capgains/date"
)

// Earning is the realized gain of one sale.
type Earning struct {
	Date         date.Date
	Product      string
	InstrumentID string
	ProductType  ProductType
	Quantity     int64
	Proceeds     Money
	CostBasis    Money
	Value        Money   // gain (or loss) in EUR
	Percent      Percent // Value over the cost basis
	Uncovered    int64
}

func (e Earning) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", e.Date)
	w.Append("product", e.Product)
	w.Optional("instrumentId", e.InstrumentID)
	w.Append("productType", e.ProductType)
	w.Append("quantity", e.Quantity)
	w.Append("proceeds", e.Proceeds)
	w.Append("costBasis", e.CostBasis)
	w.Append("value", e.Value)
	w.Append("percent", e.Percent)
	w.Optional("uncovered", e.Uncovered)
	return w.MarshalJSON()
}

// SelectSales returns the sales of year that fall in period, sorted by date.
func SelectSales(txs []Transaction, year int, period SubPeriod) []Transaction {
	var sales []Transaction
	for _, tx := range txs {
		if tx.Direction != Sell || tx.Date.Year() != year || !period.Contains(tx.Date.Month()) {
			continue
		}
		sales = append(sales, tx)
	}
	slices.SortStableFunc(sales, func(a, b Transaction) int {
		return cmp.Or(a.Date.Compare(b.Date), cmp.Compare(a.Time, b.Time))
	})
	return sales
}

// Earnings matches every sale of year in period against earlier purchases.
// Cancelled sales are skipped.
func Earnings(txs []Transaction, year int, period SubPeriod) []Earning {
	var earnings []Earning
	for _, sale := range SelectSales(txs, year, period) {
		if sale.IsCancelled() {
			continue
		}
		m := MatchLots(txs, sale)
		earnings = append(earnings, Earning{
			Date:         sale.Date,
			Product:      sale.Product,
			InstrumentID: sale.InstrumentID,
			ProductType:  sale.ProductType,
			Quantity:     sale.Quantity,
			Proceeds:     m.Proceeds,
			CostBasis:    m.CostBasis,
			Value:        m.Gain,
			Percent:      m.Percent,
			Uncovered:    m.Uncovered,
		})
	}
	return earnings
}

// TotalGain sums the value of the earnings.
func TotalGain(earnings []Earning) Money {
	total := M(0, EUR)
	for _, e := range earnings {
		total = total.Add(e.Value)
	}
	return total
}
