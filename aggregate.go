package capgains

import (
	"cmp"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// inYear reports whether the row is dated in year; year 0 matches every row.
func inYear(row LedgerRow, year int) bool { return year == 0 || row.Date.Year() == year }

func isDeposit(row LedgerRow) bool {
	return row.Description == LabelDeposit || row.Description == LabelFlatexDeposit
}

// TotalFees sums the transaction and exchange connection fees of year (0 for
// every year). Fees are negative.
func TotalFees(rows []LedgerRow, year int) Money {
	sum := decimal.Zero
	for _, row := range rows {
		if !inYear(row, year) {
			continue
		}
		if row.isFee() || strings.HasPrefix(row.Description, LabelConnectionFee) {
			sum = sum.Add(row.Amount)
		}
	}
	return M(sum, EUR)
}

// TotalDeposits sums the cash deposits of year (0 for every year).
func TotalDeposits(rows []LedgerRow, year int) Money {
	sum := decimal.Zero
	for _, row := range rows {
		if inYear(row, year) && isDeposit(row) {
			sum = sum.Add(row.Amount)
		}
	}
	return M(sum, EUR)
}

// YearAmount is an amount booked over one calendar year.
type YearAmount struct {
	Year   int
	Amount Money
}

func (y YearAmount) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("year", y.Year)
	w.Append("amount", y.Amount)
	return w.MarshalJSON()
}

// DepositsByYear returns the deposits of each year with at least one deposit,
// in chronological order.
func DepositsByYear(rows []LedgerRow) []YearAmount {
	sums := make(map[int]decimal.Decimal)
	for _, row := range rows {
		if isDeposit(row) {
			sums[row.Date.Year()] = sums[row.Date.Year()].Add(row.Amount)
		}
	}
	years := make([]YearAmount, 0, len(sums))
	for y, sum := range sums {
		years = append(years, YearAmount{Year: y, Amount: M(sum, EUR)})
	}
	slices.SortFunc(years, func(a, b YearAmount) int { return cmp.Compare(a.Year, b.Year) })
	return years
}

// Dividend is the dividend income of one product over a year.
type Dividend struct {
	Year         int
	Product      string
	InstrumentID string
	Value        decimal.Decimal // gross
	ValueTax     decimal.Decimal // withholding, negative
	Currency     Currency
}

// Net returns the dividend after withholding tax.
func (d Dividend) Net() Money { return M(d.Value.Add(d.ValueTax), d.Currency) }

func (d Dividend) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("year", d.Year)
	w.Append("product", d.Product)
	w.Optional("instrumentId", d.InstrumentID)
	w.Append("value", M(d.Value, d.Currency))
	w.Append("valueTax", M(d.ValueTax, d.Currency))
	w.Append("currency", d.Currency)
	return w.MarshalJSON()
}

type dividendKey struct {
	year     int
	product  string
	isin     string
	currency Currency
}

func (k dividendKey) matches(row LedgerRow) bool {
	return k.product == row.Product && k.isin == row.ISIN && k.currency == row.Currency
}

// Dividends returns the dividends of year (0 for every year), one record per
// product and currency.
//
// Each tax row is booked with the closest dividend of the same product, ISIN
// and currency, the earlier one on a tie. A tax row without any dividend forms
// its own record.
func Dividends(rows []LedgerRow, year int) []Dividend {
	var payments, taxes []LedgerRow
	for _, row := range rows {
		switch row.Description {
		case LabelDividend:
			payments = append(payments, row)
		case LabelDividendTax:
			taxes = append(taxes, row)
		}
	}

	records := make(map[dividendKey]*Dividend)
	record := func(k dividendKey) *Dividend {
		d, ok := records[k]
		if !ok {
			d = &Dividend{Year: k.year, Product: k.product, InstrumentID: k.isin, Currency: k.currency}
			records[k] = d
		}
		return d
	}
	keyOf := func(row LedgerRow) dividendKey {
		return dividendKey{year: row.Date.Year(), product: row.Product, isin: row.ISIN, currency: row.Currency}
	}

	for _, p := range payments {
		d := record(keyOf(p))
		d.Value = d.Value.Add(p.Amount)
	}
	for _, tax := range taxes {
		key := keyOf(tax)
		best := -1
		for i, p := range payments {
			if !key.matches(p) {
				continue
			}
			if best < 0 || closer(tax, p, payments[best]) {
				best = i
			}
		}
		if best >= 0 {
			key = keyOf(payments[best])
		}
		d := record(key)
		d.ValueTax = d.ValueTax.Add(tax.Amount)
	}

	var dividends []Dividend
	for k, d := range records {
		if year == 0 || k.year == year {
			dividends = append(dividends, *d)
		}
	}
	slices.SortFunc(dividends, func(a, b Dividend) int {
		return cmp.Or(
			cmp.Compare(a.Product, b.Product),
			cmp.Compare(a.InstrumentID, b.InstrumentID),
			cmp.Compare(a.Currency, b.Currency),
			cmp.Compare(a.Year, b.Year),
		)
	})
	return dividends
}

// closer reports whether payment a is strictly closer in time to tax than b,
// or as close and earlier.
func closer(tax, a, b LedgerRow) bool {
	da, db := tax.Date.DaysBetween(a.Date), tax.Date.DaysBetween(b.Date)
	if da != db {
		return da < db
	}
	return b.after(a)
}
