package capgains

import (
	"strings"
	"time"

	"github.com/etnz/capgains/date"
	"github.com/shopspring/decimal"
)

// Descriptions the broker uses for non trade lines.
const (
	LabelTransactionFee = "DEGIRO Transaction and/or third party fees"
	LabelConnectionFee  = "DEGIRO Exchange Connection Fee" // prefix, followed by the exchange and year
	LabelFXCredit       = "FX Credit"
	LabelFXDebit        = "FX Debit"
	LabelDeposit        = "Deposit"
	LabelFlatexDeposit  = "flatex Deposit"
	LabelDividend       = "Dividend"
	LabelDividendTax    = "Dividend Tax"
)

// LedgerRow is one line of the account export. Rows are read only.
type LedgerRow struct {
	Date        date.Date
	Time        string // "15:04"
	ValueDate   date.Date
	Product     string
	ISIN        string
	Description string
	FXRate      decimal.NullDecimal
	Currency    Currency
	Amount      decimal.Decimal // signed cash delta
	Balance     decimal.Decimal
	OrderID     string // empty when the line is not part of an order
}

// HasOrder reports whether the row belongs to an order.
func (r LedgerRow) HasOrder() bool { return r.OrderID != "" }

// after reports whether r happened after x, by date then time of day.
func (r LedgerRow) after(x LedgerRow) bool {
	if c := r.Date.Compare(x.Date); c != 0 {
		return c > 0
	}
	return clock(r.Time) > clock(x.Time)
}

// clock returns the time of day of a "15:04" time, hours may be unpadded.
// An unreadable time sorts first.
func clock(s string) time.Duration {
	t, err := time.Parse(timeFormat, strings.TrimSpace(s))
	if err != nil {
		return -1
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute
}

const timeFormat = "15:04"

// NormalizeTime pads a time of day to "15:04", "9:05" becomes "09:05".
// Unreadable times are returned trimmed.
func NormalizeTime(s string) string {
	s = strings.TrimSpace(s)
	t, err := time.Parse(timeFormat, s)
	if err != nil {
		return s
	}
	return t.Format(timeFormat)
}

func (r LedgerRow) isFee() bool { return r.Description == LabelTransactionFee }

func (r LedgerRow) isFX(d Direction) bool {
	if d == Sell {
		return r.Description == LabelFXCredit
	}
	return r.Description == LabelFXDebit
}
