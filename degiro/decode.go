// Package degiro decodes the account statement exported by DEGIRO
// (Account.csv) into ledger rows.
package degiro

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/capgains"
	"github.com/etnz/capgains/date"
	"github.com/shopspring/decimal"
)

// columns of the export, in order.
const (
	colDate = iota
	colTime
	colValueDate
	colProduct
	colISIN
	colDescription
	colFX
	colCurrency
	colAmount
	colBalanceCurrency
	colBalance
	colOrderID

	columns
)

// Decoder reads ledger rows from a CSV export.
type Decoder struct {
	r *csv.Reader
}

// NewDecoder returns a decoder reading from r. comma is the field separator,
// 0 means ','.
func NewDecoder(r io.Reader, comma rune) *Decoder {
	cr := csv.NewReader(r)
	if comma != 0 {
		cr.Comma = comma
	}
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return &Decoder{r: cr}
}

// Decode reads every row. The header line, if any, is skipped.
func (d *Decoder) Decode() ([]capgains.LedgerRow, error) {
	var rows []capgains.LedgerRow
	for line := 1; ; line++ {
		record, err := d.r.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read line %d: %w", line, err)
		}
		if line == 1 && isHeader(record) {
			continue
		}
		if isBlank(record) {
			continue
		}
		row, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, row)
	}
}

// Decode reads the comma separated export from r.
func Decode(r io.Reader) ([]capgains.LedgerRow, error) {
	return NewDecoder(r, 0).Decode()
}

// DecodeFile reads the export stored in file.
func DecodeFile(file string) ([]capgains.LedgerRow, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger: %w", err)
	}
	defer f.Close()
	rows, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("cannot decode %s: %w", file, err)
	}
	return rows, nil
}

// isHeader reports whether the record is the column titles line: its first
// field is not a date.
func isHeader(record []string) bool {
	_, err := date.ParseLedger(clean(record[0]))
	return err != nil
}

func isBlank(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

// clean trims spaces and the byte order mark some exports start with.
func clean(field string) string {
	return strings.TrimSpace(strings.TrimPrefix(field, "\ufeff"))
}

func parseRecord(record []string) (capgains.LedgerRow, error) {
	if len(record) < columns {
		return capgains.LedgerRow{}, fmt.Errorf("got %d columns, want %d", len(record), columns)
	}
	field := func(i int) string { return clean(record[i]) }

	day, err := date.ParseLedger(field(colDate))
	if err != nil {
		return capgains.LedgerRow{}, err
	}
	var valueDate date.Date
	if s := field(colValueDate); s != "" {
		if valueDate, err = date.ParseLedger(s); err != nil {
			return capgains.LedgerRow{}, fmt.Errorf("invalid value date: %w", err)
		}
	}
	var fx decimal.NullDecimal
	if s := field(colFX); s != "" {
		v, err := capgains.ParseAmount(s)
		if err != nil {
			return capgains.LedgerRow{}, fmt.Errorf("invalid FX rate: %w", err)
		}
		fx = decimal.NewNullDecimal(v)
	}
	amount, err := optionalAmount(field(colAmount))
	if err != nil {
		return capgains.LedgerRow{}, fmt.Errorf("invalid amount: %w", err)
	}
	balance, err := optionalAmount(field(colBalance))
	if err != nil {
		return capgains.LedgerRow{}, fmt.Errorf("invalid balance: %w", err)
	}

	return capgains.LedgerRow{
		Date:        day,
		Time:        capgains.NormalizeTime(field(colTime)),
		ValueDate:   valueDate,
		Product:     field(colProduct),
		ISIN:        field(colISIN),
		Description: field(colDescription),
		FXRate:      fx,
		Currency:    capgains.Currency(strings.ToUpper(field(colCurrency))),
		Amount:      amount,
		Balance:     balance,
		OrderID:     field(colOrderID),
	}, nil
}

// optionalAmount parses s, an empty cell is zero.
func optionalAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return capgains.ParseAmount(s)
}
