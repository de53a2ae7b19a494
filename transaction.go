package capgains

import (
	"cmp"
	"context"
	"runtime"
	"slices"

	"github.com/etnz/capgains/date"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Transaction is one order rebuilt from its ledger rows.
type Transaction struct {
	Date          date.Date
	Time          string
	Direction     Direction
	Product       string
	InstrumentID  string
	ProductType   ProductType
	Quantity      int64
	UnitPrice     decimal.Decimal
	TotalCost     Money // signed EUR cash flow, negative for purchases
	ValueCurrency Currency
	Fees          Money // signed EUR, negative when paid
	OrderID       string
	Fills         int // number of action lines merged into this transaction
}

// IsCancelled reports whether the order was reversed by the broker.
func (t Transaction) IsCancelled() bool { return t.Quantity == 0 }

// OrderUUID returns the order identifier as a UUID, when it is well formed.
func (t Transaction) OrderUUID() (uuid.UUID, error) { return uuid.Parse(t.OrderID) }

func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", t.Date)
	w.Optional("time", t.Time)
	w.Append("direction", t.Direction)
	w.Append("product", t.Product)
	w.Optional("instrumentId", t.InstrumentID)
	w.Append("productType", t.ProductType)
	w.Append("quantity", t.Quantity)
	w.Append("unitPrice", t.UnitPrice)
	w.Append("totalCost", t.TotalCost)
	w.Append("valueCurrency", t.ValueCurrency)
	w.Append("fees", t.Fees)
	w.Append("orderId", t.OrderID)
	return w.MarshalJSON()
}

// fill is an action line and the row it comes from.
type fill struct {
	Action
	row LedgerRow
}

// BuildTransaction reduces the rows of one order into a Transaction.
//
// The order date, product and currency are those of the chronologically last
// action line. Quantities of Buy and Sell lines offset each other, so a broker
// reversal (a Buy compensated by an equal Sell) yields an empty transaction.
func BuildTransaction(key string, rows []LedgerRow) (Transaction, error) {
	var fills []fill
	for _, row := range rows {
		if !IsAction(row.Description) {
			continue
		}
		a, err := ParseAction(row.Description)
		if err != nil {
			return Transaction{}, &DescriptionError{Description: row.Description, Row: row, Err: err}
		}
		fills = append(fills, fill{Action: a, row: row})
	}
	if len(fills) == 0 {
		row := descriptionRow(rows)
		return Transaction{}, &DescriptionError{Description: row.Description, Row: row}
	}

	last := fills[0]
	for _, f := range fills[1:] {
		if !last.row.after(f.row) {
			last = f
		}
	}

	var net int64
	cost := M(0, EUR)
	directions := make(map[Direction]bool)
	for _, f := range fills {
		net += f.Direction.sign() * f.Quantity
		switch f.Currency {
		case EUR:
			cost = cost.Add(M(f.row.Amount, EUR))
		default:
			directions[f.Direction] = true
		}
	}
	// foreign currency fills are valued by the conversion lines of the order,
	// counted once per direction.
	for _, d := range []Direction{Buy, Sell} {
		if !directions[d] {
			continue
		}
		fx, ok := sumFX(rows, d)
		if !ok {
			label := LabelFXDebit
			if d == Sell {
				label = LabelFXCredit
			}
			return Transaction{}, &MissingFXError{OrderKey: key, Direction: d, Label: label}
		}
		cost = cost.Add(fx)
	}

	fees := M(0, EUR)
	for _, row := range rows {
		if row.isFee() {
			fees = fees.Add(M(row.Amount, EUR))
		}
	}

	qty := net
	if qty < 0 {
		qty = -qty
	}
	if qty == 0 {
		cost, fees = M(0, EUR), M(0, EUR)
	}

	product := last.row.Product
	if product == "" {
		product = last.Name
	}

	return Transaction{
		Date:          last.row.Date,
		Time:          NormalizeTime(last.row.Time),
		Direction:     last.Direction,
		Product:       product,
		InstrumentID:  last.InstrumentID,
		ProductType:   ClassifyProduct(product),
		Quantity:      qty,
		UnitPrice:     last.UnitPrice,
		TotalCost:     cost,
		ValueCurrency: last.Currency,
		Fees:          fees,
		OrderID:       key,
		Fills:         len(fills),
	}, nil
}

// sumFX sums the EUR conversion lines of the order for direction d.
func sumFX(rows []LedgerRow, d Direction) (Money, bool) {
	sum, found := M(0, EUR), false
	for _, row := range rows {
		if row.isFX(d) && row.Currency == EUR {
			sum = sum.Add(M(row.Amount, EUR))
			found = true
		}
	}
	return sum, found
}

// descriptionRow returns the row to report when an order has no action line:
// the first one that is neither a fee nor a conversion.
func descriptionRow(rows []LedgerRow) LedgerRow {
	for _, row := range rows {
		if !row.isFee() && !row.isFX(Buy) && !row.isFX(Sell) {
			return row
		}
	}
	return rows[0]
}

// BuildTransactions builds every order group concurrently. The result is sorted
// by date, time and order key. The first error cancels the remaining builds.
func BuildTransactions(ctx context.Context, groups map[string][]LedgerRow) ([]Transaction, error) {
	log := zerolog.Ctx(ctx)

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	txs := make([]Transaction, len(keys))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, key := range keys {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tx, err := BuildTransaction(key, groups[key])
			if err != nil {
				return err
			}
			if tx.IsCancelled() {
				log.Debug().Str("order", key).Str("product", tx.Product).Msg("order cancelled by the broker")
			}
			txs[i] = tx
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(txs, func(a, b Transaction) int {
		return cmp.Or(a.Date.Compare(b.Date), cmp.Compare(a.Time, b.Time), cmp.Compare(a.OrderID, b.OrderID))
	})
	log.Debug().Int("orders", len(txs)).Msg("transactions built")
	return txs, nil
}

// Transactions groups the rows by order and builds one Transaction per order.
func Transactions(ctx context.Context, rows []LedgerRow, keyer OrderKeyer) ([]Transaction, error) {
	return BuildTransactions(ctx, GroupOrders(rows, keyer))
}
