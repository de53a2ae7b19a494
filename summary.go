package capgains

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Summary gathers every statistic of a tax year.
type Summary struct {
	Year           int
	Period         SubPeriod
	Earnings       []Earning
	TotalGain      Money
	Fees           Money
	Deposits       Money // deposits of the year
	DepositsByYear []YearAmount
	TotalDeposits  Money // deposits of every year
	Dividends      []Dividend
}

func (s Summary) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("year", s.Year)
	w.Append("period", s.Period.String())
	w.Append("earnings", NonNil(s.Earnings))
	w.Append("totalGain", s.TotalGain)
	w.Append("fees", s.Fees)
	w.Append("deposits", s.Deposits)
	w.Append("depositsByYear", NonNil(s.DepositsByYear))
	w.Append("totalDeposits", s.TotalDeposits)
	w.Append("dividends", NonNil(s.Dividends))
	return w.MarshalJSON()
}

// NonNil turns a nil slice into an empty one, so it encodes as [].
func NonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// Summarize runs the whole pipeline over rows for year and period.
func Summarize(ctx context.Context, rows []LedgerRow, year int, period SubPeriod, keyer OrderKeyer) (Summary, error) {
	txs, err := Transactions(ctx, rows, keyer)
	if err != nil {
		return Summary{}, fmt.Errorf("could not build transactions: %w", err)
	}
	earnings := Earnings(txs, year, period)
	zerolog.Ctx(ctx).Debug().
		Int("year", year).
		Stringer("period", period).
		Int("sales", len(earnings)).
		Msg("earnings matched")

	return Summary{
		Year:           year,
		Period:         period,
		Earnings:       earnings,
		TotalGain:      TotalGain(earnings),
		Fees:           TotalFees(rows, year),
		Deposits:       TotalDeposits(rows, year),
		DepositsByYear: DepositsByYear(rows),
		TotalDeposits:  TotalDeposits(rows, 0),
		Dividends:      Dividends(rows, year),
	}, nil
}
