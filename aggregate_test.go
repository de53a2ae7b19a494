package capgains

import "testing"

func aggregateLedger() []LedgerRow {
	return []LedgerRow{
		row("2019-05-02", "09:00", LabelDeposit, EUR, "1000", ""),
		row("2020-01-15", "09:00", LabelFlatexDeposit, EUR, "2500.50", ""),
		row("2020-07-01", "09:00", LabelDeposit, EUR, "300", ""),
		row("2020-03-01", "10:00", LabelTransactionFee, EUR, "-2", "o1"),
		row("2020-12-31", "00:00", "DEGIRO Exchange Connection Fee 2020 (New York Stock Exchange - NYSE)", EUR, "-2.50", ""),
		row("2021-02-01", "10:00", LabelTransactionFee, EUR, "-0.5", "o2"),
		row("2021-03-01", "09:00", LabelDeposit, EUR, "700", ""),
		row("2021-03-02", "09:00", "Interest", EUR, "-0.01", ""),
	}
}

func TestTotalFees(t *testing.T) {
	rows := aggregateLedger()
	tests := []struct {
		year int
		want Money
	}{
		{2019, eur(0)},
		{2020, eur(-4.5)},
		{2021, eur(-0.5)},
		{0, eur(-5)},
	}
	for _, test := range tests {
		if got := TotalFees(rows, test.year); !got.Equal(test.want) {
			t.Errorf("TotalFees(%d) = %s, want %s", test.year, got, test.want)
		}
	}
}

func TestTotalDeposits(t *testing.T) {
	rows := aggregateLedger()
	if got, want := TotalDeposits(rows, 2020), eur(2800.5); !got.Equal(want) {
		t.Errorf("TotalDeposits(2020) = %s, want %s", got, want)
	}

	// the total is the sum of the years
	sum := eur(0)
	years := DepositsByYear(rows)
	for _, y := range years {
		if got := TotalDeposits(rows, y.Year); !got.Equal(y.Amount) {
			t.Errorf("TotalDeposits(%d) = %s, DepositsByYear says %s", y.Year, got, y.Amount)
		}
		sum = sum.Add(y.Amount)
	}
	if got := TotalDeposits(rows, 0); !got.Equal(sum) {
		t.Errorf("TotalDeposits(0) = %s, want %s", got, sum)
	}
	if len(years) != 3 || years[0].Year != 2019 || years[2].Year != 2021 {
		t.Errorf("DepositsByYear() = %v, want 2019, 2020, 2021", years)
	}
}

func TestDividends(t *testing.T) {
	t.Run("dividend and its tax", func(t *testing.T) {
		rows := []LedgerRow{
			row("2020-05-14", "07:38", LabelDividend, USD, "10.50", ""),
			row("2020-05-14", "07:38", LabelDividendTax, USD, "-1.58", ""),
		}
		got := Dividends(rows, 2020)
		if len(got) != 1 {
			t.Fatalf("len(Dividends()) = %d, want 1", len(got))
		}
		d := got[0]
		if d.Year != 2020 || d.Product != "Apple Inc" || d.InstrumentID != "US0378331005" || d.Currency != USD ||
			!d.Value.Equal(dec("10.50")) || !d.ValueTax.Equal(dec("-1.58")) {
			t.Errorf("Dividends() = %+v, want 10.50 and -1.58 USD in 2020", d)
		}
		if want := usd(8.92); !d.Net().Equal(want) {
			t.Errorf("Net() = %s, want %s", d.Net(), want)
		}
	})

	t.Run("tax goes to the closest dividend", func(t *testing.T) {
		rows := []LedgerRow{
			row("2020-12-30", "07:00", LabelDividend, USD, "5", ""),
			row("2021-01-02", "07:00", LabelDividendTax, USD, "-0.75", ""),
			row("2021-03-01", "07:00", LabelDividend, USD, "6", ""),
			of(row("2021-01-02", "07:00", LabelDividend, EUR, "20", ""), "ADIDAS AG", "DE000A1EWWW0"),
			of(row("2021-01-02", "07:00", LabelDividendTax, EUR, "-5.28", ""), "ADIDAS AG", "DE000A1EWWW0"),
		}
		got := Dividends(rows, 0)
		if len(got) != 3 {
			t.Fatalf("len(Dividends()) = %d, want 3: %+v", len(got), got)
		}
		if d := got[0]; d.Product != "ADIDAS AG" || !d.ValueTax.Equal(dec("-5.28")) {
			t.Errorf("got[0] = %+v, want ADIDAS AG with its tax", d)
		}
		if d := got[1]; d.Year != 2020 || !d.ValueTax.Equal(dec("-0.75")) {
			t.Errorf("got[1] = %+v, want the 2020 Apple dividend with the tax", d)
		}
		if d := got[2]; d.Year != 2021 || !d.ValueTax.IsZero() {
			t.Errorf("got[2] = %+v, want the 2021 Apple dividend without tax", d)
		}
	})

	t.Run("tie goes to the earlier dividend", func(t *testing.T) {
		rows := []LedgerRow{
			row("2020-12-31", "07:00", LabelDividend, USD, "5", ""),
			row("2021-01-02", "07:00", LabelDividendTax, USD, "-0.75", ""),
			row("2021-01-04", "07:00", LabelDividend, USD, "6", ""),
		}
		got := Dividends(rows, 2020)
		if len(got) != 1 || !got[0].Value.Equal(dec("5")) || !got[0].ValueTax.Equal(dec("-0.75")) {
			t.Errorf("Dividends(2020) = %+v, want one record of 5 and -0.75", got)
		}
		got = Dividends(rows, 2021)
		if len(got) != 1 || !got[0].ValueTax.IsZero() {
			t.Errorf("Dividends(2021) = %+v, want one record without tax", got)
		}
	})

	t.Run("orphan tax", func(t *testing.T) {
		rows := []LedgerRow{row("2021-06-03", "07:00", LabelDividendTax, USD, "-0.75", "")}
		got := Dividends(rows, 2021)
		if len(got) != 1 || !got[0].Value.IsZero() || !got[0].ValueTax.Equal(dec("-0.75")) {
			t.Errorf("Dividends() = %+v, want one record with the tax only", got)
		}
	})
}
