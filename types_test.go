package capgains

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/etnz/capgains/date"
)

func TestMoney_Arithmetic(t *testing.T) {
	if got, want := eur(1.1).Add(eur(2.2)), eur(3.3); !got.Equal(want) {
		t.Errorf("Add() = %s, want %s", got, want)
	}
	if got, want := M(2, "").Add(usd(1)), usd(3); !got.Equal(want) {
		t.Errorf("Add() with no currency = %v, want %v", got, want)
	}
	if got, want := eur(-100).MulInt(2).DivInt(5), eur(-40); !got.Equal(want) {
		t.Errorf("MulInt().DivInt() = %s, want %s", got, want)
	}
	if got := eur(0).SignedString(); got != "-" {
		t.Errorf("SignedString() = %q, want %q", got, "-")
	}

	defer func() {
		if recover() == nil {
			t.Error("Add() of two currencies did not panic")
		}
	}()
	eur(1).Add(usd(1))
}

func TestMoney_MarshalJSON(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{eur(-40), `{"currency":"EUR","amount":"-40"}`},
		{eur(-100).MulInt(1).DivInt(3), `{"currency":"EUR","amount":"-33.33"}`},
		{M(1.5, ""), `{"amount":"1.5"}`},
	}
	for _, test := range tests {
		got, err := json.Marshal(test.m)
		if err != nil {
			t.Fatalf("json.Marshal() unexpected error: %v", err)
		}
		if string(got) != test.want {
			t.Errorf("json.Marshal(%v) = %s, want %s", test.m, got, test.want)
		}
	}
}

func TestPercent(t *testing.T) {
	p := NewPercent(dec("110.526315"))
	if got, want := p.String(), "110.53%"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := p.SignedString(), "+110.53%"; got != want {
		t.Errorf("SignedString() = %q, want %q", got, want)
	}
	if got := Undefined().String(); got != "n/a" {
		t.Errorf("Undefined().String() = %q, want n/a", got)
	}
	for _, test := range []struct {
		p    Percent
		want string
	}{
		{p, "110.53"},
		{NewPercent(dec("-20")), "-20.00"},
		{Undefined(), "null"},
	} {
		got, err := json.Marshal(test.p)
		if err != nil {
			t.Fatalf("json.Marshal() unexpected error: %v", err)
		}
		if string(got) != test.want {
			t.Errorf("json.Marshal(%v) = %s, want %s", test.p, got, test.want)
		}
	}
}

func TestParseSubPeriod(t *testing.T) {
	tests := []struct {
		in   string
		want SubPeriod
	}{
		{"all", All},
		{"Year", All},
		{"initial", Initial},
		{"jan-nov", Initial},
		{"later", Later},
		{"DEC", Later},
	}
	for _, test := range tests {
		got, err := ParseSubPeriod(test.in)
		if err != nil || got != test.want {
			t.Errorf("ParseSubPeriod(%q) = %v, %v, want %v", test.in, got, err, test.want)
		}
	}
	if _, err := ParseSubPeriod("q1"); err == nil {
		t.Error("ParseSubPeriod(q1) succeeded")
	}
}

func TestSubPeriod_Range(t *testing.T) {
	tests := []struct {
		p        SubPeriod
		from, to date.Date
	}{
		{All, date.New(2021, time.January, 1), date.New(2021, time.December, 31)},
		{Initial, date.New(2021, time.January, 1), date.New(2021, time.November, 30)},
		{Later, date.New(2021, time.December, 1), date.New(2021, time.December, 31)},
	}
	for _, test := range tests {
		r := test.p.Range(2021)
		if r.From != test.from || r.To != test.to {
			t.Errorf("%v.Range(2021) = %s, want %s to %s", test.p, r, test.from, test.to)
		}
		for m := time.January; m <= time.December; m++ {
			if got, want := test.p.Contains(m), r.Contains(date.New(2021, m, 15)); got != want {
				t.Errorf("%v.Contains(%v) = %v, Range says %v", test.p, m, got, want)
			}
		}
	}
}

func TestClassifyProduct(t *testing.T) {
	tests := []struct {
		name string
		want ProductType
	}{
		{"VANGUARD FTSE ALL-WORLD UCITS ETF", ETF},
		{"ISHARES CORE MSCI WORLD", ETF},
		{"Apple Inc", Shares},
		{"ADIDAS AG", Shares},
		{"BETFAIR GROUP", Shares},
	}
	for _, test := range tests {
		if got := ClassifyProduct(test.name); got != test.want {
			t.Errorf("ClassifyProduct(%q) = %v, want %v", test.name, got, test.want)
		}
	}
}

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"9:05", "09:05"},
		{"09:05", "09:05"},
		{" 15:30 ", "15:30"},
		{"", ""},
		{"noon", "noon"},
	}
	for _, test := range tests {
		if got := NormalizeTime(test.in); got != test.want {
			t.Errorf("NormalizeTime(%q) = %q, want %q", test.in, got, test.want)
		}
	}
}

func TestLedgerRowAfter(t *testing.T) {
	early := row("2021-03-01", "9:59", LabelDeposit, EUR, "1", "")
	late := row("2021-03-01", "10:00", LabelDeposit, EUR, "1", "")
	if !late.after(early) || early.after(late) {
		t.Error("10:00 is not after 9:59")
	}
	next := row("2021-03-02", "00:00", LabelDeposit, EUR, "1", "")
	if !next.after(late) {
		t.Error("the next day is not after 10:00")
	}
}
