package capgains

import (
	"errors"
	"testing"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		description string
		want        Action
	}{
		{
			description: "Buy 5 Apple Inc@150.25 USD (US0378331005)",
			want:        Action{Direction: Buy, Quantity: 5, Name: "Apple Inc", UnitPrice: dec("150.25"), Currency: USD, InstrumentID: "US0378331005"},
		},
		{
			description: "Sell 3 ALPHABET INC. - CLASS A@1,154.97 USD (US02079K3059)",
			want:        Action{Direction: Sell, Quantity: 3, Name: "ALPHABET INC. - CLASS A", UnitPrice: dec("1154.97"), Currency: USD, InstrumentID: "US02079K3059"},
		},
		{
			description: "Buy 1,000 VANGUARD FTSE ALL-WORLD UCITS ETF@95,12 EUR (IE00B3RBWM25)",
			want:        Action{Direction: Buy, Quantity: 1000, Name: "VANGUARD FTSE ALL-WORLD UCITS ETF", UnitPrice: dec("95.12"), Currency: EUR, InstrumentID: "IE00B3RBWM25"},
		},
		{
			// cancellation lines come without the instrument id
			description: "Sell 2 ADIDAS AG@200 EUR",
			want:        Action{Direction: Sell, Quantity: 2, Name: "ADIDAS AG", UnitPrice: dec("200"), Currency: EUR},
		},
		{
			description: "Buy\u00a010 SAP SE@1.154,97 EUR (DE0007164600)",
			want:        Action{Direction: Buy, Quantity: 10, Name: "SAP SE", UnitPrice: dec("1154.97"), Currency: EUR, InstrumentID: "DE0007164600"},
		},
		{
			// the name may contain an '@', the price is after the last one
			description: "Buy 1 AT@T INC@25.5 USD (US00206R1023)",
			want:        Action{Direction: Buy, Quantity: 1, Name: "AT@T INC", UnitPrice: dec("25.5"), Currency: USD, InstrumentID: "US00206R1023"},
		},
		{
			description: "ISIN CHANGE: Sell 10 Apple Inc@100 EUR (US0378331005)",
			want:        Action{Direction: Sell, Quantity: 10, Name: "Apple Inc", UnitPrice: dec("100"), Currency: EUR, InstrumentID: "US0378331005", ISINChange: true},
		},
	}
	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			got, err := ParseAction(test.description)
			if err != nil {
				t.Fatalf("ParseAction() unexpected error: %v", err)
			}
			if got.Direction != test.want.Direction || got.Quantity != test.want.Quantity || got.Name != test.want.Name ||
				!got.UnitPrice.Equal(test.want.UnitPrice) || got.Currency != test.want.Currency || got.InstrumentID != test.want.InstrumentID ||
				got.ISINChange != test.want.ISINChange {
				t.Errorf("ParseAction() = %+v, want %+v", got, test.want)
			}
		})
	}
}

func TestParseAction_Invalid(t *testing.T) {
	for _, description := range []string{
		"",
		"Deposit",
		"FX Credit",
		"Buy five Apple Inc@150 USD (US0378331005)",
		"Buy 5 Apple Inc@150 GBP (GB0000000000)",
		"ISIN CHANGE: Deposit",
		"SPLIT: Buy 5 Apple Inc@150 USD (US0378331005)",
		"Buy 1.5 Apple Inc@150 USD (US0378331005)",
		"Hold 5 Apple Inc@150 USD (US0378331005)",
	} {
		t.Run(description, func(t *testing.T) {
			if _, err := ParseAction(description); err == nil {
				t.Errorf("ParseAction(%q) succeeded, want an error", description)
			}
		})
	}
}

func TestIsAction(t *testing.T) {
	tests := []struct {
		description string
		want        bool
	}{
		{"Buy 5 Apple Inc@150 USD (US0378331005)", true},
		{"Sell 5 Apple Inc@150 USD", true},
		{"ISIN CHANGE: Buy 10 Apple Inc@100 EUR (US0378331006)", true},
		{LabelTransactionFee, false},
		{LabelFXDebit, false},
		{"DEGIRO Exchange Connection Fee 2021 (NASDAQ)", false},
	}
	for _, test := range tests {
		if got := IsAction(test.description); got != test.want {
			t.Errorf("IsAction(%q) = %v, want %v", test.description, got, test.want)
		}
	}
}

func TestDescriptionError(t *testing.T) {
	r := row("2021-03-01", "10:00", "Buy 1.5 Apple Inc@150 USD (US0378331005)", USD, "-225", "o1")
	_, parseErr := ParseAction(r.Description)
	var err error = &DescriptionError{Description: r.Description, Row: r, Err: parseErr}
	if !errors.Is(err, ErrMalformedDescription) {
		t.Errorf("errors.Is(%v, ErrMalformedDescription) = false", err)
	}
}
