package capgains

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Action is the typed content of an order action line such as
// "Buy 5 Apple Inc@150.00 USD (US0378331005)".
type Action struct {
	Direction    Direction
	Quantity     int64
	Name         string
	UnitPrice    decimal.Decimal
	Currency     Currency
	InstrumentID string // empty on cancellation lines that omit it
	ISINChange   bool   // line of a corporate action swapping the instrument id
}

// actionRE is the action line grammar:
//
//	[ISIN CHANGE: ](Buy|Sell) <qty> <name>@<price> (EUR|USD)[ (<id>)]
//
// The name is everything up to the last '@' followed by a price.
var actionRE = regexp.MustCompile(`^(ISIN CHANGE: ?)?(Buy|Sell) ([0-9][0-9,.]*) (.+)@([0-9][0-9,.]*) (EUR|USD)(?: \(([^()]*)\))?$`)

// IsAction reports whether the description looks like an action line.
func IsAction(description string) bool {
	return actionRE.MatchString(normalizeDescription(description))
}

// ParseAction parses an action line.
func ParseAction(description string) (Action, error) {
	m := actionRE.FindStringSubmatch(normalizeDescription(description))
	if m == nil {
		return Action{}, fmt.Errorf("%q does not match \"(Buy|Sell) <qty> <name>@<price> (EUR|USD) (<id>)\"", description)
	}

	dir, err := parseDirection(m[2])
	if err != nil {
		return Action{}, err
	}
	qty, err := ParseAmount(m[3])
	if err != nil {
		return Action{}, fmt.Errorf("invalid quantity: %w", err)
	}
	if !qty.IsInteger() || qty.IsNegative() {
		return Action{}, fmt.Errorf("invalid quantity %q: want a whole number of units", m[3])
	}
	price, err := ParseAmount(m[5])
	if err != nil {
		return Action{}, fmt.Errorf("invalid price: %w", err)
	}

	return Action{
		Direction:    dir,
		Quantity:     qty.IntPart(),
		Name:         strings.TrimSpace(m[4]),
		UnitPrice:    price,
		Currency:     Currency(m[6]),
		InstrumentID: strings.TrimSpace(m[7]),
		ISINChange:   m[1] != "",
	}, nil
}

// normalizeDescription trims and replaces non-breaking spaces that some exports contain.
func normalizeDescription(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\u00a0", " "))
}
