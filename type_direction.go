package capgains

import (
	"fmt"
	"regexp"
)

// Direction is the side of an order.
type Direction int

const (
	Buy Direction = iota
	Sell
)

func (d Direction) String() string {
	switch d {
	case Buy:
		return "Buy"
	case Sell:
		return "Sell"
	default:
		return "unknown"
	}
}

// sign returns +1 for a Buy and -1 for a Sell.
func (d Direction) sign() int64 {
	if d == Sell {
		return -1
	}
	return 1
}

func parseDirection(s string) (Direction, error) {
	switch s {
	case "Buy":
		return Buy, nil
	case "Sell":
		return Sell, nil
	default:
		return Buy, fmt.Errorf("unknown direction %q", s)
	}
}

func (d Direction) MarshalJSON() ([]byte, error) { return []byte(`"` + d.String() + `"`), nil }

// ProductType is a coarse classification of the traded instrument.
type ProductType int

const (
	Shares ProductType = iota
	ETF
)

func (t ProductType) String() string {
	if t == ETF {
		return "ETF"
	}
	return "Shares"
}

func (t ProductType) MarshalJSON() ([]byte, error) { return []byte(`"` + t.String() + `"`), nil }

// etfRE matches product names of the usual fund issuers. It is a heuristic, the
// export carries no authoritative instrument type.
var etfRE = regexp.MustCompile(`(?i)\b(ETF|UCITS|ISHARES|VANGUARD|XTRACKERS|SPDR|LYXOR|AMUNDI|INVESCO|WISDOMTREE)\b`)

// ClassifyProduct infers the product type from its name.
func ClassifyProduct(name string) ProductType {
	if etfRE.MatchString(name) {
		return ETF
	}
	return Shares
}
