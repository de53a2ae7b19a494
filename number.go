package capgains

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a number written with either '.' or ',' as decimal mark and
// an optional grouping separator: "1,154.97", "1.154,97", "1 154,97" and "-750.00"
// are all accepted. A single comma followed by exactly three digits is a grouping
// separator ("1,000" is one thousand, "0,125" is not).
func ParseAmount(s string) (decimal.Decimal, error) {
	str := strings.TrimSpace(s)
	str = strings.NewReplacer(" ", "", "\u00a0", "", "\u202f", "", "'", "").Replace(str)
	if str == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	lastDot := strings.LastIndex(str, ".")
	lastComma := strings.LastIndex(str, ",")
	switch {
	case lastDot >= 0 && lastComma >= 0:
		// the rightmost mark is the decimal one
		if lastDot > lastComma {
			str = strings.ReplaceAll(str, ",", "")
		} else {
			str = strings.ReplaceAll(str, ".", "")
			str = strings.Replace(str, ",", ".", 1)
		}
	case lastComma >= 0:
		str = normalizeSingleMark(str, ",")
	case lastDot >= 0:
		str = normalizeSingleMark(str, ".")
	}

	d, err := decimal.NewFromString(str)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

// normalizeSingleMark handles a number that uses a single kind of separator.
func normalizeSingleMark(str, mark string) string {
	if strings.Count(str, mark) > 1 {
		return strings.ReplaceAll(str, mark, "")
	}
	i := strings.Index(str, mark)
	integer := strings.TrimLeft(str[:i], "+-")
	if mark == "," && len(str)-i-1 == 3 && integer != "" && integer != "0" {
		// "1,000" in an english export
		return strings.Replace(str, mark, "", 1)
	}
	return strings.Replace(str, mark, ".", 1)
}
