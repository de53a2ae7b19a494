package capgains

import (
	"fmt"
	"strings"
	"time"

	"github.com/etnz/capgains/date"
)

// SubPeriod splits a tax year for jurisdictions that report December separately.
type SubPeriod int

const (
	// All is the full calendar year.
	All SubPeriod = iota
	// Initial is January to November.
	Initial
	// Later is December only.
	Later
)

func (p SubPeriod) String() string {
	switch p {
	case All:
		return "all"
	case Initial:
		return "initial"
	case Later:
		return "later"
	default:
		return "unknown"
	}
}

// Contains reports whether the month belongs to the sub-period.
func (p SubPeriod) Contains(m time.Month) bool {
	switch p {
	case Initial:
		return m < time.December
	case Later:
		return m == time.December
	default:
		return true
	}
}

// Range returns the dates covered by the sub-period of year.
func (p SubPeriod) Range(year int) date.Range {
	switch p {
	case Initial:
		return date.Months(year, time.January, time.November)
	case Later:
		return date.Months(year, time.December, time.December)
	default:
		return date.Year(year)
	}
}

// ParseSubPeriod parses a sub-period name.
func ParseSubPeriod(s string) (SubPeriod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all", "year":
		return All, nil
	case "initial", "jan-nov":
		return Initial, nil
	case "later", "dec", "december":
		return Later, nil
	default:
		return All, fmt.Errorf("unknown sub-period %q (want initial, later or all)", s)
	}
}
