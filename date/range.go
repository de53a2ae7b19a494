package date

import (
	"fmt"
	"time"
)

// Range represents a range of dates.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Year returns the range covering the whole calendar year.
func Year(year int) Range {
	return Range{From: New(year, time.January, 1), To: New(year, time.December, 31)}
}

// Months returns the range from the first day of month 'from' to the last day of month 'to' in year.
func Months(year int, from, to time.Month) Range {
	return NewRange(New(year, from, 1), New(year, to+1, 0))
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return (!date.Before(r.From) && !date.After(r.To)) }

// Identifier compute a unique identifier for the Range.
func (r Range) Identifier() string {
	if r == Year(r.From.Year()) {
		return r.From.Format("2006")
	}
	return fmt.Sprintf("%s_%s", r.From, r.To)
}

func (r Range) String() string { return fmt.Sprintf("%s to %s", r.From, r.To) }
