package capgains

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedDescription is returned when an order has no parsable action line.
	ErrMalformedDescription = errors.New("malformed description")
	// ErrMissingFxRow is returned when a USD trade has no currency conversion line in its order.
	ErrMissingFxRow = errors.New("missing FX row")
	// ErrZeroCostBasis is returned when a return is asked over an empty cost basis.
	ErrZeroCostBasis = errors.New("zero cost basis")
)

// DescriptionError reports the ledger row whose description could not be parsed.
type DescriptionError struct {
	Description string
	Row         LedgerRow
	Err         error // parse detail, may be nil
}

func (e *DescriptionError) Error() string {
	msg := fmt.Sprintf("%v %q (date %s %s, product %q, order %q)",
		ErrMalformedDescription, e.Description, e.Row.Date, e.Row.Time, e.Row.Product, e.Row.OrderID)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DescriptionError) Unwrap() error { return ErrMalformedDescription }

// MissingFXError reports an order traded in a foreign currency without its conversion line.
type MissingFXError struct {
	OrderKey  string
	Direction Direction
	Label     string
}

func (e *MissingFXError) Error() string {
	return fmt.Sprintf("%v: order %q (%s) has no %q row in EUR", ErrMissingFxRow, e.OrderKey, e.Direction, e.Label)
}

func (e *MissingFXError) Unwrap() error { return ErrMissingFxRow }
