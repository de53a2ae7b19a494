package capgains

import (
	"strings"

	"github.com/google/uuid"
)

// OrderKeyer normalizes an order identifier into the key rows are grouped by.
type OrderKeyer interface {
	Key(orderID string) string
}

// DefaultKeyer is the keyer used when none is given.
var DefaultKeyer OrderKeyer = TruncatedKey{N: 19}

// TruncatedKey keeps the first N characters (runes) of the identifier.
// Surrounding spaces are not part of an identifier and are trimmed first.
//
// Some exports corrupt the tail of order ids, so rows of one order only share a
// prefix. This is a data quality workaround: two orders whose ids share the
// first N characters would be merged.
type TruncatedKey struct{ N int }

func (k TruncatedKey) Key(orderID string) string {
	id := strings.TrimSpace(orderID)
	n := 0
	for i := range id {
		if n == k.N {
			return id[:i]
		}
		n++
	}
	return id
}

// UUIDKey groups by the canonical form of well formed UUIDs and falls back to
// Fallback for the others.
type UUIDKey struct{ Fallback OrderKeyer }

func (k UUIDKey) Key(orderID string) string {
	if id, err := uuid.Parse(strings.TrimSpace(orderID)); err == nil {
		return id.String()
	}
	fallback := k.Fallback
	if fallback == nil {
		fallback = DefaultKeyer
	}
	return fallback.Key(orderID)
}

// ParseKeyer returns the keyer registered under name ("truncate" or "uuid").
func ParseKeyer(name string) (OrderKeyer, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "truncate":
		return DefaultKeyer, true
	case "uuid":
		return UUIDKey{}, true
	default:
		return nil, false
	}
}

// GroupOrders partitions the rows that belong to an order by their order key.
// Rows keep their relative order inside a group.
func GroupOrders(rows []LedgerRow, keyer OrderKeyer) map[string][]LedgerRow {
	if keyer == nil {
		keyer = DefaultKeyer
	}
	groups := make(map[string][]LedgerRow)
	for _, row := range rows {
		if !row.HasOrder() {
			continue
		}
		key := keyer.Key(row.OrderID)
		groups[key] = append(groups[key], row)
	}
	return groups
}
