package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Item is the projection of an upstream item served to the ingest form.
type Item struct {
	ID        string
	Name      string
	SKU       string
	UnitPrice decimal.Decimal
	QtyOnHand *decimal.Decimal // nil when the item does not track stock
}

// Customer is the projection of an upstream customer.
type Customer struct {
	ID    string
	Name  string
	Email *string
}

// MatchesName reports whether name contains q, case-insensitively. An empty
// query matches everything.
func MatchesName(name, q string) bool {
	if q == "" {
		return true
	}

	return strings.Contains(strings.ToLower(name), strings.ToLower(q))
}
