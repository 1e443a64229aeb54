package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// LineItem is one row of the ingest form.
type LineItem struct {
	ItemID      string `json:"itemId"`
	Description string `json:"description"`
	Qty         Number `json:"qty"`
	UnitPrice   Number `json:"unitPrice"`
}

// NormalizedLine is a line after coercion, ready to be sent upstream.
type NormalizedLine struct {
	ItemID      string
	Description string
	Qty         decimal.Decimal
	UnitPrice   decimal.Decimal
	Amount      decimal.Decimal
}

// Normalize coerces a form line: the quantity floors to an integer of at
// least 1, a missing or unparseable price becomes 0, and the line amount is
// price times quantity, exact.
func (l LineItem) Normalize() NormalizedLine {
	one := decimal.New(1, 0)

	qty := l.Qty.Floor()
	if qty.LessThan(one) {
		qty = one
	}

	price := l.UnitPrice.Decimal

	return NormalizedLine{
		ItemID:      l.ItemID,
		Description: l.Description,
		Qty:         qty,
		UnitPrice:   price,
		Amount:      price.Mul(qty),
	}
}

// SalesDocument is the common request shape for invoices and estimates.
type SalesDocument struct {
	CustomerID string     `json:"customerId"`
	Notes      string     `json:"notes"`
	AgentName  string     `json:"agentName"`
	Lines      []LineItem `json:"lines"`
}

func (d SalesDocument) Validate() error {
	if strings.TrimSpace(d.CustomerID) == "" {
		return fmt.Errorf("%w: customerId is required", ErrInvalidArgument)
	}

	if len(d.Lines) == 0 {
		return fmt.Errorf("%w: lines must not be empty", ErrInvalidArgument)
	}

	return nil
}

// PrivateNote composes the document note, prefixing the agent name when one
// is present.
func (d SalesDocument) PrivateNote() string {
	note := d.Notes
	if d.AgentName != "" {
		note = fmt.Sprintf("Agent: %s — %s", d.AgentName, d.Notes)
	}

	return strings.TrimSpace(note)
}

// NormalizedLines normalizes every line, preserving order.
func (d SalesDocument) NormalizedLines() []NormalizedLine {
	lines := make([]NormalizedLine, 0, len(d.Lines))

	for _, l := range d.Lines {
		lines = append(lines, l.Normalize())
	}

	return lines
}

// DocumentKind distinguishes the two sales document types.
type DocumentKind string

const (
	DocumentKindInvoice  DocumentKind = "invoice"
	DocumentKindEstimate DocumentKind = "estimate"
)

// CreatedDocument is the confirmation returned after an upstream create.
type CreatedDocument struct {
	ID          string
	DocNumber   string
	TotalAmount decimal.Decimal
}
