package entity

import (
	"bytes"

	"github.com/shopspring/decimal"
)

// Number is a decimal that survives whatever the ingest form manages to
// send: a JSON number, a numeric string, null, or garbage. Anything
// unparseable decodes to zero instead of failing the whole payload.
type Number struct {
	decimal.Decimal
}

func NewNumber(d decimal.Decimal) Number {
	return Number{Decimal: d}
}

func (n *Number) UnmarshalJSON(b []byte) error {
	s := string(bytes.Trim(bytes.TrimSpace(b), `"`))
	if s == "" || s == "null" {
		n.Decimal = decimal.Zero
		return nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		n.Decimal = decimal.Zero
		return nil
	}

	n.Decimal = d

	return nil
}
