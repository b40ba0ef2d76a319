package model

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidPriceFormat is returned when a price cannot be parsed as a
// fixed-point decimal.
var ErrInvalidPriceFormat = errors.New("invalid price format")

// Price is a monetary amount with exactly two decimal digits of precision.
// It accepts both JSON numbers and JSON strings ("19.99" and 19.99 parse to
// the same value) and is stored as a decimal column.
type Price struct {
	decimal.Decimal
}

// NewPrice rounds the given decimal to two digits
func NewPrice(d decimal.Decimal) Price {
	return Price{d.Round(2)}
}

// ParsePrice parses a decimal string into a Price
func ParsePrice(s string) (Price, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Price{}, ErrInvalidPriceFormat
	}
	return NewPrice(d), nil
}

func (p *Price) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" || s == "null" {
		p.Decimal = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return ErrInvalidPriceFormat
	}
	p.Decimal = d.Round(2)
	return nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(p.StringFixed(2))), nil
}

// GormDataType keeps price columns fixed-point in the database
func (Price) GormDataType() string {
	return "decimal(10,2)"
}
