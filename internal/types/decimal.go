package types

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of decimal places kept for every amount.
const MoneyPlaces = 2

var errInvalidDecimal = errors.New("A valid number is required.")

// Decimal is a fixed-point amount. It is emitted on the wire as a string with
// exactly MoneyPlaces decimals and accepted as either a JSON number or string.
type Decimal struct {
	decimal.Decimal
}

// NewDecimal parses s into a Decimal.
func NewDecimal(s string) (Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Decimal{}, errInvalidDecimal
	}
	return Decimal{d}, nil
}

// MustDecimal is NewDecimal for literals; it panics on malformed input.
func MustDecimal(s string) Decimal {
	d, err := NewDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// String renders the amount with MoneyPlaces decimals.
func (d Decimal) String() string {
	return d.StringFixed(MoneyPlaces)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errInvalidDecimal
	}

	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errInvalidDecimal
		}
		raw = s
	}

	v, err := NewDecimal(raw)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// Value stores the exact decimal text, never a float.
func (d Decimal) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan promotes the embedded decimal's Scan method
func (d *Decimal) Scan(value interface{}) error {
	return d.Decimal.Scan(value)
}

// FitsDigits reports whether d can be stored with at most digits significant
// digits, MoneyPlaces of them after the decimal point.
func (d Decimal) FitsDigits(digits int) bool {
	if !d.Round(MoneyPlaces).Equal(d.Decimal) {
		return false
	}
	whole := d.Abs().Truncate(0).String()
	if whole == "0" {
		return true
	}
	return len(whole) <= digits-MoneyPlaces
}
