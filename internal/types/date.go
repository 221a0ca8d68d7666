package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

var errInvalidDate = errors.New("Date has wrong format. Use one of these formats instead: YYYY-MM-DD.")

// storedDateLayouts are the textual forms SQLite drivers hand back for DATE columns.
var storedDateLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	DateLayout,
}

// Date is a calendar date without a time of day, wrapping gorm.io/datatypes.Date
// so storage follows the driver's DATE type and the wire form is YYYY-MM-DD.
type Date struct {
	datatypes.Date
}

// NewDate builds a Date in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{datatypes.Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, errInvalidDate
	}
	return Date{datatypes.Date(t)}, nil
}

// MustDate is ParseDate for literals; it panics on malformed input.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Time returns the date as midnight in its own location.
func (d Date) Time() time.Time {
	return time.Time(d.Date)
}

// String renders the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.Time().Format(DateLayout)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errInvalidDate
	}
	v, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// Value promotes the embedded Date's Value method
func (d Date) Value() (driver.Value, error) {
	return d.Date.Value()
}

// Scan accepts the text forms some drivers return for DATE columns before
// falling back to the embedded Date's Scan method.
func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		return d.scanText(v)
	case []byte:
		return d.scanText(string(v))
	}
	return d.Date.Scan(value)
}

func (d *Date) scanText(s string) error {
	for _, layout := range storedDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			y, m, day := t.Date()
			*d = NewDate(y, m, day)
			return nil
		}
	}
	return errInvalidDate
}

// GormDataType keeps the column type a plain DATE on every driver.
func (Date) GormDataType() string {
	return "date"
}
