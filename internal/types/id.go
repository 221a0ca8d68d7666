package types

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

var errIncorrectID = errors.New("Incorrect type. Expected pk value.")

// ID is a record identity that can be unmarshaled from either a JSON number or a JSON string.
type ID uint64

// UnmarshalJSON implements the json.Unmarshaler interface.
func (id *ID) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return errIncorrectID
	}

	// Try unmarshaling as a number first
	var n uint64
	if err := json.Unmarshal(data, &n); err == nil {
		return id.set(n)
	}

	// Try unmarshaling as a string
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errIncorrectID
	}
	val, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return errIncorrectID
	}
	return id.set(val)
}

func (id *ID) set(n uint64) error {
	if n == 0 {
		return errIncorrectID
	}
	*id = ID(n)
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(uint64(id))
}

// Uint64 converts ID back to uint64.
func (id ID) Uint64() uint64 {
	return uint64(id)
}
