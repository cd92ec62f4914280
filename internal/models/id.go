package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is an optional record identity.
//
// The store assigns identities starting at 1 (SQLite AUTOINCREMENT), so a
// client-supplied null, zero or negative number decodes to an absent ID
// rather than to an identity that can never exist. Numeric strings are
// accepted for clients that send path-like values in bodies.
type ID struct {
	value int64
	valid bool
}

// NewID returns a present ID, or an absent one when v is not positive.
func NewID(v int64) ID {
	if v <= 0 {
		return ID{}
	}
	return ID{value: v, valid: true}
}

// Get returns the identity and whether it is present.
func (id ID) Get() (int64, bool) {
	return id.value, id.valid
}

// Present reports whether the ID carries an identity.
func (id ID) Present() bool {
	return id.valid
}

// String implements fmt.Stringer.
func (id ID) String() string {
	if !id.valid {
		return "<none>"
	}
	return strconv.FormatInt(id.value, 10)
}

// MarshalJSON encodes an absent ID as null.
func (id ID) MarshalJSON() ([]byte, error) {
	if !id.valid {
		return []byte("null"), nil
	}
	return strconv.AppendInt(nil, id.value, 10), nil
}

// UnmarshalJSON accepts null, integers and integer strings.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ID{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid id: %w", err)
		}
		if s == "" {
			*id = ID{}
			return nil
		}
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", s)
		}
		*id = NewID(v)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid id: %w", err)
	}
	v, err := n.Int64()
	if err != nil {
		return fmt.Errorf("invalid id %s: must be an integer", n)
	}
	*id = NewID(v)
	return nil
}
