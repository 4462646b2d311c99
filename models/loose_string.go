package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// LooseString is a string that also accepts a JSON number or null when
// decoded. Numbers keep their literal form, so 1712345678901 becomes
// "1712345678901".
type LooseString string

// UnmarshalJSON implements [json.Unmarshaler].
func (l *LooseString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*l = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*l = LooseString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number: %w", err)
	}
	*l = LooseString(n.String())
	return nil
}

// String returns the underlying value.
func (l LooseString) String() string {
	return string(l)
}
