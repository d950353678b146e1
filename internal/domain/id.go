package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is an upstream identifier. The source may encode it as a JSON string or number;
// both decode to the same textual form so ticket.userId can be matched against user.id.
type ID string

// UnmarshalJSON accepts either a string or a number.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string {
	return string(id)
}
