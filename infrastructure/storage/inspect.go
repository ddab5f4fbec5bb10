package storage

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Prefixes lists the key namespaces written by the repositories, in scan order.
var Prefixes = []string{userPrefix, listPrefix, memberPrefix, todoPrefix}

// Row is a human readable view of a stored record, used by the inspection tools.
type Row struct {
	Key    string
	Kind   string
	ID     string
	Detail string
}

// Describe decodes a raw key/value pair into a Row.
// Unknown prefixes are reported as RAW with the value untouched.
func Describe(key string, val []byte) (Row, error) {
	row := Row{Key: key, Kind: "RAW", Detail: string(val)}
	switch {
	case strings.HasPrefix(key, userPrefix):
		var rec userRecord
		if err := json.Unmarshal(val, &rec); err != nil {
			return row, fmt.Errorf("decode %s: %w", key, err)
		}
		row.Kind, row.ID, row.Detail = "USER", rec.ID, rec.DisplayName
	case strings.HasPrefix(key, listPrefix):
		var rec listRecord
		if err := json.Unmarshal(val, &rec); err != nil {
			return row, fmt.Errorf("decode %s: %w", key, err)
		}
		row.Kind, row.ID = "LIST", rec.ID
		row.Detail = fmt.Sprintf("%s (owner %s)", rec.Name, shortID(rec.OwnerID))
	case strings.HasPrefix(key, memberPrefix):
		var rec memberRecord
		if err := json.Unmarshal(val, &rec); err != nil {
			return row, fmt.Errorf("decode %s: %w", key, err)
		}
		row.Kind, row.ID = "MEMBER", rec.UserID
		row.Detail = fmt.Sprintf("%s in list %s", rec.Role, shortID(rec.ListID))
	case strings.HasPrefix(key, todoPrefix):
		var rec todoRecord
		if err := json.Unmarshal(val, &rec); err != nil {
			return row, fmt.Errorf("decode %s: %w", key, err)
		}
		done := " "
		if rec.Completed {
			done = "x"
		}
		row.Kind, row.ID = "TODO", rec.ID
		row.Detail = fmt.Sprintf("[%s] %s", done, rec.Title)
	}
	return row, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
