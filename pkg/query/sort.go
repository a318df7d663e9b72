package query

import "strings"

// SortField pairs a view field name with a sort direction.
type SortField struct {
	Field      string `json:"field"`
	Descending bool   `json:"descending"`
}

// ParseSortFields parses a comma-separated sort expression into sort fields.
// A "-" prefix marks a field as descending: "name,-created_at".
func ParseSortFields(expr string) []SortField {
	if expr == "" {
		return nil
	}

	parts := strings.Split(expr, ",")
	fields := make([]SortField, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if strings.HasPrefix(part, "-") {
			fields = append(fields, SortField{Field: part[1:], Descending: true})
		} else {
			fields = append(fields, SortField{Field: part})
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}
