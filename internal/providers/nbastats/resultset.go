package nbastats

import (
	"fmt"
	"strconv"
	"strings"
)

func errMissingSets(endpoint string) error {
	return fmt.Errorf("nbastats: %s response has no result sets", endpoint)
}

// set returns the named result set from the envelope.
func (e *envelope) set(name string) (*resultSet, error) {
	for i := range e.ResultSets {
		if e.ResultSets[i].Name == name {
			return &e.ResultSets[i], nil
		}
	}
	return nil, fmt.Errorf("nbastats: result set %q missing", name)
}

// columns resolves header names to row indexes up front so malformed
// responses fail loudly instead of mapping garbage.
type columns struct {
	idx map[string]int
}

func (rs *resultSet) columns(names ...string) (columns, error) {
	idx := make(map[string]int, len(names))
	for _, name := range names {
		found := -1
		for i, header := range rs.Headers {
			if header == name {
				found = i
				break
			}
		}
		if found < 0 {
			return columns{}, fmt.Errorf("nbastats: result set %q missing header %q", rs.Name, name)
		}
		idx[name] = found
	}
	return columns{idx: idx}, nil
}

func (c columns) str(row []any, name string) string {
	i := c.idx[name]
	if i >= len(row) {
		return ""
	}
	switch val := row[i].(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return ""
	}
}

func (c columns) float(row []any, name string) float64 {
	i := c.idx[name]
	if i >= len(row) {
		return 0
	}
	switch val := row[i].(type) {
	case float64:
		return val
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

func (c columns) int(row []any, name string) int {
	return int(c.float(row, name))
}
