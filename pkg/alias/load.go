package alias

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// ParseTable decodes an alias table from JSON of the form
//
//	{"1": ["Гражданский кодекс", "ГК РФ"], "2": ["Налоговый кодекс"]}
//
// where keys are canonical law ids.
func ParseTable(data []byte) (map[LawID][]string, error) {
	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode alias table: %w", err)
	}

	table := make(map[LawID][]string, len(raw))
	for key, aliases := range raw {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid law id %q in alias table: %w", key, err)
		}
		table[LawID(id)] = aliases
	}
	return table, nil
}

// LoadFile reads a JSON alias table from disk and builds an index from it.
func LoadFile(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read alias table: %w", err)
	}
	table, err := ParseTable(data)
	if err != nil {
		return nil, err
	}
	return NewIndex(table), nil
}
