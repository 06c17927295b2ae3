// Package output serializes tables to and from JSON.
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ukaji3/xltable/pkg/xltable/models"
)

// ToJSON serializes a table.
func ToJSON(table *models.Table, pretty bool) ([]byte, error) {
	return marshal(table, pretty)
}

// SheetToJSON serializes a single sheet.
func SheetToJSON(sheet *models.Sheet, pretty bool) ([]byte, error) {
	return marshal(sheet, pretty)
}

// FromJSON parses a table written by ToJSON. Sheet names must be unique,
// ignoring case as workbooks do.
func FromJSON(data []byte) (*models.Table, error) {
	var table models.Table
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(table.Sheets))
	for _, s := range table.Sheets {
		if s.Missing {
			continue
		}
		key := strings.ToLower(s.Name)
		if seen[key] {
			return nil, fmt.Errorf("duplicate sheet name %q", s.Name)
		}
		seen[key] = true
	}
	if table.Sheets == nil {
		table.Sheets = []models.Sheet{}
	}
	return &table, nil
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
