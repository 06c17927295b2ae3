package models

// Row is an ordered sequence of cell values. A zero-length Row stands for
// a row that is absent in the source sheet.
type Row []Value

// Sheet is a named, ordered collection of rows.
type Sheet struct {
	// Name is the sheet name. Empty for a Missing placeholder.
	Name string `json:"name"`
	// Rows holds the sheet rows in source order.
	Rows []Row `json:"rows"`
	// Missing marks the placeholder recorded for a sheet the workbook
	// reported as absent.
	Missing bool `json:"missing,omitempty"`
	// Range is the used range in A1 notation (informational, decode only).
	Range string `json:"range,omitempty"`
}

// LastRowIndex returns the 0-based index of the last row, or -1.
func (s *Sheet) LastRowIndex() int {
	return len(s.Rows) - 1
}

// Cell returns the value at the 0-based coordinates, Absent when out of range.
func (s *Sheet) Cell(row, col int) Value {
	if row < 0 || row >= len(s.Rows) {
		return Absent()
	}
	r := s.Rows[row]
	if col < 0 || col >= len(r) {
		return Absent()
	}
	return r[col]
}

// Table maps sheet names to rows, keeping sheet order.
type Table struct {
	// BookName is the workbook file name (no path), set on decode.
	BookName string `json:"book_name,omitempty"`
	// Sheets holds the sheets in workbook order. Names are unique.
	Sheets []Sheet `json:"sheets"`
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{Sheets: []Sheet{}}
}

// Put stores rows under name, replacing the rows of an existing sheet with
// the same name in place.
func (t *Table) Put(name string, rows []Row) {
	for i := range t.Sheets {
		if !t.Sheets[i].Missing && t.Sheets[i].Name == name {
			t.Sheets[i].Rows = rows
			return
		}
	}
	t.Sheets = append(t.Sheets, Sheet{Name: name, Rows: rows})
}

// PutMissing records the placeholder for an absent sheet. A second call
// overwrites the first, so a table holds at most one placeholder.
func (t *Table) PutMissing() {
	for i := range t.Sheets {
		if t.Sheets[i].Missing {
			t.Sheets[i] = Sheet{Missing: true}
			return
		}
	}
	t.Sheets = append(t.Sheets, Sheet{Missing: true})
}

// Sheet looks a sheet up by name.
func (t *Table) Sheet(name string) (*Sheet, bool) {
	for i := range t.Sheets {
		if !t.Sheets[i].Missing && t.Sheets[i].Name == name {
			return &t.Sheets[i], true
		}
	}
	return nil, false
}

// Names returns the sheet names in order, skipping placeholders.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.Sheets))
	for _, s := range t.Sheets {
		if !s.Missing {
			names = append(names, s.Name)
		}
	}
	return names
}

// RowsOf builds rows from plain Go values using FromAny.
func RowsOf(rows ...[]interface{}) []Row {
	out := make([]Row, len(rows))
	for i, r := range rows {
		row := make(Row, len(r))
		for j, v := range r {
			row[j] = FromAny(v)
		}
		out[i] = row
	}
	return out
}
