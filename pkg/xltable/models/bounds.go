package models

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Bounds represents a cell rectangle.
type Bounds struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// Ref renders the bounds in A1 notation, e.g. "A1:D10".
func (b Bounds) Ref() string {
	start, err := excelize.CoordinatesToCellName(b.C1, b.R1)
	if err != nil {
		return ""
	}
	end, err := excelize.CoordinatesToCellName(b.C2, b.R2)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s:%s", start, end)
}

// Contains reports whether the 1-based cell lies inside the bounds.
func (b Bounds) Contains(row, col int) bool {
	return row >= b.R1 && row <= b.R2 && col >= b.C1 && col <= b.C2
}
