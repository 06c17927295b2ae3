package parser

import (
	"strings"

	"github.com/ukaji3/xltable/pkg/xltable/models"
	"github.com/xuri/excelize/v2"
)

// DataBounds finds the bounding box of non-absent values.
// Returns nil when every value is absent.
func DataBounds(rows []models.Row) *models.Bounds {
	minRow, maxRow := -1, -1
	minCol, maxCol := -1, -1

	for rowIdx, row := range rows {
		for colIdx, v := range row {
			if v.IsAbsent() {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	if minRow < 0 {
		return nil
	}
	return &models.Bounds{
		R1: minRow + 1,
		C1: minCol + 1,
		R2: maxRow + 1,
		C2: maxCol + 1,
	}
}

// CountValues counts non-absent values within bounds.
func CountValues(rows []models.Row, b models.Bounds) int {
	count := 0
	for rowIdx := b.R1 - 1; rowIdx < b.R2 && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := b.C1 - 1; colIdx < b.C2 && colIdx < len(row); colIdx++ {
			if !row[colIdx].IsAbsent() {
				count++
			}
		}
	}
	return count
}

// ParseRef parses a range such as $A$1:$D$10, Sheet1!A1:D10 or a single
// cell A1. Returns nil for anything else.
func ParseRef(ref string) *models.Bounds {
	// Drop a sheet prefix
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		ref = ref[idx+1:]
	}
	ref = strings.ReplaceAll(strings.TrimSpace(ref), "$", "")

	parts := strings.Split(ref, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return nil
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil
	}
	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}

	return &models.Bounds{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}
}

// Crop returns the rows and columns inside b, re-based at the top-left
// corner. Rows shorter than the crop stay short.
func Crop(rows []models.Row, b models.Bounds) []models.Row {
	var out []models.Row
	for rowIdx := b.R1 - 1; rowIdx < b.R2 && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		cropped := models.Row{}
		for colIdx := b.C1 - 1; colIdx < b.C2 && colIdx < len(row); colIdx++ {
			cropped = append(cropped, row[colIdx])
		}
		out = append(out, cropped)
	}
	return out
}
