// Package sheet provides excelize helpers shared by the roster and ledger readers.
package sheet

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadRows returns the trimmed cell text of every row in a sheet.
// Trailing blank rows are dropped; interior blank rows are kept as empty slices.
func ReadRows(f *excelize.File, sheetName string) ([][]string, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		for colIdx, cellValue := range row {
			row[colIdx] = strings.TrimSpace(cellValue)
		}
	}

	_, maxRow := findRowBounds(rows)
	return rows[:maxRow+1], nil
}

// Cell returns row[idx] or "" when the row is shorter.
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// ParseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func ParseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// CanonicalNumber renders integral numeric text without a fractional part,
// so a number cell holding 7 or 7.0 reads back as "7". Other text is returned as is.
// Apply it only to number cells; text cells keep leading zeros.
func CanonicalNumber(s string) string {
	switch v := ParseValue(s).(type) {
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
	}
	return s
}

// IsNumberCell reports whether the cell at 1-based col and row is stored as a
// number rather than text. Cells written without a type attribute are numbers.
func IsNumberCell(f *excelize.File, sheetName string, col, row int) (bool, error) {
	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return false, err
	}
	cellType, err := f.GetCellType(sheetName, cellName)
	if err != nil {
		return false, err
	}
	return cellType == excelize.CellTypeNumber || cellType == excelize.CellTypeUnset, nil
}
