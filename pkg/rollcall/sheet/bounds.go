package sheet

// HeaderRow returns the index of the first row holding any data, or -1 for a blank sheet.
func HeaderRow(rows [][]string) int {
	minRow, _ := findRowBounds(rows)
	return minRow
}

// HasData reports whether any cell of row is non-empty.
func HasData(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return true
		}
	}
	return false
}

// findRowBounds returns the first and last row indexes holding data, or -1, -1.
func findRowBounds(rows [][]string) (minRow, maxRow int) {
	minRow, maxRow = -1, -1
	for rowIdx, row := range rows {
		if !HasData(row) {
			continue
		}
		if minRow < 0 {
			minRow = rowIdx
		}
		maxRow = rowIdx
	}
	return
}
