package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ResolveSheet returns name if the workbook has it, or the first sheet when name is empty.
func ResolveSheet(f *excelize.File, name string) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("workbook has no sheets")
	}
	if name == "" {
		return sheets[0], nil
	}
	for _, s := range sheets {
		if s == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("sheet %q not found", name)
}

// NewWorkbook creates a workbook whose only sheet is named sheetName.
func NewWorkbook(sheetName string) (*excelize.File, error) {
	f := excelize.NewFile()
	if sheetName != "" && sheetName != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheetName); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

// WriteRows writes rows starting at A1, one SetSheetRow call per row.
// Nil values leave the cell blank.
func WriteRows(f *excelize.File, sheetName string, rows [][]interface{}) error {
	for rowIdx, row := range rows {
		cellName, err := excelize.CoordinatesToCellName(1, rowIdx+1)
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(sheetName, cellName, &values); err != nil {
			return err
		}
	}
	return nil
}
