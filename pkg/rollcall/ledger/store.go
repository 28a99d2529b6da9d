package ledger

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/rollcall-go/pkg/rollcall/models"
	"github.com/ukaji3/rollcall-go/pkg/rollcall/sheet"
	"github.com/xuri/excelize/v2"
)

// Store reads and rewrites the ledger workbook as a whole.
type Store struct {
	// Path is the workbook path.
	Path string
	// Sheet is the worksheet holding the ledger; empty selects the first sheet.
	Sheet string
}

// NewStore creates a Store for the workbook at path.
func NewStore(path, sheetName string) *Store {
	return &Store{Path: path, Sheet: sheetName}
}

// Read loads the full ledger table.
func (s *Store) Read() (*models.Ledger, error) {
	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			err = ErrLedgerNotFound
		}
		return nil, NewIOError(s.Path, "read", err)
	}
	defer f.Close()

	sheetName, err := sheet.ResolveSheet(f, s.Sheet)
	if err != nil {
		return nil, NewIOError(s.Path, "read", err)
	}
	rows, err := sheet.ReadRows(f, sheetName)
	if err != nil {
		return nil, NewIOError(s.Path, "read", err)
	}

	l, err := decode(sheetName, rows)
	if err != nil {
		return nil, NewIOError(s.Path, "read", err)
	}
	return l, nil
}

// Write replaces the workbook with l. The table is written to a temporary file
// in the same directory and renamed over Path, keeping Path's permissions
// (0644 for a new file).
func (s *Store) Write(l *models.Ledger) error {
	sheetName := l.SheetName
	if sheetName == "" {
		sheetName = s.Sheet
	}
	if sheetName == "" {
		sheetName = "Sheet1"
	}

	f, err := sheet.NewWorkbook(sheetName)
	if err != nil {
		return NewIOError(s.Path, "write", err)
	}
	defer f.Close()

	if err := sheet.WriteRows(f, sheetName, encode(l)); err != nil {
		return NewIOError(s.Path, "write", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.Path), ".ledger-*.xlsx")
	if err != nil {
		return NewIOError(s.Path, "write", err)
	}
	tmpName := tmp.Name()
	if _, err := f.WriteTo(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return NewIOError(s.Path, "write", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return NewIOError(s.Path, "write", err)
	}
	mode := os.FileMode(0644)
	if info, err := os.Stat(s.Path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		os.Remove(tmpName)
		return NewIOError(s.Path, "write", err)
	}
	if err := os.Rename(tmpName, s.Path); err != nil {
		os.Remove(tmpName)
		return NewIOError(s.Path, "write", err)
	}
	return nil
}

// decode builds a ledger from sheet rows. The first non-blank row is the header.
// Rows with data but a blank NAME stay as student rows; fully blank rows are dropped.
func decode(sheetName string, rows [][]string) (*models.Ledger, error) {
	headerIdx := sheet.HeaderRow(rows)
	if headerIdx < 0 {
		return nil, fmt.Errorf("%w: empty sheet", ErrMalformedLedger)
	}
	header := rows[headerIdx]

	nameCol, totalCol := -1, -1
	trailing := make(map[string]int)
	for colIdx, label := range header {
		switch {
		case label == models.ColumnName && nameCol < 0:
			nameCol = colIdx
		case label == models.ColumnTotal && totalCol < 0:
			totalCol = colIdx
		}
		if totalCol >= 0 && colIdx >= totalCol {
			if _, seen := trailing[label]; !seen {
				trailing[label] = colIdx
			}
		}
	}
	if nameCol < 0 || totalCol < 0 || totalCol < nameCol {
		return nil, fmt.Errorf("%w: header needs %s before %s", ErrMalformedLedger, models.ColumnName, models.ColumnTotal)
	}

	l := &models.Ledger{SheetName: sheetName}
	dateCols := make(map[string]int)
	for colIdx := nameCol + 1; colIdx < totalCol; colIdx++ {
		date := header[colIdx]
		if date == "" || l.HasDate(date) {
			continue
		}
		l.Dates = append(l.Dates, date)
		dateCols[date] = colIdx
	}

	for _, row := range rows[headerIdx+1:] {
		name := sheet.Cell(row, nameCol)
		switch name {
		case models.PresentSummaryLabel:
			l.PresentSummary = decodeSummary(models.RowPresentSummary, row, dateCols)
		case models.AbsentSummaryLabel:
			l.AbsentSummary = decodeSummary(models.RowAbsentSummary, row, dateCols)
		default:
			if !sheet.HasData(row) {
				continue
			}
			student := models.NewStudentRow(name)
			for date, colIdx := range dateCols {
				if v := sheet.Cell(row, colIdx); v != "" {
					student.Marks[date] = models.Status(v)
				}
			}
			student.Stats = decodeStats(row, trailing)
			l.Students = append(l.Students, student)
		}
	}
	ensureSummaries(l)
	return l, nil
}

func decodeSummary(kind models.RowKind, row []string, dateCols map[string]int) *models.LedgerRow {
	summary := models.NewSummaryRow(kind)
	for date, colIdx := range dateCols {
		if n, ok := sheet.ParseValue(sheet.CanonicalNumber(sheet.Cell(row, colIdx))).(int64); ok {
			summary.Counts[date] = int(n)
		}
	}
	return summary
}

func decodeStats(row []string, trailing map[string]int) models.Stats {
	intAt := func(label string) int {
		colIdx, ok := trailing[label]
		if !ok {
			return 0
		}
		n, _ := sheet.ParseValue(sheet.CanonicalNumber(sheet.Cell(row, colIdx))).(int64)
		return int(n)
	}

	s := models.Stats{
		Total:    intAt(models.ColumnTotal),
		Present:  intAt(models.ColumnPresent),
		OD:       intAt(models.ColumnOD),
		Attended: intAt(models.ColumnAttended),
	}
	if colIdx, ok := trailing[models.ColumnPercentage]; ok {
		switch v := sheet.ParseValue(sheet.Cell(row, colIdx)).(type) {
		case int64:
			pct := float64(v)
			s.Percentage = &pct
		case float64:
			s.Percentage = &v
		}
	}
	return s
}

// encode renders the ledger as sheet rows: header, students, then the two summary rows.
func encode(l *models.Ledger) [][]interface{} {
	header := l.Header()
	out := make([][]interface{}, 0, len(l.Students)+3)

	headerRow := make([]interface{}, len(header))
	for i, label := range header {
		headerRow[i] = label
	}
	out = append(out, headerRow)

	for _, student := range l.Students {
		row := make([]interface{}, 0, len(header))
		row = append(row, student.Name)
		for _, date := range l.Dates {
			if status, ok := student.Marks[date]; ok && status != models.StatusUnrecorded {
				row = append(row, string(status))
			} else {
				row = append(row, nil)
			}
		}
		s := student.Stats
		var pct interface{}
		if s.Percentage != nil {
			pct = *s.Percentage
		}
		row = append(row, s.Total, s.Present, s.OD, s.Attended, pct)
		out = append(out, row)
	}

	ensureSummaries(l)
	for _, summary := range []*models.LedgerRow{l.PresentSummary, l.AbsentSummary} {
		row := make([]interface{}, len(header))
		row[0] = summary.Name
		for i, date := range l.Dates {
			if n, ok := summary.Counts[date]; ok {
				row[1+i] = n
			}
		}
		out = append(out, row)
	}
	return out
}
