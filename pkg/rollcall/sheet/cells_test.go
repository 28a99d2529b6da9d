package sheet

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestReadRows(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", " Header1 ")
	f.SetCellValue(sheetName, "B1", "Header2")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B4", "Text")

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	rows, err := ReadRows(f2, sheetName)
	if err != nil {
		t.Fatalf("ReadRows failed: %v", err)
	}

	if len(rows) != 4 {
		t.Fatalf("Expected 4 rows, got %d", len(rows))
	}
	if rows[0][0] != "Header1" {
		t.Errorf("Expected trimmed 'Header1', got %q", rows[0][0])
	}
	if rows[1][0] != "100" {
		t.Errorf("Expected '100', got %q", rows[1][0])
	}
	if Cell(rows[2], 0) != "" {
		t.Errorf("Expected blank interior row, got %v", rows[2])
	}
	if Cell(rows[3], 1) != "Text" {
		t.Errorf("Expected 'Text', got %q", Cell(rows[3], 1))
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
	}

	for _, tt := range tests {
		result := ParseValue(tt.input)
		if result != tt.expected {
			t.Errorf("ParseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}

func TestCanonicalNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"7", "7"},
		{"7.0", "7"},
		{"7.5", "7.5"},
		{"Roll No", "Roll No"},
		{"", ""},
	}

	for _, tt := range tests {
		if result := CanonicalNumber(tt.input); result != tt.expected {
			t.Errorf("CanonicalNumber(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestHeaderRow(t *testing.T) {
	tests := []struct {
		rows     [][]string
		expected int
	}{
		{nil, -1},
		{[][]string{{}, {""}}, -1},
		{[][]string{{"NAME"}}, 0},
		{[][]string{{}, {"", "NAME"}, {"x"}}, 1},
	}

	for _, tt := range tests {
		if result := HeaderRow(tt.rows); result != tt.expected {
			t.Errorf("HeaderRow(%v) = %d, expected %d", tt.rows, result, tt.expected)
		}
	}
}

func TestResolveSheet(t *testing.T) {
	f, err := NewWorkbook("Ledger")
	if err != nil {
		t.Fatalf("NewWorkbook failed: %v", err)
	}
	defer f.Close()

	if name, err := ResolveSheet(f, ""); err != nil || name != "Ledger" {
		t.Errorf("ResolveSheet(\"\") = %q, %v, expected Ledger", name, err)
	}
	if _, err := ResolveSheet(f, "Missing"); err == nil {
		t.Error("Expected error for missing sheet")
	}
}

func TestIsNumberCell(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", 7)
	f.SetCellValue(sheetName, "A2", 7.0)
	f.SetCellValue(sheetName, "A3", "007")

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	tests := []struct {
		row      int
		expected bool
	}{
		{1, true},
		{2, true},
		{3, false},
	}

	for _, tt := range tests {
		got, err := IsNumberCell(f2, sheetName, 1, tt.row)
		if err != nil {
			t.Fatalf("IsNumberCell(row %d) failed: %v", tt.row, err)
		}
		if got != tt.expected {
			t.Errorf("IsNumberCell(row %d) = %v, expected %v", tt.row, got, tt.expected)
		}
	}
}

func TestHasData(t *testing.T) {
	tests := []struct {
		row      []string
		expected bool
	}{
		{nil, false},
		{[]string{"", ""}, false},
		{[]string{"", "P"}, true},
	}

	for _, tt := range tests {
		if got := HasData(tt.row); got != tt.expected {
			t.Errorf("HasData(%v) = %v, expected %v", tt.row, got, tt.expected)
		}
	}
}
