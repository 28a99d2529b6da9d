package roster

import (
	"path/filepath"
	"testing"

	"github.com/ukaji3/rollcall-go/pkg/rollcall/models"
	"github.com/xuri/excelize/v2"
)

func TestRead(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Roll No")
	f.SetCellValue(sheetName, "B1", "Student Name")
	f.SetCellValue(sheetName, "A2", 1)
	f.SetCellValue(sheetName, "B2", "Alice")
	f.SetCellValue(sheetName, "A3", "Roll No")
	f.SetCellValue(sheetName, "B3", "Student Name")
	f.SetCellValue(sheetName, "A4", "2")
	f.SetCellValue(sheetName, "B4", "Bob")
	f.SetCellValue(sheetName, "A5", 3.0)
	f.SetCellValue(sheetName, "B5", "Carol")

	path := filepath.Join(t.TempDir(), "students.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	r, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if r.Len() != 3 {
		t.Fatalf("Expected 3 students, got %d", r.Len())
	}
	tests := []struct {
		roll string
		name string
	}{
		{"1", "Alice"},
		{"2", "Bob"},
		{"3", "Carol"},
	}
	for _, tt := range tests {
		if name, ok := r.NameFor(tt.roll); !ok || name != tt.name {
			t.Errorf("NameFor(%q) = %q, %v, expected %q", tt.roll, name, ok, tt.name)
		}
		if roll, ok := r.RollFor(tt.name); !ok || roll != tt.roll {
			t.Errorf("RollFor(%q) = %q, %v, expected %q", tt.name, roll, ok, tt.roll)
		}
	}
	if _, ok := r.NameFor("Roll No"); ok {
		t.Error("Header label must not be a roll")
	}
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	r := Load(filepath.Join(t.TempDir(), "missing.xlsx"), nil)
	if r == nil {
		t.Fatal("Expected empty roster, got nil")
	}
	if r.Len() != 0 {
		t.Errorf("Expected 0 students, got %d", r.Len())
	}
	if _, ok := r.NameFor("1"); ok {
		t.Error("Expected no match in empty roster")
	}
}

func TestDuplicateNamesAreNotResolved(t *testing.T) {
	r := New([]models.Student{
		{Roll: "1", Name: "Kiran S"},
		{Roll: "2", Name: "Kiran S"},
		{Roll: "3", Name: "Teja S"},
	})

	if _, ok := r.RollFor("Kiran S"); ok {
		t.Error("Expected ambiguous name to be unresolved")
	}
	if roll, ok := r.RollFor("Teja S"); !ok || roll != "3" {
		t.Errorf("RollFor(Teja S) = %q, %v", roll, ok)
	}
	if name, ok := r.NameFor("2"); !ok || name != "Kiran S" {
		t.Errorf("NameFor(2) = %q, %v", name, ok)
	}
}

func TestStudentsOrder(t *testing.T) {
	r := New([]models.Student{
		{Roll: "10", Name: "C"},
		{Roll: "2", Name: "B"},
		{Roll: "1", Name: "A"},
	})

	got := r.Students()
	want := []string{"1", "2", "10"}
	for i, s := range got {
		if s.Roll != want[i] {
			t.Errorf("Students()[%d].Roll = %q, expected %q", i, s.Roll, want[i])
		}
	}
}

func TestWriteSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.xlsx")
	if err := Write(path, SampleStudents()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	r, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if r.Len() != 64 {
		t.Errorf("Expected 64 students, got %d", r.Len())
	}
	if name, _ := r.NameFor("64"); name != "Venkatesh K" {
		t.Errorf("NameFor(64) = %q, expected Venkatesh K", name)
	}
}

func TestReadKeepsTextRollsVerbatim(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Roll No")
	f.SetCellValue(sheetName, "B1", "Student Name")
	f.SetCellValue(sheetName, "A2", "007")
	f.SetCellValue(sheetName, "B2", "Bond")
	f.SetCellValue(sheetName, "A3", 8)
	f.SetCellValue(sheetName, "B3", "Moneypenny")

	path := filepath.Join(t.TempDir(), "students.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	r, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if name, ok := r.NameFor("007"); !ok || name != "Bond" {
		t.Errorf("NameFor(007) = %q, %v, expected Bond", name, ok)
	}
	if _, ok := r.NameFor("7"); ok {
		t.Error("Text roll 007 must not match 7")
	}
	if name, ok := r.NameFor("8"); !ok || name != "Moneypenny" {
		t.Errorf("NameFor(8) = %q, %v, expected Moneypenny", name, ok)
	}
}

func TestWriteReadLeadingZeroRoll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.xlsx")
	if err := Write(path, []models.Student{{Roll: "007", Name: "Bond"}, {Roll: "12", Name: "Q"}}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	r, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	want := []models.Student{{Roll: "007", Name: "Bond"}, {Roll: "12", Name: "Q"}}
	got := r.Students()
	if len(got) != len(want) {
		t.Fatalf("Students() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Students()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestBlankNamesAreNotResolved(t *testing.T) {
	r := New([]models.Student{{Roll: "1", Name: ""}, {Roll: "2", Name: "Bob"}})

	if _, ok := r.RollFor(""); ok {
		t.Error("Expected blank name to be unresolved")
	}
	if r.Len() != 2 {
		t.Errorf("Expected 2 rolls, got %d", r.Len())
	}
}
