// Package roster loads the roll-number/name mapping for a class.
package roster

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/go-kit/log"
	"github.com/ukaji3/rollcall-go/pkg/rollcall/models"
	"github.com/ukaji3/rollcall-go/pkg/rollcall/sheet"
	"github.com/xuri/excelize/v2"
)

// RollHeader is the roll column label of the roster source.
const RollHeader = "Roll No"

// Roster is an immutable bidirectional roll/name index.
type Roster struct {
	byRoll map[string]string
	byName map[string]string
	// ambiguous names map to more than one roll and are never resolved.
	ambiguous map[string]struct{}
}

// New builds a roster from entries. A later entry for the same roll wins.
// Blank and repeated names are left out of the name index.
func New(students []models.Student) *Roster {
	r := &Roster{
		byRoll:    make(map[string]string, len(students)),
		byName:    make(map[string]string, len(students)),
		ambiguous: make(map[string]struct{}),
	}
	for _, s := range students {
		r.byRoll[s.Roll] = s.Name
	}
	for roll, name := range r.byRoll {
		if name == "" {
			continue
		}
		if _, dup := r.byName[name]; dup {
			r.ambiguous[name] = struct{}{}
			continue
		}
		r.byName[name] = roll
	}
	for name := range r.ambiguous {
		delete(r.byName, name)
	}
	return r
}

// Read parses the first sheet of a two-column workbook: roll number, student name.
// The header row and any row repeating the roll header label are skipped.
// Number cells are read as integers ("7" for 7.0); text rolls are kept verbatim.
func Read(path string) (*Roster, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetName, err := sheet.ResolveSheet(f, "")
	if err != nil {
		return nil, err
	}
	rows, err := sheet.ReadRows(f, sheetName)
	if err != nil {
		return nil, err
	}

	header := sheet.HeaderRow(rows)
	if header < 0 {
		return New(nil), nil
	}

	var students []models.Student
	for rowIdx := header + 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		roll := sheet.Cell(row, 0)
		if roll == "" || roll == RollHeader {
			continue
		}
		numeric, err := sheet.IsNumberCell(f, sheetName, 1, rowIdx+1)
		if err != nil {
			return nil, err
		}
		if numeric {
			roll = sheet.CanonicalNumber(roll)
		}
		students = append(students, models.Student{Roll: roll, Name: sheet.Cell(row, 1)})
	}
	return New(students), nil
}

// Load reads the roster at path. On any error it logs and returns an empty roster.
func Load(path string, logger log.Logger) *Roster {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	r, err := Read(path)
	if err != nil {
		logger.Log("msg", "error loading roster", "path", path, "err", err)
		return New(nil)
	}
	if n := len(r.ambiguous); n > 0 {
		logger.Log("msg", fmt.Sprintf("%d duplicate names will not be matched in the ledger", n), "path", path)
	}
	logger.Log("msg", fmt.Sprintf("Loaded %d students", r.Len()), "path", path)
	return r
}

// Len returns the number of distinct rolls.
func (r *Roster) Len() int {
	return len(r.byRoll)
}

// NameFor returns the name registered for roll.
func (r *Roster) NameFor(roll string) (string, bool) {
	name, ok := r.byRoll[roll]
	return name, ok
}

// RollFor returns the roll registered for name.
func (r *Roster) RollFor(name string) (string, bool) {
	roll, ok := r.byName[name]
	return roll, ok
}

// Students returns all entries ordered numerically by roll, non-numeric rolls last.
func (r *Roster) Students() []models.Student {
	out := make([]models.Student, 0, len(r.byRoll))
	for roll, name := range r.byRoll {
		out = append(out, models.Student{Roll: roll, Name: name})
	}
	sort.Slice(out, func(i, j int) bool {
		a, errA := strconv.Atoi(out[i].Roll)
		b, errB := strconv.Atoi(out[j].Roll)
		switch {
		case errA == nil && errB == nil:
			return a < b
		case errA == nil:
			return true
		case errB == nil:
			return false
		}
		return out[i].Roll < out[j].Roll
	})
	return out
}
