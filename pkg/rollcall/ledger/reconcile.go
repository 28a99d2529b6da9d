// Package ledger merges daily attendance into the attendance ledger and keeps
// its derived columns and summary rows consistent.
//
// Reconcile works on an in-memory table and performs no locking. A Store read,
// Reconcile and Store write form one read-modify-write cycle; callers sharing a
// ledger file between clients must serialize whole cycles themselves.
package ledger

import (
	"time"

	"github.com/ukaji3/rollcall-go/pkg/rollcall/models"
)

const (
	// InputDateLayout is the submission date format (DD.MM.YYYY, leading zeros optional).
	InputDateLayout = "2.1.2006"
	// ColumnDateLayout is the ledger column key format (DD-MM-YYYY).
	ColumnDateLayout = "02-01-2006"
)

// RollResolver maps a ledger NAME to a roll number.
type RollResolver interface {
	RollFor(name string) (string, bool)
}

// ColumnKey converts a DD.MM.YYYY submission date into its DD-MM-YYYY column name.
func ColumnKey(date string) (string, error) {
	t, err := time.Parse(InputDateLayout, date)
	if err != nil {
		return "", &DateFormatError{Input: date, Err: err}
	}
	return t.Format(ColumnDateLayout), nil
}

// Reconcile records absentRolls and odRolls for date in l and recomputes every
// derived figure. Students whose name does not resolve to a roll keep their
// existing cell. It returns the column key that was written.
func Reconcile(l *models.Ledger, date string, absentRolls, odRolls []string, rolls RollResolver) (string, error) {
	column, err := ColumnKey(date)
	if err != nil {
		return "", err
	}

	ensureSummaries(l)
	if !l.HasDate(column) {
		// Dates precede the trailing derived columns, so appending here places
		// the new column immediately before TOTAL.
		l.Dates = append(l.Dates, column)
	}

	absent := toSet(absentRolls)
	od := toSet(odRolls)
	for _, row := range l.Students {
		if row.Name == "" {
			continue
		}
		roll, ok := rolls.RollFor(row.Name)
		if !ok {
			continue
		}
		if row.Marks == nil {
			row.Marks = make(map[string]models.Status)
		}
		switch {
		case contains(absent, roll):
			row.Marks[column] = models.StatusAbsent
		case contains(od, roll):
			row.Marks[column] = models.StatusOD
		default:
			row.Marks[column] = models.StatusPresent
		}
	}

	UpdateSummaries(l, column)
	Recompute(l)
	return column, nil
}

func ensureSummaries(l *models.Ledger) {
	if l.PresentSummary == nil {
		l.PresentSummary = models.NewSummaryRow(models.RowPresentSummary)
	}
	if l.AbsentSummary == nil {
		l.AbsentSummary = models.NewSummaryRow(models.RowAbsentSummary)
	}
}

func toSet(rolls []string) map[string]struct{} {
	set := make(map[string]struct{}, len(rolls))
	for _, r := range rolls {
		set[r] = struct{}{}
	}
	return set
}

func contains(set map[string]struct{}, roll string) bool {
	_, ok := set[roll]
	return ok
}
