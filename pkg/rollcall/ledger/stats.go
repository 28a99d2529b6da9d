package ledger

import (
	"math"

	"github.com/ukaji3/rollcall-go/pkg/rollcall/models"
)

// UpdateSummaries writes the P and AB counts of column into the two summary rows.
func UpdateSummaries(l *models.Ledger, column string) {
	ensureSummaries(l)

	present, absent := 0, 0
	for _, row := range l.Students {
		switch row.Marks[column] {
		case models.StatusPresent:
			present++
		case models.StatusAbsent:
			absent++
		}
	}

	if l.PresentSummary.Counts == nil {
		l.PresentSummary.Counts = make(map[string]int)
	}
	if l.AbsentSummary.Counts == nil {
		l.AbsentSummary.Counts = make(map[string]int)
	}
	l.PresentSummary.Counts[column] = present
	l.AbsentSummary.Counts[column] = absent
}

// Recompute rebuilds the derived columns of every student row from all date columns.
func Recompute(l *models.Ledger) {
	for _, row := range l.Students {
		row.Stats = ComputeStats(row, l.Dates)
	}
}

// ComputeStats derives TOTAL, P, OD, TOTAL.1 and PERCENTAGE for one row.
func ComputeStats(row *models.LedgerRow, dates []string) models.Stats {
	var s models.Stats
	for _, date := range dates {
		status := row.Marks[date]
		if !status.Recorded() {
			continue
		}
		s.Total++
		switch status {
		case models.StatusPresent:
			s.Present++
		case models.StatusOD:
			s.OD++
		}
	}
	s.Attended = s.Present + s.OD
	if s.Total > 0 {
		pct := Percentage(s.Attended, s.Total)
		s.Percentage = &pct
	}
	return s
}

// Percentage returns 100*part/whole rounded to two decimals, ties to even
// (58 of 64 is 90.62). whole must be non-zero.
func Percentage(part, whole int) float64 {
	return math.RoundToEven(float64(part)/float64(whole)*100*100) / 100
}
