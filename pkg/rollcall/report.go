package rollcall

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/rollcall-go/pkg/rollcall/ledger"
)

// NameResolver maps a roll number to a student name.
type NameResolver interface {
	NameFor(roll string) (string, bool)
}

// Summary holds the day's headline counts.
type Summary struct {
	Total   int
	Present int
	Absent  int
	OD      int
	// Percentage counts OD rolls as present.
	Percentage float64
}

// Summarize computes counts for validated rolls against a class of total students.
func Summarize(rolls Rolls, total int) (Summary, error) {
	if total <= 0 {
		return Summary{}, NewValidationError(KindInvalidTotal, strconv.Itoa(total))
	}
	present := total - len(rolls.Absent)
	return Summary{
		Total:      total,
		Present:    present,
		Absent:     len(rolls.Absent),
		OD:         len(rolls.OD),
		Percentage: ledger.Percentage(present, total),
	}, nil
}

// ReportHeader carries the free-text fields printed at the top of a report.
type ReportHeader struct {
	Date       string
	Hour       string
	Department string
	Course     string
}

// BuildReport renders the daily message. Rolls missing from names are printed
// as "Unknown Student" and reported in the returned warnings.
func BuildReport(h ReportHeader, rolls Rolls, sum Summary, names NameResolver) (string, []string) {
	warnings := []string{}
	label := func(roll string) string {
		if name, ok := names.NameFor(roll); ok {
			return fmt.Sprintf("%s (%s)", name, roll)
		}
		warnings = append(warnings, fmt.Sprintf("Roll number %s not found in Excel", roll))
		return fmt.Sprintf("Unknown Student (%s)", roll)
	}

	var b strings.Builder
	b.WriteString("Good morning sir,\n\n")
	fmt.Fprintf(&b, "Date : %s\n", h.Date)
	fmt.Fprintf(&b, "Hour: %s\n\n", h.Hour)
	fmt.Fprintf(&b, "%s\n", h.Department)
	fmt.Fprintf(&b, "%s  : %d/%d\n", h.Course, sum.Present, sum.Total)
	b.WriteString("--------------------------------\n")
	fmt.Fprintf(&b, "Percentage : %s%%\n\n", FormatPercentage(sum.Percentage))

	b.WriteString("Absentees List\n")
	for i, roll := range rolls.Absent {
		fmt.Fprintf(&b, "%d. %s\n", i+1, label(roll))
	}
	b.WriteString("\nOD\n")
	for i, roll := range rolls.OD {
		fmt.Fprintf(&b, "%d. %s\n", i+1, label(roll))
	}
	b.WriteString("\nThank you sir")

	return b.String(), warnings
}

// FormatPercentage prints p with the shortest exact decimal form, keeping a
// trailing ".0" on whole numbers (100 prints as "100.0").
func FormatPercentage(p float64) string {
	s := strconv.FormatFloat(p, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
