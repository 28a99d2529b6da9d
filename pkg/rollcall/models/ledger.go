package models

// Ledger column labels.
const (
	ColumnName       = "NAME"
	ColumnTotal      = "TOTAL"
	ColumnPresent    = "P"
	ColumnOD         = "OD"
	ColumnAttended   = "TOTAL.1"
	ColumnPercentage = "PERCENTAGE"
)

// TrailingColumns are the derived columns that always close a ledger header, in order.
var TrailingColumns = []string{ColumnTotal, ColumnPresent, ColumnOD, ColumnAttended, ColumnPercentage}

// Summary row labels, stored in the NAME column.
const (
	PresentSummaryLabel = "Total No. of PRESENT"
	AbsentSummaryLabel  = "Total No. of ABSENT"
)

// Status is the value of a student's date cell.
type Status string

const (
	StatusUnrecorded Status = ""
	StatusPresent    Status = "P"
	StatusAbsent     Status = "AB"
	StatusOD         Status = "OD"
)

// Recorded reports whether s is one of P, AB or OD.
func (s Status) Recorded() bool {
	return s == StatusPresent || s == StatusAbsent || s == StatusOD
}

// RowKind tags a ledger row.
type RowKind int

const (
	RowStudent RowKind = iota
	RowPresentSummary
	RowAbsentSummary
)

func (k RowKind) String() string {
	switch k {
	case RowPresentSummary:
		return "present-summary"
	case RowAbsentSummary:
		return "absent-summary"
	default:
		return "student"
	}
}

// Stats holds the derived columns of a student row.
type Stats struct {
	// Total is the number of recorded date cells.
	Total int `json:"total"`
	// Present is the number of P cells.
	Present int `json:"p"`
	// OD is the number of OD cells.
	OD int `json:"od"`
	// Attended is Present + OD (the TOTAL.1 column).
	Attended int `json:"total_1"`
	// Percentage is round(100*Attended/Total, 2); nil while Total is zero.
	Percentage *float64 `json:"percentage,omitempty"`
}

// LedgerRow is one row of the ledger table.
type LedgerRow struct {
	// Kind distinguishes student rows from the two summary rows.
	Kind RowKind `json:"kind"`
	// Name is the NAME cell (the summary label for summary rows).
	Name string `json:"name"`
	// Marks maps date column to status for student rows.
	Marks map[string]Status `json:"marks,omitempty"`
	// Counts maps date column to count for summary rows.
	Counts map[string]int `json:"counts,omitempty"`
	// Stats holds derived columns for student rows.
	Stats Stats `json:"stats"`
}

// Ledger is the in-memory attendance table.
type Ledger struct {
	// SheetName is the worksheet the table was read from.
	SheetName string `json:"sheet_name"`
	// Dates lists date columns (DD-MM-YYYY) in first-seen order.
	Dates []string `json:"dates"`
	// Students holds student rows in table order.
	Students []*LedgerRow `json:"students"`
	// PresentSummary is the "Total No. of PRESENT" row.
	PresentSummary *LedgerRow `json:"present_summary"`
	// AbsentSummary is the "Total No. of ABSENT" row.
	AbsentSummary *LedgerRow `json:"absent_summary"`
}

// NewLedger returns an empty ledger with one blank row per name.
func NewLedger(sheetName string, names []string) *Ledger {
	l := &Ledger{
		SheetName:      sheetName,
		PresentSummary: NewSummaryRow(RowPresentSummary),
		AbsentSummary:  NewSummaryRow(RowAbsentSummary),
	}
	for _, name := range names {
		l.Students = append(l.Students, NewStudentRow(name))
	}
	return l
}

// NewStudentRow returns a student row with no marks.
func NewStudentRow(name string) *LedgerRow {
	return &LedgerRow{Kind: RowStudent, Name: name, Marks: make(map[string]Status)}
}

// NewSummaryRow returns an empty summary row of the given kind.
func NewSummaryRow(kind RowKind) *LedgerRow {
	label := PresentSummaryLabel
	if kind == RowAbsentSummary {
		label = AbsentSummaryLabel
	}
	return &LedgerRow{Kind: kind, Name: label, Counts: make(map[string]int)}
}

// HasDate reports whether the ledger already has a column for date.
func (l *Ledger) HasDate(date string) bool {
	for _, d := range l.Dates {
		if d == date {
			return true
		}
	}
	return false
}

// Header returns the full column header in table order.
func (l *Ledger) Header() []string {
	header := make([]string, 0, 1+len(l.Dates)+len(TrailingColumns))
	header = append(header, ColumnName)
	header = append(header, l.Dates...)
	return append(header, TrailingColumns...)
}

// Rows returns student rows followed by the present and absent summary rows.
func (l *Ledger) Rows() []*LedgerRow {
	rows := make([]*LedgerRow, 0, len(l.Students)+2)
	rows = append(rows, l.Students...)
	return append(rows, l.PresentSummary, l.AbsentSummary)
}
