// Package rollcall records daily classroom attendance into a spreadsheet ledger.
package rollcall

// DefaultDepartment and DefaultCourse fill submissions that omit them.
const (
	DefaultDepartment = "II YEAR - A"
	DefaultCourse     = "B.Tech IT"
)

// Options configures submission handling.
type Options struct {
	// Department is used when a submission has none.
	Department string
	// Course is used when a submission has none.
	Course string
	// SaveToLedger specifies whether submissions update the ledger.
	// If nil, defaults to true. A submission's own saveToExcel flag takes precedence.
	SaveToLedger *bool
}

// DefaultOptions returns default submission options.
func DefaultOptions() Options {
	return Options{
		Department: DefaultDepartment,
		Course:     DefaultCourse,
	}
}

// ShouldSaveToLedger returns whether submissions update the ledger by default.
func (o Options) ShouldSaveToLedger() bool {
	if o.SaveToLedger != nil {
		return *o.SaveToLedger
	}
	return true
}

func (o Options) department() string {
	if o.Department != "" {
		return o.Department
	}
	return DefaultDepartment
}

func (o Options) course() string {
	if o.Course != "" {
		return o.Course
	}
	return DefaultCourse
}
