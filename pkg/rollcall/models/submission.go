package models

// Submission is one day's attendance input as received from a caller.
type Submission struct {
	Date       string `json:"date"`
	Hour       string `json:"hour"`
	Department string `json:"department"`
	Course     string `json:"course"`
	// TotalStudents defaults to the roster size when nil.
	TotalStudents *int   `json:"totalStudents"`
	Absent        string `json:"absent"`
	OD            string `json:"od"`
	// SaveToExcel defaults to true when nil.
	SaveToExcel *bool `json:"saveToExcel"`
}

// Result is the summary returned for an accepted submission.
type Result struct {
	Report       string   `json:"report"`
	Percentage   float64  `json:"percentage"`
	Present      int      `json:"present"`
	Absent       int      `json:"absent"`
	OD           int      `json:"od"`
	Total        int      `json:"total"`
	Warnings     []string `json:"warnings"`
	ExcelUpdated bool     `json:"excelUpdated"`
}
