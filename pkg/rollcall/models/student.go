// Package models defines data structures for attendance records.
package models

// Student represents a single roster entry.
type Student struct {
	// Roll is the roll number kept as text (digits only for submitted rolls).
	Roll string `json:"roll"`
	// Name is the student display name.
	Name string `json:"name"`
}
