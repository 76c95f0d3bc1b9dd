package bridge

import "database/sql"

// NotSet is the text reported for variables that don't exist.
const NotSet = "not set"

// Report is a snapshot of the variables relevant to native library loading.
type Report struct {
	Entries []ReportEntry
}

// ReportEntry is a single variable of a Report.
type ReportEntry struct {
	Name  string
	Value sql.Null[string]
}

// String returns the value of the variable, or NotSet if it doesn't exist.
func (e ReportEntry) String() string {
	if !e.Value.Valid {
		return NotSet
	}
	return e.Value.V
}
