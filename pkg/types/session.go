// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Medication is one entry in a session's medication list. Entries keep
// insertion order; duplicates are permitted.
type Medication struct {
	Name      string `json:"name" yaml:"name"`
	Dosage    string `json:"dosage" yaml:"dosage"`
	Frequency string `json:"frequency" yaml:"frequency"`
}

// JournalEntry is one dated entry in a session's journal. Dates use the
// civil form "2006-01-02".
type JournalEntry struct {
	Date string `json:"date" yaml:"date"`
	Text string `json:"text" yaml:"text"`
}

// Appointment is one entry in a session's appointment list. Date uses
// "2006-01-02" and Time uses "15:04".
type Appointment struct {
	Title string `json:"title" yaml:"title"`
	Date  string `json:"date" yaml:"date"`
	Time  string `json:"time" yaml:"time"`
}
