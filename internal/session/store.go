// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session keeps per-session scratch-lists: medications, journal
// entries, and appointments. The backing store is an in-memory SQLite
// database, so every list lives exactly as long as the process and is
// scoped to one session identifier.
package session

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/care-navigator/pkg/types"
)

// Date and time layouts accepted on input.
const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Store manages the scratch-list database.
type Store struct {
	db *sql.DB
}

// NewStore opens the in-memory database and creates the schema. The
// single shared connection keeps every session's lists in one cache.
func NewStore() (*Store, error) {
	db, err := sql.Open("sqlite3", "file::memory:?cache=shared")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection and with it every list.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS medications (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			name TEXT NOT NULL,
			dosage TEXT NOT NULL,
			frequency TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_medications_session ON medications(session_id)`,
		`CREATE TABLE IF NOT EXISTS journal_entries (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			entry_date TEXT NOT NULL,
			entry_text TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_journal_session ON journal_entries(session_id)`,
		`CREATE TABLE IF NOT EXISTS appointments (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			title TEXT NOT NULL,
			appt_date TEXT NOT NULL,
			appt_time TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_appointments_session ON appointments(session_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// AddMedication appends m to the session's list. Every field is
// required; duplicates are permitted.
func (s *Store) AddMedication(ctx context.Context, sessionID string, m types.Medication) error {
	if strings.TrimSpace(m.Name) == "" {
		return types.Invalid("medication name is required")
	}
	if strings.TrimSpace(m.Dosage) == "" {
		return types.Invalid("dosage is required")
	}
	if strings.TrimSpace(m.Frequency) == "" {
		return types.Invalid("frequency is required")
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO medications (session_id, name, dosage, frequency) VALUES (?, ?, ?, ?)`,
		sessionID, m.Name, m.Dosage, m.Frequency)
	if err != nil {
		return fmt.Errorf("inserting medication: %w", err)
	}
	return nil
}

// Medications returns the session's list in insertion order.
func (s *Store) Medications(ctx context.Context, sessionID string) ([]types.Medication, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, dosage, frequency FROM medications WHERE session_id = ? ORDER BY rowid`,
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("querying medications: %w", err)
	}
	defer rows.Close()

	meds := []types.Medication{}
	for rows.Next() {
		var m types.Medication
		if err := rows.Scan(&m.Name, &m.Dosage, &m.Frequency); err != nil {
			return nil, fmt.Errorf("scanning medication: %w", err)
		}
		meds = append(meds, m)
	}
	return meds, rows.Err()
}

// RemoveMedication deletes the entry at the given zero-based position.
// An out-of-range index is rejected and the list is unchanged.
func (s *Store) RemoveMedication(ctx context.Context, sessionID string, index int) error {
	if index < 0 {
		return types.Invalid("removal index is out of range")
	}

	var rowid int64
	err := s.db.QueryRowContext(ctx,
		`SELECT rowid FROM medications WHERE session_id = ? ORDER BY rowid LIMIT 1 OFFSET ?`,
		sessionID, index).Scan(&rowid)
	if err == sql.ErrNoRows {
		return types.Invalid("removal index is out of range")
	}
	if err != nil {
		return fmt.Errorf("locating medication: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM medications WHERE rowid = ?`, rowid); err != nil {
		return fmt.Errorf("deleting medication: %w", err)
	}
	return nil
}

// AddJournalEntry appends e to the session's journal. The date must be
// an ISO calendar date.
func (s *Store) AddJournalEntry(ctx context.Context, sessionID string, e types.JournalEntry) error {
	if strings.TrimSpace(e.Text) == "" {
		return types.Invalid("journal text is required")
	}
	if _, err := time.Parse(dateLayout, e.Date); err != nil {
		return types.Invalid("entry date must be YYYY-MM-DD")
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO journal_entries (session_id, entry_date, entry_text) VALUES (?, ?, ?)`,
		sessionID, e.Date, e.Text)
	if err != nil {
		return fmt.Errorf("inserting journal entry: %w", err)
	}
	return nil
}

// JournalEntries returns the session's journal newest-first. Entries
// sharing a date keep their insertion order.
func (s *Store) JournalEntries(ctx context.Context, sessionID string) ([]types.JournalEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT entry_date, entry_text FROM journal_entries
		 WHERE session_id = ? ORDER BY entry_date DESC, rowid ASC`,
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("querying journal entries: %w", err)
	}
	defer rows.Close()

	entries := []types.JournalEntry{}
	for rows.Next() {
		var e types.JournalEntry
		if err := rows.Scan(&e.Date, &e.Text); err != nil {
			return nil, fmt.Errorf("scanning journal entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// AddAppointment appends a to the session's schedule. Date and time
// must parse in their display layouts.
func (s *Store) AddAppointment(ctx context.Context, sessionID string, a types.Appointment) error {
	if strings.TrimSpace(a.Title) == "" {
		return types.Invalid("appointment title is required")
	}
	if _, err := time.Parse(dateLayout, a.Date); err != nil {
		return types.Invalid("appointment date must be YYYY-MM-DD")
	}
	if _, err := time.Parse(timeLayout, a.Time); err != nil {
		return types.Invalid("appointment time must be HH:MM")
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO appointments (session_id, title, appt_date, appt_time) VALUES (?, ?, ?, ?)`,
		sessionID, a.Title, a.Date, a.Time)
	if err != nil {
		return fmt.Errorf("inserting appointment: %w", err)
	}
	return nil
}

// Appointments returns the session's schedule soonest-first.
func (s *Store) Appointments(ctx context.Context, sessionID string) ([]types.Appointment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT title, appt_date, appt_time FROM appointments
		 WHERE session_id = ? ORDER BY appt_date ASC, appt_time ASC, rowid ASC`,
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("querying appointments: %w", err)
	}
	defer rows.Close()

	appts := []types.Appointment{}
	for rows.Next() {
		var a types.Appointment
		if err := rows.Scan(&a.Title, &a.Date, &a.Time); err != nil {
			return nil, fmt.Errorf("scanning appointment: %w", err)
		}
		appts = append(appts, a)
	}
	return appts, rows.Err()
}
