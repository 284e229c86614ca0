// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/care-navigator/pkg/types"
)

// testStore opens the shared in-memory database. Tests isolate
// themselves with unique session identifiers.
func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestMedications_AddListRemove(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	sid := uuid.NewString()

	require.NoError(t, s.AddMedication(ctx, sid, types.Medication{Name: "Aspirin", Dosage: "100mg", Frequency: "daily"}))
	require.NoError(t, s.AddMedication(ctx, sid, types.Medication{Name: "Tamoxifen", Dosage: "20mg", Frequency: "daily"}))

	meds, err := s.Medications(ctx, sid)
	require.NoError(t, err)
	require.Len(t, meds, 2)
	assert.Equal(t, "Aspirin", meds[0].Name)
	assert.Equal(t, "Tamoxifen", meds[1].Name)

	require.NoError(t, s.RemoveMedication(ctx, sid, 0))
	meds, err = s.Medications(ctx, sid)
	require.NoError(t, err)
	require.Len(t, meds, 1)
	assert.Equal(t, "Tamoxifen", meds[0].Name)
}

func TestMedications_ValidationRejectsBlankFields(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	sid := uuid.NewString()

	tests := []struct {
		name string
		med  types.Medication
	}{
		{"blank name", types.Medication{Name: " ", Dosage: "100mg", Frequency: "daily"}},
		{"blank dosage", types.Medication{Name: "Aspirin", Dosage: "", Frequency: "daily"}},
		{"blank frequency", types.Medication{Name: "Aspirin", Dosage: "100mg", Frequency: ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.AddMedication(ctx, sid, tt.med)
			assert.Equal(t, types.KindValidation, types.KindOf(err))
		})
	}

	meds, err := s.Medications(ctx, sid)
	require.NoError(t, err)
	assert.Empty(t, meds, "rejected adds must not append")
}

func TestRemoveMedication_OutOfRange(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	sid := uuid.NewString()

	require.NoError(t, s.AddMedication(ctx, sid, types.Medication{Name: "Aspirin", Dosage: "100mg", Frequency: "daily"}))

	err := s.RemoveMedication(ctx, sid, 1)
	assert.Equal(t, types.KindValidation, types.KindOf(err))
	err = s.RemoveMedication(ctx, sid, -1)
	assert.Equal(t, types.KindValidation, types.KindOf(err))

	meds, err := s.Medications(ctx, sid)
	require.NoError(t, err)
	assert.Len(t, meds, 1, "failed removal must leave the list unchanged")
}

func TestMedications_DuplicatesPermitted(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	sid := uuid.NewString()

	m := types.Medication{Name: "Aspirin", Dosage: "100mg", Frequency: "daily"}
	require.NoError(t, s.AddMedication(ctx, sid, m))
	require.NoError(t, s.AddMedication(ctx, sid, m))

	meds, err := s.Medications(ctx, sid)
	require.NoError(t, err)
	assert.Len(t, meds, 2)
}

func TestJournalEntries_NewestFirst(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	sid := uuid.NewString()

	require.NoError(t, s.AddJournalEntry(ctx, sid, types.JournalEntry{Date: "2024-01-01", Text: "started treatment"}))
	require.NoError(t, s.AddJournalEntry(ctx, sid, types.JournalEntry{Date: "2024-03-01", Text: "feeling better"}))
	require.NoError(t, s.AddJournalEntry(ctx, sid, types.JournalEntry{Date: "2024-03-01", Text: "second thought"}))

	entries, err := s.JournalEntries(ctx, sid)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "feeling better", entries[0].Text)
	assert.Equal(t, "second thought", entries[1].Text, "same-date entries keep insertion order")
	assert.Equal(t, "2024-01-01", entries[2].Date)
}

func TestJournalEntries_Validation(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	sid := uuid.NewString()

	err := s.AddJournalEntry(ctx, sid, types.JournalEntry{Date: "01/02/2024", Text: "wrong layout"})
	assert.Equal(t, types.KindValidation, types.KindOf(err))
	err = s.AddJournalEntry(ctx, sid, types.JournalEntry{Date: "2024-01-02", Text: "  "})
	assert.Equal(t, types.KindValidation, types.KindOf(err))
}

func TestAppointments_SortedByDateThenTime(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	sid := uuid.NewString()

	require.NoError(t, s.AddAppointment(ctx, sid, types.Appointment{Title: "Oncology follow-up", Date: "2024-05-10", Time: "14:30"}))
	require.NoError(t, s.AddAppointment(ctx, sid, types.Appointment{Title: "Blood work", Date: "2024-05-10", Time: "09:00"}))
	require.NoError(t, s.AddAppointment(ctx, sid, types.Appointment{Title: "CT scan", Date: "2024-04-01", Time: "11:00"}))

	appts, err := s.Appointments(ctx, sid)
	require.NoError(t, err)
	require.Len(t, appts, 3)
	assert.Equal(t, "CT scan", appts[0].Title)
	assert.Equal(t, "Blood work", appts[1].Title)
	assert.Equal(t, "Oncology follow-up", appts[2].Title)
}

func TestAppointments_Validation(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	sid := uuid.NewString()

	err := s.AddAppointment(ctx, sid, types.Appointment{Title: "", Date: "2024-05-10", Time: "14:30"})
	assert.Equal(t, types.KindValidation, types.KindOf(err))
	err = s.AddAppointment(ctx, sid, types.Appointment{Title: "Scan", Date: "2024-05-10", Time: "2pm"})
	assert.Equal(t, types.KindValidation, types.KindOf(err))
}

func TestSessionsAreIsolated(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	first, second := uuid.NewString(), uuid.NewString()

	require.NoError(t, s.AddMedication(ctx, first, types.Medication{Name: "Aspirin", Dosage: "100mg", Frequency: "daily"}))

	meds, err := s.Medications(ctx, second)
	require.NoError(t, err)
	assert.Empty(t, meds)
}
