package notify

import (
	"testing"
	"time"

	"github.com/rpmellow/notepad/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLedger(t *testing.T) *Ledger {
	t.Helper()
	return NewLedger(model.Config{DataDir: t.TempDir()})
}

func futureReminder(d time.Duration) *int64 {
	ms := time.Now().Add(d).UnixMilli()
	return &ms
}

func TestScheduleFutureReminder(t *testing.T) {
	ledger := testLedger(t)
	note := model.Note{ID: "n1", Title: "Dentist", Body: "bring card", Reminder: futureReminder(time.Hour)}

	id, err := ledger.Schedule(note)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	entries, err := ledger.Pending()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, id, entries[0].ID)
	assert.Equal(t, "n1", entries[0].NoteID)
	assert.Equal(t, "Dentist", entries[0].Title)
	assert.Equal(t, "bring card", entries[0].Body)
	assert.Equal(t, *note.Reminder, entries[0].At)
}

func TestScheduleWithoutReminderIsNoop(t *testing.T) {
	ledger := testLedger(t)

	id, err := ledger.Schedule(model.Note{ID: "n1", Title: "No reminder"})
	require.NoError(t, err)
	assert.Empty(t, id)

	entries, err := ledger.Pending()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSchedulePastReminderIsNoop(t *testing.T) {
	ledger := testLedger(t)

	id, err := ledger.Schedule(model.Note{ID: "n1", Reminder: futureReminder(-time.Minute)})
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestScheduleChecklistBody(t *testing.T) {
	ledger := testLedger(t)
	note := model.Note{
		ID:       "n1",
		Type:     model.NoteTypeTodo,
		Reminder: futureReminder(time.Hour),
		Checklist: []model.ChecklistItem{
			{ID: "i1", Text: "milk"},
			{ID: "i2", Text: "eggs"},
		},
	}

	_, err := ledger.Schedule(note)
	require.NoError(t, err)

	entries, err := ledger.Pending()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Note Reminder", entries[0].Title, "untitled notes get the fallback title")
	assert.Equal(t, "milk\neggs", entries[0].Body)
}

func TestCancelRemovesEntry(t *testing.T) {
	ledger := testLedger(t)

	id1, err := ledger.Schedule(model.Note{ID: "n1", Title: "a", Reminder: futureReminder(time.Hour)})
	require.NoError(t, err)
	id2, err := ledger.Schedule(model.Note{ID: "n2", Title: "b", Reminder: futureReminder(2 * time.Hour)})
	require.NoError(t, err)

	require.NoError(t, ledger.Cancel(id1))

	entries, err := ledger.Pending()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, id2, entries[0].ID)

	// Cancelling unknown or empty ids is a no-op
	assert.NoError(t, ledger.Cancel("missing"))
	assert.NoError(t, ledger.Cancel(""))
}

func TestPendingSortsBySoonest(t *testing.T) {
	ledger := testLedger(t)

	_, err := ledger.Schedule(model.Note{ID: "later", Title: "later", Reminder: futureReminder(2 * time.Hour)})
	require.NoError(t, err)
	_, err = ledger.Schedule(model.Note{ID: "sooner", Title: "sooner", Reminder: futureReminder(time.Hour)})
	require.NoError(t, err)

	entries, err := ledger.Pending()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "sooner", entries[0].NoteID)
	assert.Equal(t, "later", entries[1].NoteID)
}

func TestDuePopsElapsedEntries(t *testing.T) {
	ledger := testLedger(t)

	_, err := ledger.Schedule(model.Note{ID: "soon", Title: "soon", Reminder: futureReminder(time.Minute)})
	require.NoError(t, err)
	_, err = ledger.Schedule(model.Note{ID: "far", Title: "far", Reminder: futureReminder(time.Hour)})
	require.NoError(t, err)

	due, err := ledger.Due(time.Now().Add(10 * time.Minute))
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "soon", due[0].NoteID)

	// Popped entries do not fire twice
	due, err = ledger.Due(time.Now().Add(10 * time.Minute))
	require.NoError(t, err)
	assert.Empty(t, due)

	entries, err := ledger.Pending()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "far", entries[0].NoteID)
}
