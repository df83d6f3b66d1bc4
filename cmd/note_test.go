package cmd

import (
	"testing"
	"time"

	"github.com/rpmellow/notepad/internal/model"
	"github.com/rpmellow/notepad/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubNotifier records schedule/cancel calls instead of touching the
// reminders ledger.
type stubNotifier struct {
	scheduled   []model.Note
	cancelled   []string
	nextID      string
	scheduleErr error
}

func (s *stubNotifier) Schedule(note model.Note) (string, error) {
	if s.scheduleErr != nil {
		return "", s.scheduleErr
	}
	s.scheduled = append(s.scheduled, note)
	return s.nextID, nil
}

func (s *stubNotifier) Cancel(id string) error {
	s.cancelled = append(s.cancelled, id)
	return nil
}

func testConfig(t *testing.T) model.Config {
	t.Helper()
	return model.Config{DataDir: t.TempDir()}
}

func loadAll(t *testing.T, config model.Config) []model.Note {
	t.Helper()
	notes, _, err := store.LoadNotes(config)
	require.NoError(t, err)
	return notes
}

func TestCreateNoteDiscardsEmpty(t *testing.T) {
	config := testConfig(t)
	notifier := &stubNotifier{}

	_, saved, err := createNote("  ", "", "", model.NoteTypeText, nil, false, nil, config, notifier)
	require.NoError(t, err)
	assert.False(t, saved)
	assert.Empty(t, loadAll(t, config))
	assert.Empty(t, notifier.scheduled)
}

func TestCreateNoteDeduplicatesTags(t *testing.T) {
	config := testConfig(t)

	note, saved, err := createNote("Groceries", "", "home, Home, HOME", model.NoteTypeText,
		nil, false, nil, config, &stubNotifier{})
	require.NoError(t, err)
	require.True(t, saved)
	assert.Equal(t, []string{"HOME"}, note.Tags)

	persisted := loadAll(t, config)
	require.Len(t, persisted, 1)
	assert.Equal(t, []string{"HOME"}, persisted[0].Tags)
}

func TestCreateNoteWithReminderSchedules(t *testing.T) {
	config := testConfig(t)
	notifier := &stubNotifier{nextID: "notif-1"}
	reminder := time.Now().Add(time.Hour).UnixMilli()

	note, saved, err := createNote("Dentist", "bring card", "", model.NoteTypeText,
		nil, false, &reminder, config, notifier)
	require.NoError(t, err)
	require.True(t, saved)
	require.Len(t, notifier.scheduled, 1)
	require.NotNil(t, note.NotificationID)
	assert.Equal(t, "notif-1", *note.NotificationID)
}

func TestCreateNoteWithoutReminderNeverSchedules(t *testing.T) {
	config := testConfig(t)
	notifier := &stubNotifier{nextID: "notif-1"}

	// A reminder picked and cleared again before save leaves no trace
	note, saved, err := createNote("Dentist", "bring card", "", model.NoteTypeText,
		nil, false, nil, config, notifier)
	require.NoError(t, err)
	require.True(t, saved)
	assert.Empty(t, notifier.scheduled)
	assert.Nil(t, note.Reminder)
	assert.Nil(t, note.NotificationID)
}

func TestCreateNoteSurvivesScheduleFailure(t *testing.T) {
	config := testConfig(t)
	notifier := &stubNotifier{scheduleErr: assert.AnError}
	reminder := time.Now().Add(time.Hour).UnixMilli()

	note, saved, err := createNote("Dentist", "bring card", "", model.NoteTypeText,
		nil, false, &reminder, config, notifier)
	require.NoError(t, err, "scheduling failure must not block the save")
	require.True(t, saved)
	assert.Nil(t, note.NotificationID)
	require.NotNil(t, note.Reminder)
	assert.Equal(t, reminder, *note.Reminder)
}

func TestDeleteNoteCancelsNotification(t *testing.T) {
	config := testConfig(t)
	notifier := &stubNotifier{nextID: "notif-9"}
	reminder := time.Now().Add(time.Hour).UnixMilli()

	note, saved, err := createNote("Dentist", "x", "", model.NoteTypeText,
		nil, false, &reminder, config, notifier)
	require.NoError(t, err)
	require.True(t, saved)

	require.NoError(t, deleteNote(note.ID, config, notifier))

	assert.Equal(t, []string{"notif-9"}, notifier.cancelled)
	assert.Empty(t, loadAll(t, config))
}

func TestDeleteNoteUnknownID(t *testing.T) {
	config := testConfig(t)
	assert.Error(t, deleteNote("missing", config, &stubNotifier{}))
}

func TestTogglePinKeepsUpdatedAt(t *testing.T) {
	config := testConfig(t)

	note, _, err := createNote("Pin me", "x", "", model.NoteTypeText,
		nil, false, nil, config, &stubNotifier{})
	require.NoError(t, err)

	pinned, err := togglePin(note.ID, config)
	require.NoError(t, err)
	assert.True(t, pinned)

	persisted := loadAll(t, config)
	require.Len(t, persisted, 1)
	assert.True(t, persisted[0].Pinned)
	assert.Equal(t, note.UpdatedAt, persisted[0].UpdatedAt, "pin-only changes do not count as content edits")

	pinned, err = togglePin(note.ID, config)
	require.NoError(t, err)
	assert.False(t, pinned)
}
