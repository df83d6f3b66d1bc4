package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rpmellow/notepad/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) model.Config {
	t.Helper()
	return model.Config{DataDir: t.TempDir()}
}

func TestLoadNotesEmptyStore(t *testing.T) {
	config := testConfig(t)

	notes, jsonPath, err := LoadNotes(config)
	require.NoError(t, err)
	assert.Empty(t, notes)
	assert.FileExists(t, jsonPath)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	config := testConfig(t)

	reminder := int64(1700000000000)
	notificationId := "b2c1"
	original := []model.Note{
		{
			ID:        "1a",
			Title:     "Groceries",
			Body:      "milk",
			Type:      model.NoteTypeText,
			Checklist: []model.ChecklistItem{},
			Tags:      []string{"HOME"},
			Pinned:    true,
			CreatedAt: 100,
			UpdatedAt: 200,
		},
		{
			ID:   "2b",
			Type: model.NoteTypeTodo,
			Checklist: []model.ChecklistItem{
				{ID: "i1", Text: "pack bags", Completed: true},
			},
			Tags:           []string{"TRIP"},
			Reminder:       &reminder,
			NotificationID: &notificationId,
			CreatedAt:      300,
			UpdatedAt:      300,
		},
	}

	_, jsonPath, err := LoadNotes(config)
	require.NoError(t, err)
	require.NoError(t, SaveNotes(original, jsonPath))

	loaded, _, err := LoadNotes(config)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)

	// save(load()) is idempotent
	require.NoError(t, SaveNotes(loaded, jsonPath))
	reloaded, _, err := LoadNotes(config)
	require.NoError(t, err)
	assert.Equal(t, loaded, reloaded)
}

func TestLoadNotesNormalizes(t *testing.T) {
	config := testConfig(t)
	jsonPath := filepath.Join(config.DataDir, "notes.json")

	// A blob written by an older version: no type, mixed-case tags,
	// missing checklist and reminder fields.
	blob := `[{"id":"1","title":"Old","tags":["home","Home"],"createdAt":1,"updatedAt":1}]`
	require.NoError(t, os.WriteFile(jsonPath, []byte(blob), 0644))

	notes, _, err := LoadNotes(config)
	require.NoError(t, err)
	require.Len(t, notes, 1)

	assert.Equal(t, model.NoteTypeText, notes[0].Type)
	assert.Equal(t, []string{"HOME"}, notes[0].Tags)
	assert.NotNil(t, notes[0].Checklist)
	assert.Empty(t, notes[0].Checklist)
	assert.Nil(t, notes[0].Reminder)
	assert.Nil(t, notes[0].NotificationID)
}

func TestLoadNotesCorruptBlob(t *testing.T) {
	config := testConfig(t)
	jsonPath := filepath.Join(config.DataDir, "notes.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte("{not json"), 0644))

	_, _, err := LoadNotes(config)
	assert.Error(t, err)
}

func TestFindNote(t *testing.T) {
	notes := []model.Note{{ID: "a"}, {ID: "b"}}
	assert.Equal(t, 0, FindNote(notes, "a"))
	assert.Equal(t, 1, FindNote(notes, "b"))
	assert.Equal(t, -1, FindNote(notes, "c"))
}

func TestNextNoteID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := NextNoteID()
		assert.Greater(t, len(id), 13, "epoch-millis prefix plus suffix")
		assert.False(t, seen[id], "ids must not collide within one process")
		seen[id] = true
	}
}
