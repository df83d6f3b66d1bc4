package cmd

import (
	"testing"

	"github.com/rpmellow/notepad/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChecklistNote(t *testing.T, config model.Config, items ...string) model.Note {
	t.Helper()

	draft := model.Note{Type: model.NoteTypeTodo}
	for i, text := range items {
		require.True(t, draft.AddChecklistItem(string(rune('a'+i)), text))
	}

	note, saved, err := createNote("Trip", "", "", model.NoteTypeTodo,
		draft.Checklist, false, nil, config, &stubNotifier{})
	require.NoError(t, err)
	require.True(t, saved)
	return note
}

func TestMutateChecklistToggle(t *testing.T) {
	config := testConfig(t)
	note := newChecklistNote(t, config, "Pack bags", "Book taxi")

	err := mutateChecklist(note.ID, config, func(n *model.Note) error {
		require.True(t, n.ToggleChecklistItem("a"))
		return nil
	})
	require.NoError(t, err)

	persisted := loadAll(t, config)
	require.Len(t, persisted, 1)
	assert.True(t, persisted[0].Checklist[0].Completed)
	assert.False(t, persisted[0].Checklist[1].Completed)
	assert.GreaterOrEqual(t, persisted[0].UpdatedAt, note.UpdatedAt,
		"checklist changes are content edits")
}

func TestMutateChecklistRejectsTextNotes(t *testing.T) {
	config := testConfig(t)

	note, _, err := createNote("Plain", "body", "", model.NoteTypeText,
		nil, false, nil, config, &stubNotifier{})
	require.NoError(t, err)

	err = mutateChecklist(note.ID, config, func(n *model.Note) error { return nil })
	assert.Error(t, err)
}

func TestMutateChecklistUnknownNote(t *testing.T) {
	config := testConfig(t)
	err := mutateChecklist("missing", config, func(n *model.Note) error { return nil })
	assert.Error(t, err)
}

func TestMutateChecklistChangeErrorAborts(t *testing.T) {
	config := testConfig(t)
	note := newChecklistNote(t, config, "Pack bags")

	err := mutateChecklist(note.ID, config, func(n *model.Note) error {
		return assert.AnError
	})
	assert.Error(t, err)

	persisted := loadAll(t, config)
	assert.Equal(t, note.UpdatedAt, persisted[0].UpdatedAt)
}
