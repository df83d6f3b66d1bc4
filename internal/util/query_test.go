package util

import (
	"testing"

	"github.com/rpmellow/notepad/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectTagFilter(t *testing.T) {
	notes := []model.Note{
		{ID: "1", Title: "Buy milk", Tags: []string{"HOME"}},
		{ID: "2", Title: "Finish report", Tags: []string{"WORK"}},
	}

	result := Project(notes, "WORK", "")
	require.Len(t, result, 1)
	assert.Equal(t, "Finish report", result[0].Title)

	result = Project(notes, AllTag, "milk")
	require.Len(t, result, 1)
	assert.Equal(t, "Buy milk", result[0].Title)
}

func TestProjectUnknownTagYieldsEmpty(t *testing.T) {
	notes := []model.Note{{ID: "1", Title: "a", Tags: []string{"HOME"}}}
	assert.Empty(t, Project(notes, "MISSING", ""))
}

func TestProjectEmptyInput(t *testing.T) {
	assert.Empty(t, Project(nil, AllTag, ""))
	assert.Empty(t, Project([]model.Note{}, AllTag, "anything"))
}

func TestProjectSearchFields(t *testing.T) {
	notes := []model.Note{
		{ID: "1", Title: "Shopping", Body: "buy MILK", Type: model.NoteTypeText},
		{ID: "2", Title: "Trip", Type: model.NoteTypeTodo,
			Checklist: []model.ChecklistItem{{ID: "i1", Text: "Pack Sunscreen"}}},
		{ID: "3", Title: "Misc", Tags: []string{"GROCERIES"}},
	}

	ids := func(notes []model.Note) []string {
		out := []string{}
		for _, n := range notes {
			out = append(out, n.ID)
		}
		return out
	}

	// Case-insensitive body match
	assert.Equal(t, []string{"1"}, ids(Project(notes, AllTag, "milk")))
	// Checklist item text match for todo notes
	assert.Equal(t, []string{"2"}, ids(Project(notes, AllTag, "sunscreen")))
	// Tag match
	assert.Equal(t, []string{"3"}, ids(Project(notes, AllTag, "grocer")))
	// Title match
	assert.Equal(t, []string{"2"}, ids(Project(notes, AllTag, "trip")))
}

func TestProjectTodoBodyNotSearched(t *testing.T) {
	notes := []model.Note{
		{ID: "1", Title: "List", Type: model.NoteTypeTodo,
			Body:      "stale milk text",
			Checklist: []model.ChecklistItem{{ID: "i1", Text: "eggs"}}},
	}

	// The stale body of a checklist note is not part of search
	assert.Empty(t, Project(notes, AllTag, "milk"))
}

func TestProjectSortPinnedFirst(t *testing.T) {
	notes := []model.Note{
		{ID: "recent", Pinned: false, UpdatedAt: 100},
		{ID: "pinned", Pinned: true, UpdatedAt: 50},
	}

	result := Project(notes, AllTag, "")
	require.Len(t, result, 2)
	assert.Equal(t, "pinned", result[0].ID, "pinned notes come first regardless of timestamp")
	assert.Equal(t, "recent", result[1].ID)
}

func TestProjectSortByRecencyWithinGroup(t *testing.T) {
	notes := []model.Note{
		{ID: "old", UpdatedAt: 100},
		{ID: "new", UpdatedAt: 300},
		{ID: "mid", UpdatedAt: 200},
		{ID: "legacy", CreatedAt: 250}, // no UpdatedAt, falls back to CreatedAt
	}

	result := Project(notes, AllTag, "")
	require.Len(t, result, 4)
	assert.Equal(t, "new", result[0].ID)
	assert.Equal(t, "legacy", result[1].ID)
	assert.Equal(t, "mid", result[2].ID)
	assert.Equal(t, "old", result[3].ID)
}

func TestProjectSortIsStable(t *testing.T) {
	notes := []model.Note{
		{ID: "first", UpdatedAt: 100},
		{ID: "second", UpdatedAt: 100},
	}

	result := Project(notes, AllTag, "")
	require.Len(t, result, 2)
	assert.Equal(t, "first", result[0].ID, "equal keys keep input order")
	assert.Equal(t, "second", result[1].ID)
}

func TestTagVocabulary(t *testing.T) {
	notes := []model.Note{
		{ID: "1", Tags: []string{"WORK", "HOME"}},
		{ID: "2", Tags: []string{"HOME", "ERRANDS"}},
		{ID: "3"},
	}

	assert.Equal(t, []string{"ALL", "ERRANDS", "HOME", "WORK"}, TagVocabulary(notes))
}

func TestTagVocabularyEmpty(t *testing.T) {
	assert.Equal(t, []string{"ALL"}, TagVocabulary(nil))
}
