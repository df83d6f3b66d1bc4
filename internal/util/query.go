package util

import (
	"sort"
	"strings"

	"github.com/rpmellow/notepad/internal/model"
)

// AllTag is the synthetic filter entry that matches every note.
const AllTag = "ALL"

// Project maps the full note list plus the two filter inputs to the
// ordered display list. Pure function, recomputed on demand.
func Project(notes []model.Note, selectedTag, search string) []model.Note {
	filtered := []model.Note{}

	for _, note := range notes {
		if selectedTag != AllTag && !note.HasTag(selectedTag) {
			continue
		}
		if !matchesSearch(note, search) {
			continue
		}
		filtered = append(filtered, note)
	}

	// Pinned notes first, then most recently updated. Stable so equal
	// keys keep input order.
	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Pinned != filtered[j].Pinned {
			return filtered[i].Pinned
		}
		return filtered[i].SortKey() > filtered[j].SortKey()
	})

	return filtered
}

// matchesSearch checks the query case-insensitively against title,
// tags, and either the body (text notes) or the checklist item texts
// (todo notes).
func matchesSearch(note model.Note, search string) bool {
	if search == "" {
		return true
	}
	q := strings.ToLower(search)

	if strings.Contains(strings.ToLower(note.Title), q) {
		return true
	}
	for _, tag := range note.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	if note.Type == model.NoteTypeTodo && len(note.Checklist) > 0 {
		for _, item := range note.Checklist {
			if strings.Contains(strings.ToLower(item.Text), q) {
				return true
			}
		}
		return false
	}
	return strings.Contains(strings.ToLower(note.Body), q)
}

// TagVocabulary scans all notes for distinct tags and returns them
// alphabetically sorted behind the synthetic "ALL" entry.
func TagVocabulary(notes []model.Note) []string {
	seen := map[string]bool{}
	tags := []string{}
	for _, note := range notes {
		for _, tag := range note.Tags {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	sort.Strings(tags)
	return append([]string{AllTag}, tags...)
}
