package model

import "strings"

const (
	NoteTypeText = "text"
	NoteTypeTodo = "todo"
)

type Note struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Body           string          `json:"body"`
	Type           string          `json:"type"` // text, todo
	Checklist      []ChecklistItem `json:"checklist"`
	Tags           []string        `json:"tags"` // uppercase, input order
	Pinned         bool            `json:"pinned"`
	Reminder       *int64          `json:"reminder"` // epoch milliseconds
	NotificationID *string         `json:"notificationId"`
	CreatedAt      int64           `json:"createdAt"` // epoch milliseconds
	UpdatedAt      int64           `json:"updatedAt"`
}

type ChecklistItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Normalize repairs a note loaded from an older or partially written
// blob: missing type defaults to text, tags are uppercased and
// deduplicated, checklist is never nil. Text notes carry no checklist.
func (n *Note) Normalize() {
	if n.Type == "" {
		n.Type = NoteTypeText
	}
	n.Tags = NormalizeTags(n.Tags)
	if n.Checklist == nil || n.Type == NoteTypeText {
		n.Checklist = []ChecklistItem{}
	}
}

// IsEmpty reports whether the note has no content at all. Empty notes
// are discarded instead of saved.
func (n *Note) IsEmpty() bool {
	return strings.TrimSpace(n.Title) == "" &&
		strings.TrimSpace(n.Body) == "" &&
		len(n.Checklist) == 0
}

// HasTag checks for an exact match against the already-normalized tag set.
func (n *Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// SortKey is the recency used for ordering. UpdatedAt should always be
// set, but notes written by early blob versions may only carry CreatedAt.
func (n *Note) SortKey() int64 {
	if n.UpdatedAt != 0 {
		return n.UpdatedAt
	}
	return n.CreatedAt
}

// NormalizeTags trims, uppercases and deduplicates tags, keeping the
// first occurrence so display order follows user input order.
func NormalizeTags(tags []string) []string {
	normalized := []string{}
	seen := map[string]bool{}
	for _, tag := range tags {
		tag = strings.ToUpper(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		normalized = append(normalized, tag)
	}
	return normalized
}

// ParseTags splits a comma-separated tag input ("home, Work") into the
// normalized tag set.
func ParseTags(input string) []string {
	return NormalizeTags(strings.Split(input, ","))
}

// AddChecklistItem appends a new item; empty trimmed text is ignored.
func (n *Note) AddChecklistItem(id, text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	n.Checklist = append(n.Checklist, ChecklistItem{ID: id, Text: text})
	return true
}

// UpdateChecklistItem replaces the text of the item with the given id.
func (n *Note) UpdateChecklistItem(id, text string) bool {
	for i := range n.Checklist {
		if n.Checklist[i].ID == id {
			n.Checklist[i].Text = text
			return true
		}
	}
	return false
}

// ToggleChecklistItem flips completion of the item with the given id.
func (n *Note) ToggleChecklistItem(id string) bool {
	for i := range n.Checklist {
		if n.Checklist[i].ID == id {
			n.Checklist[i].Completed = !n.Checklist[i].Completed
			return true
		}
	}
	return false
}

// RemoveChecklistItem deletes the item with the given id.
func (n *Note) RemoveChecklistItem(id string) bool {
	for i := range n.Checklist {
		if n.Checklist[i].ID == id {
			n.Checklist = append(n.Checklist[:i], n.Checklist[i+1:]...)
			return true
		}
	}
	return false
}
