package util

import (
	"fmt"
	"strings"
	"time"

	"github.com/rpmellow/notepad/internal/model"
)

// ShareText renders a note as a single text blob for hand-off to an
// external share target: title, body or checkbox lines, and an
// optional reminder line.
func ShareText(note model.Note) string {
	title := note.Title
	if title == "" {
		title = "Untitled"
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")

	if note.Type == model.NoteTypeTodo && len(note.Checklist) > 0 {
		lines := make([]string, 0, len(note.Checklist))
		for _, item := range note.Checklist {
			box := "[ ]"
			if item.Completed {
				box = "[x]"
			}
			lines = append(lines, fmt.Sprintf("%s %s", box, item.Text))
		}
		b.WriteString(strings.Join(lines, "\n"))
	} else if note.Body != "" {
		b.WriteString(note.Body)
	} else {
		b.WriteString("No content")
	}

	if note.Reminder != nil {
		at := time.UnixMilli(*note.Reminder)
		b.WriteString(fmt.Sprintf("\n\nReminder: %s", at.Format("2006-01-02 15:04")))
	}

	return b.String()
}
