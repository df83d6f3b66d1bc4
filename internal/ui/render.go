package ui

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/rpmellow/notepad/internal/model"
)

// RenderNoteTable prints one page of the projected note list.
func RenderNoteTable(notes []model.Note, theme Theme) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleDouble)
	t.Style().Options.SeparateRows = false

	t.AppendHeader(table.Row{
		theme.Header.Sprintf("ID"), theme.Header.Sprintf("%s", text.Bold.Sprintf("Title")),
		theme.Header.Sprintf("Type"), theme.Header.Sprintf("Tags"),
		theme.Header.Sprintf("Updated"),
	})

	for _, row := range notes {
		title := row.Title
		if row.Pinned {
			title = theme.Pin.Sprint("📌 ") + title
		}

		noteType := row.Type
		if noteType == model.NoteTypeTodo {
			noteType = theme.Accent.Sprintf("%s", noteType)
		}

		t.AppendRow(table.Row{
			row.ID,
			title,
			noteType,
			strings.Join(row.Tags, ", "),
			time.UnixMilli(row.SortKey()).Format("2006-01-02 15:04"),
		})
	}

	t.Render()
}

// RenderNote prints a single note: markdown-rendered body for text
// notes, checkbox lines for todo notes.
func RenderNote(note model.Note, theme Theme) {
	title := note.Title
	if title == "" {
		title = "Untitled"
	}
	fmt.Println(theme.Header.Sprintf("%s", text.Bold.Sprintf("%s", title)))
	if len(note.Tags) > 0 {
		fmt.Println(theme.Accent.Sprintf("%s", strings.Join(note.Tags, ", ")))
	}
	fmt.Println()

	if note.Type == model.NoteTypeTodo {
		for _, item := range note.Checklist {
			box := "[ ]"
			if item.Completed {
				box = theme.Accent.Sprintf("[x]")
			}
			fmt.Printf("%s %s\n", box, item.Text)
		}
	} else if note.Body != "" {
		renderedContent, err := glamour.Render(note.Body, theme.GlamourStyle())
		if err != nil {
			log.Printf("⚠️ Failed to render markdown content: %v", err)
			fmt.Println(note.Body)
		} else {
			fmt.Println(renderedContent)
		}
	}

	if note.Reminder != nil {
		fmt.Printf("\n⏰ Reminder: %s\n", time.UnixMilli(*note.Reminder).Format("2006-01-02 15:04"))
	}
}
