// Package notify holds the best-effort reminder machinery. Scheduling
// appends an entry to a reminders ledger next to the notes blob; a
// watch loop fires the configured desktop notification command when an
// entry comes due. Failures never block a note save.
package notify

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rpmellow/notepad/internal/model"
	"github.com/rpmellow/notepad/internal/store"
)

const ledgerFileName = "reminders.json"

type Entry struct {
	ID     string `json:"id"`
	NoteID string `json:"noteId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	At     int64  `json:"at"` // epoch milliseconds
}

// Notifier schedules and cancels note reminders. The note keeps only
// the opaque notification id; a nil id means no active reminder.
type Notifier interface {
	Schedule(note model.Note) (string, error)
	Cancel(id string) error
}

// Ledger is the file-backed Notifier.
type Ledger struct {
	path string
}

func NewLedger(config model.Config) *Ledger {
	return &Ledger{path: filepath.Join(config.DataDir, ledgerFileName)}
}

// Schedule registers a notification for the note's reminder. Notes
// without a reminder, or with one already in the past, get no
// notification and an empty id (not an error).
func (l *Ledger) Schedule(note model.Note) (string, error) {
	if note.Reminder == nil {
		return "", nil
	}
	at := time.UnixMilli(*note.Reminder)
	if !at.After(time.Now()) {
		return "", nil
	}

	entries, err := l.load()
	if err != nil {
		return "", err
	}

	entry := Entry{
		ID:     uuid.NewString(),
		NoteID: note.ID,
		Title:  notificationTitle(note),
		Body:   notificationBody(note),
		At:     *note.Reminder,
	}
	entries = append(entries, entry)

	if err := store.SaveJson(l.path, entries); err != nil {
		return "", fmt.Errorf("failed to save reminders ledger: %w", err)
	}
	return entry.ID, nil
}

// Cancel removes the entry with the given id. Cancelling an unknown or
// already-fired id is a no-op.
func (l *Ledger) Cancel(id string) error {
	if id == "" {
		return nil
	}

	entries, err := l.load()
	if err != nil {
		return err
	}

	kept := entries[:0]
	for _, entry := range entries {
		if entry.ID != id {
			kept = append(kept, entry)
		}
	}

	if err := store.SaveJson(l.path, kept); err != nil {
		return fmt.Errorf("failed to save reminders ledger: %w", err)
	}
	return nil
}

// Pending returns all scheduled entries, soonest first.
func (l *Ledger) Pending() ([]Entry, error) {
	entries, err := l.load()
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j].At < entries[j-1].At; j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}
	return entries, nil
}

// Due pops every entry whose timestamp has passed.
func (l *Ledger) Due(now time.Time) ([]Entry, error) {
	entries, err := l.load()
	if err != nil {
		return nil, err
	}

	due := []Entry{}
	kept := []Entry{}
	for _, entry := range entries {
		if time.UnixMilli(entry.At).After(now) {
			kept = append(kept, entry)
		} else {
			due = append(due, entry)
		}
	}

	if len(due) > 0 {
		if err := store.SaveJson(l.path, kept); err != nil {
			return nil, fmt.Errorf("failed to save reminders ledger: %w", err)
		}
	}
	return due, nil
}

func (l *Ledger) load() ([]Entry, error) {
	var entries []Entry
	if err := store.LoadJson(l.path, &entries); err != nil {
		return nil, fmt.Errorf("failed to load reminders ledger: %w", err)
	}
	return entries, nil
}

func notificationTitle(note model.Note) string {
	if note.Title != "" {
		return note.Title
	}
	return "Note Reminder"
}

func notificationBody(note model.Note) string {
	if note.Type == model.NoteTypeTodo && len(note.Checklist) > 0 {
		texts := make([]string, 0, len(note.Checklist))
		for _, item := range note.Checklist {
			texts = append(texts, item.Text)
		}
		return strings.Join(texts, "\n")
	}
	if note.Body != "" {
		return note.Body
	}
	return "No content"
}
