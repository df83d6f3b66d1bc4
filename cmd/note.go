package cmd

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rpmellow/notepad/internal/model"
	"github.com/rpmellow/notepad/internal/notify"
	"github.com/rpmellow/notepad/internal/store"
	"github.com/rpmellow/notepad/internal/ui"
	"github.com/rpmellow/notepad/internal/util"
	"github.com/spf13/cobra"
)

var noteBody string
var noteTagsInput string
var notePin bool
var noteRemind string
var noteListTag string
var noteSearchQuery string
var notePageSize int

// createNote builds a note from the edit inputs and commits it to the
// blob. Notes with no title, no body and no checklist are discarded
// without touching storage.
func createNote(title, body, tagsInput, noteType string, checklist []model.ChecklistItem,
	pinned bool, reminder *int64, config model.Config, notifier notify.Notifier) (model.Note, bool, error) {

	now := time.Now().UnixMilli()
	note := model.Note{
		ID:        store.NextNoteID(),
		Title:     strings.TrimSpace(title),
		Body:      strings.TrimSpace(body),
		Type:      noteType,
		Checklist: checklist,
		Tags:      model.ParseTags(tagsInput),
		Pinned:    pinned,
		Reminder:  reminder,
		CreatedAt: now,
		UpdatedAt: now,
	}
	note.Normalize()

	if note.IsEmpty() {
		return model.Note{}, false, nil
	}

	// Best effort: a note with an unschedulable reminder is still saved,
	// just without an active notification.
	if note.Reminder != nil {
		notificationId, err := notifier.Schedule(note)
		if err != nil {
			log.Printf("⚠️ Failed to schedule notification: %v", err)
		} else if notificationId != "" {
			note.NotificationID = &notificationId
		}
	}

	notes, noteJsonPath, err := store.LoadNotes(config)
	if err != nil {
		return model.Note{}, false, fmt.Errorf("❌ Failed to load notes: %w", err)
	}

	notes = append([]model.Note{note}, notes...)

	if err := store.SaveNotes(notes, noteJsonPath); err != nil {
		return model.Note{}, false, fmt.Errorf("❌ Failed to save notes: %w", err)
	}

	return note, true, nil
}

// deleteNote removes a note, cancelling its notification first.
func deleteNote(noteID string, config model.Config, notifier notify.Notifier) error {
	notes, noteJsonPath, err := store.LoadNotes(config)
	if err != nil {
		return fmt.Errorf("❌ Failed to load notes: %w", err)
	}

	i := store.FindNote(notes, noteID)
	if i == -1 {
		return fmt.Errorf("❌ Note %s not found", noteID)
	}

	if notes[i].NotificationID != nil {
		if err := notifier.Cancel(*notes[i].NotificationID); err != nil {
			// Non-critical: the note is removed regardless
			log.Printf("⚠️ Failed to cancel notification: %v", err)
		}
	}

	notes = append(notes[:i], notes[i+1:]...)

	if err := store.SaveNotes(notes, noteJsonPath); err != nil {
		return fmt.Errorf("❌ Failed to save notes: %w", err)
	}
	return nil
}

// togglePin flips the pin flag. Pin-only changes keep UpdatedAt as is,
// so pinning does not reshuffle recency within the pinned group.
func togglePin(noteID string, config model.Config) (bool, error) {
	notes, noteJsonPath, err := store.LoadNotes(config)
	if err != nil {
		return false, fmt.Errorf("❌ Failed to load notes: %w", err)
	}

	i := store.FindNote(notes, noteID)
	if i == -1 {
		return false, fmt.Errorf("❌ Note %s not found", noteID)
	}

	notes[i].Pinned = !notes[i].Pinned

	if err := store.SaveNotes(notes, noteJsonPath); err != nil {
		return false, fmt.Errorf("❌ Failed to save notes: %w", err)
	}
	return notes[i].Pinned, nil
}

// editNoteBody hands the body to the external editor and commits the
// result. A lock file guards the blob while the editor is open.
func editNoteBody(noteID string, config model.Config, notifier notify.Notifier) error {
	notes, noteJsonPath, err := store.LoadNotes(config)
	if err != nil {
		return fmt.Errorf("❌ Failed to load notes: %w", err)
	}

	i := store.FindNote(notes, noteID)
	if i == -1 {
		return fmt.Errorf("❌ Note %s not found", noteID)
	}
	if notes[i].Type == model.NoteTypeTodo {
		return fmt.Errorf("❌ Note %s is a checklist; use `notepad todo item`", noteID)
	}

	lockFilePath := filepath.Join(config.DataDir, ".edit.lock")
	if err := util.CreateLockFile(lockFilePath); err != nil {
		return fmt.Errorf("❌ Failed to create lock file: %w", err)
	}
	defer func() {
		if err := util.RemoveLockFile(lockFilePath); err != nil {
			log.Printf("⚠️ %v", err)
		}
	}()

	draftPath := filepath.Join(config.DataDir, noteID+".draft.md")
	if err := os.WriteFile(draftPath, []byte(notes[i].Body), 0644); err != nil {
		return fmt.Errorf("❌ Failed to write draft file: %w", err)
	}
	defer os.Remove(draftPath)

	if err := util.OpenEditor(draftPath, config); err != nil {
		return fmt.Errorf("❌ Failed to open editor: %w", err)
	}

	edited, err := os.ReadFile(draftPath)
	if err != nil {
		return fmt.Errorf("❌ Failed to read draft file: %w", err)
	}

	notes[i].Body = strings.TrimSpace(string(edited))
	notes[i].UpdatedAt = time.Now().UnixMilli()

	// A content edit supersedes the old notification
	if notes[i].Reminder != nil {
		if notes[i].NotificationID != nil {
			if err := notifier.Cancel(*notes[i].NotificationID); err != nil {
				log.Printf("⚠️ Failed to cancel notification: %v", err)
			}
			notes[i].NotificationID = nil
		}
		notificationId, err := notifier.Schedule(notes[i])
		if err != nil {
			log.Printf("⚠️ Failed to schedule notification: %v", err)
		} else if notificationId != "" {
			notes[i].NotificationID = &notificationId
		}
	}

	if err := store.SaveNotes(notes, noteJsonPath); err != nil {
		return fmt.Errorf("❌ Failed to save notes: %w", err)
	}
	return nil
}

func parseReminderFlag(input string) (*int64, error) {
	if input == "" {
		return nil, nil
	}
	at, err := parseReminderTime(input)
	if err != nil {
		return nil, err
	}
	ms := at.UnixMilli()
	return &ms, nil
}

// noteCmd represents the note command
var noteCmd = &cobra.Command{
	Use:     "note",
	Short:   "Manage free-text notes",
	Aliases: []string{"n"},
}

var newNoteCmd = &cobra.Command{
	Use:     "new [title]",
	Short:   "Add a new note",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"n"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		reminder, err := parseReminderFlag(noteRemind)
		if err != nil {
			log.Printf("❌ Invalid reminder time: %v\n", err)
			os.Exit(1)
		}

		note, saved, err := createNote(args[0], noteBody, noteTagsInput, model.NoteTypeText,
			nil, notePin, reminder, *config, notify.NewLedger(*config))
		if err != nil {
			log.Printf("❌ Failed to create note: %v\n", err)
			os.Exit(1)
		}
		if !saved {
			fmt.Println("Nothing to save: the note is empty.")
			return
		}

		fmt.Printf("✅ Note %s has been created successfully.\n", note.ID)
	},
}

var listNoteCmd = &cobra.Command{
	Use:     "list",
	Short:   "List notes filtered by tag and search text",
	Aliases: []string{"ls"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v", err)
			os.Exit(1)
		}

		notes, _, err := store.LoadNotes(*config)
		if err != nil {
			log.Printf("❌ Error loading notes from JSON: %v", err)
			os.Exit(1)
		}

		selectedTag := strings.ToUpper(strings.TrimSpace(noteListTag))
		if selectedTag == "" {
			selectedTag = util.AllTag
		}

		filteredNotes := util.Project(notes, selectedTag, noteSearchQuery)

		if len(filteredNotes) == 0 {
			fmt.Println("No matching notes found.")
			return
		}

		theme := ui.NewTheme(store.LoadMode(*config), store.LoadPalette(*config))

		reader := bufio.NewReader(os.Stdin)
		page := 0

		fmt.Println(strings.Repeat("=", 30))
		fmt.Printf("Notepad: %v notes shown\n", len(filteredNotes))
		fmt.Println(strings.Repeat("=", 30))

		if notePageSize == -1 {
			notePageSize = len(filteredNotes)
		}

		for {
			start := page * notePageSize
			end := start + notePageSize

			if start >= len(filteredNotes) {
				fmt.Println("No more notes to display.")
				break
			}
			if end > len(filteredNotes) {
				end = len(filteredNotes)
			}

			ui.RenderNoteTable(filteredNotes[start:end], theme)

			if notePageSize == len(filteredNotes) {
				break
			}
			if end >= len(filteredNotes) {
				break
			}

			fmt.Print("\nPress Enter for the next page (q to quit): ")
			input, _ := reader.ReadString('\n')
			input = strings.TrimSpace(input)

			if input == "q" {
				break
			}

			page++
		}
	},
}

var showNoteCmd = &cobra.Command{
	Use:     "show [noteID]",
	Short:   "Show a note's content",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"s"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v", err)
			os.Exit(1)
		}

		notes, _, err := store.LoadNotes(*config)
		if err != nil {
			log.Printf("❌ Error loading notes from JSON: %v", err)
			os.Exit(1)
		}

		i := store.FindNote(notes, args[0])
		if i == -1 {
			log.Printf("❌ Note %s not found", args[0])
			os.Exit(1)
		}

		theme := ui.NewTheme(store.LoadMode(*config), store.LoadPalette(*config))
		ui.RenderNote(notes[i], theme)
	},
}

var editNoteCmd = &cobra.Command{
	Use:     "edit [noteID]",
	Short:   "Edit a note's body in your editor",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"e"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		if err := editNoteBody(args[0], *config, notify.NewLedger(*config)); err != nil {
			log.Fatalf("❌ %v", err)
		}

		fmt.Printf("✅ Note %s updated.\n", args[0])
	},
}

var deleteNoteCmd = &cobra.Command{
	Use:     "delete [noteID]",
	Short:   "Delete a note",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"rm"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		if err := deleteNote(args[0], *config, notify.NewLedger(*config)); err != nil {
			log.Fatalf("❌ %v", err)
		}

		fmt.Printf("✅ Note %s deleted.\n", args[0])
	},
}

var pinNoteCmd = &cobra.Command{
	Use:     "pin [noteID]",
	Short:   "Toggle a note's pin",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"p"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		pinned, err := togglePin(args[0], *config)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}

		if pinned {
			fmt.Printf("📌 Note %s pinned.\n", args[0])
		} else {
			fmt.Printf("✅ Note %s unpinned.\n", args[0])
		}
	},
}

func init() {
	noteCmd.AddCommand(newNoteCmd)
	noteCmd.AddCommand(listNoteCmd)
	noteCmd.AddCommand(showNoteCmd)
	noteCmd.AddCommand(editNoteCmd)
	noteCmd.AddCommand(deleteNoteCmd)
	noteCmd.AddCommand(pinNoteCmd)
	rootCmd.AddCommand(noteCmd)

	newNoteCmd.Flags().StringVarP(&noteBody, "body", "b", "", "Note body text")
	newNoteCmd.Flags().StringVarP(&noteTagsInput, "tag", "t", "", "Comma-separated tags")
	newNoteCmd.Flags().BoolVar(&notePin, "pin", false, "Pin the note")
	newNoteCmd.Flags().StringVar(&noteRemind, "remind", "", "Reminder time (RFC3339 or '2006-01-02 15:04')")
	listNoteCmd.Flags().StringVarP(&noteListTag, "tag", "t", util.AllTag, "Filter by tag (ALL for no filter)")
	listNoteCmd.Flags().StringVarP(&noteSearchQuery, "search", "q", "", "Search in title, body, checklist and tags")
	listNoteCmd.Flags().IntVar(&notePageSize, "limit", 20, "Set the number of notes to display per page (-1 for all)")
}
