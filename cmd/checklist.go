package cmd

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/rpmellow/notepad/internal/model"
	"github.com/rpmellow/notepad/internal/notify"
	"github.com/rpmellow/notepad/internal/store"
	"github.com/spf13/cobra"
)

var todoItems []string
var todoTagsInput string
var todoPin bool

// mutateChecklist loads the note, applies the change to its checklist
// and commits. Checklist changes are content mutations, so UpdatedAt
// is bumped.
func mutateChecklist(noteID string, config model.Config, change func(note *model.Note) error) error {
	notes, noteJsonPath, err := store.LoadNotes(config)
	if err != nil {
		return fmt.Errorf("❌ Failed to load notes: %w", err)
	}

	i := store.FindNote(notes, noteID)
	if i == -1 {
		return fmt.Errorf("❌ Note %s not found", noteID)
	}
	if notes[i].Type != model.NoteTypeTodo {
		return fmt.Errorf("❌ Note %s is not a checklist", noteID)
	}

	if err := change(&notes[i]); err != nil {
		return err
	}
	notes[i].UpdatedAt = time.Now().UnixMilli()

	if err := store.SaveNotes(notes, noteJsonPath); err != nil {
		return fmt.Errorf("❌ Failed to save notes: %w", err)
	}
	return nil
}

// todoCmd represents the todo command
var todoCmd = &cobra.Command{
	Use:     "todo",
	Short:   "Manage checklist notes",
	Aliases: []string{"t"},
}

var newTodoCmd = &cobra.Command{
	Use:     "new [title]",
	Short:   "Add a new checklist note",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"n"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		draft := model.Note{Type: model.NoteTypeTodo}
		for _, text := range todoItems {
			draft.AddChecklistItem(store.NextNoteID(), text)
		}

		note, saved, err := createNote(args[0], "", todoTagsInput, model.NoteTypeTodo,
			draft.Checklist, todoPin, nil, *config, notify.NewLedger(*config))
		if err != nil {
			log.Printf("❌ Failed to create checklist: %v\n", err)
			os.Exit(1)
		}
		if !saved {
			fmt.Println("Nothing to save: the checklist is empty.")
			return
		}

		fmt.Printf("✅ Checklist %s has been created successfully.\n", note.ID)
	},
}

var addTodoItemCmd = &cobra.Command{
	Use:     "add [noteID] [text]",
	Short:   "Append an item to a checklist",
	Args:    cobra.ExactArgs(2),
	Aliases: []string{"a"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		itemID := store.NextNoteID()
		err = mutateChecklist(args[0], *config, func(note *model.Note) error {
			if !note.AddChecklistItem(itemID, args[1]) {
				return fmt.Errorf("❌ Item text is empty")
			}
			return nil
		})
		if err != nil {
			log.Fatalf("❌ %v", err)
		}

		fmt.Printf("✅ Item %s added to checklist %s.\n", itemID, args[0])
	},
}

var doneTodoItemCmd = &cobra.Command{
	Use:     "done [noteID] [itemID]",
	Short:   "Toggle an item's completion",
	Args:    cobra.ExactArgs(2),
	Aliases: []string{"d"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		err = mutateChecklist(args[0], *config, func(note *model.Note) error {
			if !note.ToggleChecklistItem(args[1]) {
				return fmt.Errorf("❌ Item %s not found", args[1])
			}
			return nil
		})
		if err != nil {
			log.Fatalf("❌ %v", err)
		}

		fmt.Printf("✅ Item %s toggled.\n", args[1])
	},
}

var editTodoItemCmd = &cobra.Command{
	Use:     "edit [noteID] [itemID] [text]",
	Short:   "Replace an item's text",
	Args:    cobra.ExactArgs(3),
	Aliases: []string{"e"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		err = mutateChecklist(args[0], *config, func(note *model.Note) error {
			if !note.UpdateChecklistItem(args[1], args[2]) {
				return fmt.Errorf("❌ Item %s not found", args[1])
			}
			return nil
		})
		if err != nil {
			log.Fatalf("❌ %v", err)
		}

		fmt.Printf("✅ Item %s updated.\n", args[1])
	},
}

var removeTodoItemCmd = &cobra.Command{
	Use:     "remove [noteID] [itemID]",
	Short:   "Remove an item from a checklist",
	Args:    cobra.ExactArgs(2),
	Aliases: []string{"rm"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		err = mutateChecklist(args[0], *config, func(note *model.Note) error {
			if !note.RemoveChecklistItem(args[1]) {
				return fmt.Errorf("❌ Item %s not found", args[1])
			}
			return nil
		})
		if err != nil {
			log.Fatalf("❌ %v", err)
		}

		fmt.Printf("✅ Item %s removed.\n", args[1])
	},
}

func init() {
	todoCmd.AddCommand(newTodoCmd)
	todoCmd.AddCommand(addTodoItemCmd)
	todoCmd.AddCommand(doneTodoItemCmd)
	todoCmd.AddCommand(editTodoItemCmd)
	todoCmd.AddCommand(removeTodoItemCmd)
	rootCmd.AddCommand(todoCmd)

	newTodoCmd.Flags().StringArrayVarP(&todoItems, "item", "i", []string{}, "Checklist item (repeatable)")
	newTodoCmd.Flags().StringVarP(&todoTagsInput, "tag", "t", "", "Comma-separated tags")
	newTodoCmd.Flags().BoolVar(&todoPin, "pin", false, "Pin the checklist")
}
