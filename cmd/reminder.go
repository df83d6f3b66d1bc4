package cmd

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/rpmellow/notepad/internal/model"
	"github.com/rpmellow/notepad/internal/notify"
	"github.com/rpmellow/notepad/internal/store"
	"github.com/spf13/cobra"
)

func parseReminderTime(input string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, input); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", input, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected RFC3339 or '2006-01-02 15:04', got %q", input)
	}
	return t, nil
}

// setReminder replaces the note's reminder. The old notification is
// cancelled first; a scheduling failure still commits the reminder,
// just without an active notification. Reminder-only changes do not
// bump UpdatedAt.
func setReminder(noteID string, at time.Time, config model.Config, notifier notify.Notifier) error {
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
			log.Printf("⚠️ Failed to cancel notification: %v", err)
		}
		notes[i].NotificationID = nil
	}

	ms := at.UnixMilli()
	notes[i].Reminder = &ms

	notificationId, err := notifier.Schedule(notes[i])
	if err != nil {
		log.Printf("⚠️ Failed to schedule notification: %v", err)
	} else if notificationId != "" {
		notes[i].NotificationID = &notificationId
	}

	if err := store.SaveNotes(notes, noteJsonPath); err != nil {
		return fmt.Errorf("❌ Failed to save notes: %w", err)
	}
	return nil
}

// clearReminder drops the reminder and cancels its notification.
func clearReminder(noteID string, config model.Config, notifier notify.Notifier) error {
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
			log.Printf("⚠️ Failed to cancel notification: %v", err)
		}
	}
	notes[i].Reminder = nil
	notes[i].NotificationID = nil

	if err := store.SaveNotes(notes, noteJsonPath); err != nil {
		return fmt.Errorf("❌ Failed to save notes: %w", err)
	}
	return nil
}

// reminderCmd represents the reminder command
var reminderCmd = &cobra.Command{
	Use:     "reminder",
	Short:   "Manage note reminders",
	Aliases: []string{"r"},
}

var setReminderCmd = &cobra.Command{
	Use:     "set [noteID] [when]",
	Short:   "Set a reminder on a note",
	Args:    cobra.ExactArgs(2),
	Aliases: []string{"s"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		at, err := parseReminderTime(args[1])
		if err != nil {
			log.Printf("❌ Invalid reminder time: %v\n", err)
			os.Exit(1)
		}

		if err := setReminder(args[0], at, *config, notify.NewLedger(*config)); err != nil {
			log.Fatalf("❌ %v", err)
		}

		fmt.Printf("⏰ Reminder set on note %s for %s.\n", args[0], at.Format("2006-01-02 15:04"))
	},
}

var clearReminderCmd = &cobra.Command{
	Use:     "clear [noteID]",
	Short:   "Clear a note's reminder",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"c"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		if err := clearReminder(args[0], *config, notify.NewLedger(*config)); err != nil {
			log.Fatalf("❌ %v", err)
		}

		fmt.Printf("✅ Reminder cleared on note %s.\n", args[0])
	},
}

var dueReminderCmd = &cobra.Command{
	Use:   "due",
	Short: "List pending reminders",
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		entries, err := notify.NewLedger(*config).Pending()
		if err != nil {
			log.Fatalf("❌ %v", err)
		}

		if len(entries) == 0 {
			fmt.Println("No pending reminders.")
			return
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleDouble)
		t.Style().Options.SeparateRows = false

		t.AppendHeader(table.Row{
			text.FgGreen.Sprintf("When"), text.FgGreen.Sprintf("Note"),
			text.FgGreen.Sprintf("%s", text.Bold.Sprintf("Title")),
		})

		for _, entry := range entries {
			t.AppendRow(table.Row{
				time.UnixMilli(entry.At).Format("2006-01-02 15:04"),
				entry.NoteID,
				entry.Title,
			})
		}

		t.Render()
	},
}

var watchReminderCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the reminder loop and fire desktop notifications",
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		interval := time.Duration(config.Notify.Interval) * time.Second
		if interval <= 0 {
			interval = 30 * time.Second
		}

		log.Printf("🔄 Watching reminders every %s (Ctrl-C to stop)...", interval)

		ledger := notify.NewLedger(*config)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			due, err := ledger.Due(time.Now())
			if err != nil {
				log.Printf("⚠️ Failed to read reminders: %v", err)
			}
			for _, entry := range due {
				if err := notify.Send(entry, *config); err != nil {
					// Non-critical: the reminder is consumed either way
					log.Printf("⚠️ Failed to send notification: %v", err)
				} else {
					log.Printf("⏰ Reminder fired: %s", entry.Title)
				}
			}
			<-ticker.C
		}
	},
}

func init() {
	reminderCmd.AddCommand(setReminderCmd)
	reminderCmd.AddCommand(clearReminderCmd)
	reminderCmd.AddCommand(dueReminderCmd)
	reminderCmd.AddCommand(watchReminderCmd)
	rootCmd.AddCommand(reminderCmd)
}
