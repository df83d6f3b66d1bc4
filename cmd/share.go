package cmd

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"

	"github.com/rpmellow/notepad/internal/store"
	"github.com/rpmellow/notepad/internal/util"
	"github.com/spf13/cobra"
)

// shareCmd hands a note's rendered text to the configured share
// command, or prints it when none is configured. One-way, fire and
// forget.
var shareCmd = &cobra.Command{
	Use:   "share [noteID]",
	Short: "Export a note as plain text",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
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

		message := util.ShareText(notes[i])

		if config.Share.Command == "" {
			fmt.Println(message)
			return
		}

		parts := strings.Fields(config.Share.Command)
		c := exec.Command(parts[0], parts[1:]...)
		c.Stdin = strings.NewReader(message)
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		if err := c.Run(); err != nil {
			log.Fatalf("❌ Failed to share the note: %v", err)
		}

		fmt.Printf("✅ Note %s shared.\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(shareCmd)
}
