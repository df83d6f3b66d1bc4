package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "notepad",
	Short: "A single-screen note-taking app for the terminal",
	Long: `notepad keeps free-text notes and checklists in a local JSON blob,
with tags, pins, reminders and color themes. Everything lives on this
device; there is no server and no account.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
