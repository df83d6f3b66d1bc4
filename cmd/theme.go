package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/rpmellow/notepad/internal/model"
	"github.com/rpmellow/notepad/internal/store"
	"github.com/spf13/cobra"
)

// themeCmd shows the current theme. Mode (light/dark) and palette are
// two independent persisted values.
var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or change the color theme",
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Mode:    %s\n", store.LoadMode(*config))
		fmt.Printf("Palette: %s\n", store.LoadPalette(*config))
	},
}

var themeModeCmd = &cobra.Command{
	Use:   "mode [light|dark]",
	Short: "Set the light/dark mode",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		if err := store.SaveMode(args[0], *config); err != nil {
			log.Fatalf("❌ %v", err)
		}

		fmt.Printf("✅ Mode set to %s.\n", args[0])
	},
}

var themePaletteCmd = &cobra.Command{
	Use:   "palette [name]",
	Short: "Set the color palette",
	Long:  "Set the color palette. Available: " + strings.Join(model.Palettes, ", ") + ".",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		if err := store.SavePalette(args[0], *config); err != nil {
			log.Fatalf("❌ %v", err)
		}

		fmt.Printf("✅ Palette set to %s.\n", args[0])
	},
}

func init() {
	themeCmd.AddCommand(themeModeCmd)
	themeCmd.AddCommand(themePaletteCmd)
	rootCmd.AddCommand(themeCmd)
}
