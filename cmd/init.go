package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/rpmellow/notepad/internal/model"
	"github.com/rpmellow/notepad/internal/store"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize config.yaml",
	Run: func(cmd *cobra.Command, args []string) {
		configPath, err := store.GetConfigPath()
		if err != nil {
			log.Printf("failed to get config path: %v", err)
		}

		configDir := filepath.Dir(configPath)

		configFile := filepath.Join(configDir, "config.yaml")

		if err := os.MkdirAll(configDir, 0755); err != nil {
			log.Fatalf("❌ Failed to create config directory: %v", err)
		}

		configData, err := yaml.Marshal(model.DefaultConfig())
		if err != nil {
			log.Fatalf("❌ Failed to generate config: %v", err)
		}

		if err := os.WriteFile(configFile, configData, 0644); err != nil {
			log.Fatalf("❌ Failed to create config file: %v", err)
		}

		fmt.Println("✅ notepad initialized successfully!")
		fmt.Println("📄 Config file created at:", configFile)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
