package store

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/rpmellow/notepad/internal/model"
)

// Mode and palette are persisted as two separate single-value blobs,
// combined into one theme at startup.
const (
	modeFileName    = "mode"
	paletteFileName = "palette"
)

func LoadMode(config model.Config) string {
	mode := loadThemeValue(config, modeFileName)
	if !model.IsValidMode(mode) {
		if mode != "" {
			log.Printf("⚠️ Unknown mode %q, falling back to light", mode)
		}
		return model.ModeLight
	}
	return mode
}

func SaveMode(mode string, config model.Config) error {
	if !model.IsValidMode(mode) {
		return fmt.Errorf("❌ Invalid mode: %s (light or dark)", mode)
	}
	return saveThemeValue(config, modeFileName, mode)
}

func LoadPalette(config model.Config) string {
	palette := loadThemeValue(config, paletteFileName)
	if !model.IsValidPalette(palette) {
		if palette != "" {
			log.Printf("⚠️ Unknown palette %q, falling back to default", palette)
		}
		return "default"
	}
	return palette
}

func SavePalette(palette string, config model.Config) error {
	if !model.IsValidPalette(palette) {
		return fmt.Errorf("❌ Invalid palette: %s (available: %s)",
			palette, strings.Join(model.Palettes, ", "))
	}
	return saveThemeValue(config, paletteFileName, palette)
}

func loadThemeValue(config model.Config, name string) string {
	data, err := os.ReadFile(filepath.Join(config.DataDir, name))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ Failed to read %s file: %v", name, err)
		}
		return ""
	}
	return strings.TrimSpace(string(data))
}

func saveThemeValue(config model.Config, name, value string) error {
	if err := os.MkdirAll(config.DataDir, 0755); err != nil {
		return fmt.Errorf("❌ Failed to create data directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(config.DataDir, name), []byte(value+"\n"), 0644); err != nil {
		return fmt.Errorf("❌ Failed to write %s file: %w", name, err)
	}
	return nil
}
