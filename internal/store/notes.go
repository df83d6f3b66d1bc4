package store

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rpmellow/notepad/internal/model"
)

// The whole note list lives in a single JSON blob. Every mutation
// re-serializes everything; the data set is small and memory-resident.
const notesFileName = "notes.json"

func LoadNotes(config model.Config) ([]model.Note, string, error) {
	noteJsonPath := filepath.Join(config.DataDir, notesFileName)

	if err := os.MkdirAll(config.DataDir, 0755); err != nil {
		return nil, "", fmt.Errorf("❌ Failed to create data directory: %w", err)
	}

	// Initialize notes.json with an empty JSON array `[]` if absent
	if _, err := os.Stat(noteJsonPath); os.IsNotExist(err) {
		if err := os.WriteFile(noteJsonPath, []byte("[]"), 0644); err != nil {
			return nil, "", fmt.Errorf("❌ Failed to create notes.json file: %w", err)
		}
	} else if err != nil {
		return nil, "", fmt.Errorf("❌ Failed to check notes.json: %w", err)
	}

	var notes []model.Note
	if err := LoadJson(noteJsonPath, &notes); err != nil {
		return nil, "", fmt.Errorf("❌ Error loading notes from JSON: %w", err)
	}

	// Normalization on every load: blobs written by older versions may
	// miss the type field, carry mixed-case tags or nil checklists.
	for i := range notes {
		notes[i].Normalize()
	}

	return notes, noteJsonPath, nil
}

func SaveNotes(notes []model.Note, jsonPath string) error {
	if err := SaveJson(jsonPath, notes); err != nil {
		return fmt.Errorf("❌ Failed to save notes.json: %w", err)
	}
	return nil
}

// FindNote returns the index of the note with the given id, or -1.
func FindNote(notes []model.Note, id string) int {
	for i := range notes {
		if notes[i].ID == id {
			return i
		}
	}
	return -1
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// NextNoteID generates an identifier unique within one device's note
// set: epoch-millisecond prefix plus a random base36 suffix.
func NextNoteID() string {
	suffix := make([]byte, 7)
	for i := range suffix {
		suffix[i] = base36[rand.Intn(len(base36))]
	}
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + string(suffix)
}
