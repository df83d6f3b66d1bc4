package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/rpmellow/notepad/internal/model"
	"github.com/rpmellow/notepad/internal/store"
	"github.com/rpmellow/notepad/internal/util"
	"github.com/spf13/cobra"
)

var tagSearchQuery string
var tagPageSize int

// AddTagToNote normalizes the tag and attaches it to the note. Adding
// a tag the note already carries (case-insensitively) is rejected.
func AddTagToNote(noteID, tagName string, config model.Config) error {
	tags := model.ParseTags(tagName)
	if len(tags) == 0 {
		return fmt.Errorf("❌ Tag is empty")
	}
	tag := tags[0]

	notes, noteJsonPath, err := store.LoadNotes(config)
	if err != nil {
		return fmt.Errorf("❌ Failed to load notes: %w", err)
	}

	i := store.FindNote(notes, noteID)
	if i == -1 {
		return fmt.Errorf("❌ Note %s not found", noteID)
	}

	if notes[i].HasTag(tag) {
		return fmt.Errorf("⚠️ Tag '%s' already exists on note %s", tag, noteID)
	}

	notes[i].Tags = append(notes[i].Tags, tag)
	notes[i].UpdatedAt = time.Now().UnixMilli()

	if err := store.SaveNotes(notes, noteJsonPath); err != nil {
		return fmt.Errorf("❌ Failed to save notes: %w", err)
	}
	return nil
}

func RemoveTagFromNote(noteID, tagName string, config model.Config) error {
	tags := model.ParseTags(tagName)
	if len(tags) == 0 {
		return fmt.Errorf("❌ Tag is empty")
	}
	tag := tags[0]

	notes, noteJsonPath, err := store.LoadNotes(config)
	if err != nil {
		return fmt.Errorf("❌ Failed to load notes: %w", err)
	}

	i := store.FindNote(notes, noteID)
	if i == -1 {
		return fmt.Errorf("❌ Note %s not found", noteID)
	}

	if !notes[i].HasTag(tag) {
		return fmt.Errorf("❌ Tag '%s' not found on note %s", tag, noteID)
	}

	updatedTags := []string{}
	for _, t := range notes[i].Tags {
		if t != tag {
			updatedTags = append(updatedTags, t)
		}
	}
	notes[i].Tags = updatedTags
	notes[i].UpdatedAt = time.Now().UnixMilli()

	if err := store.SaveNotes(notes, noteJsonPath); err != nil {
		return fmt.Errorf("❌ Failed to save notes: %w", err)
	}
	return nil
}

// ListTags prints the tag vocabulary with usage counts.
func ListTags(config model.Config, searchQuery string, pageSize int) error {
	notes, _, err := store.LoadNotes(config)
	if err != nil {
		return fmt.Errorf("❌ Failed to load notes: %w", err)
	}

	tagCount := make(map[string]int)
	for _, note := range notes {
		for _, tag := range note.Tags {
			tagCount[tag]++
		}
	}

	vocabulary := util.TagVocabulary(notes)

	filteredTags := []string{}
	for _, tag := range vocabulary[1:] { // skip the synthetic "ALL"
		if searchQuery != "" && !strings.Contains(strings.ToLower(tag), strings.ToLower(searchQuery)) {
			continue
		}
		filteredTags = append(filteredTags, tag)
	}

	if len(filteredTags) == 0 {
		fmt.Println("No matching tags found.")
		return nil
	}

	if pageSize > 0 && len(filteredTags) > pageSize {
		filteredTags = filteredTags[:pageSize]
	}

	fmt.Println(strings.Repeat("=", 30))
	fmt.Printf("Notepad: %v tags shown\n", len(filteredTags))
	fmt.Println(strings.Repeat("=", 30))

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleDouble)
	t.Style().Options.SeparateRows = false

	t.AppendHeader(table.Row{
		text.FgGreen.Sprintf("%s", text.Bold.Sprintf("Tag Name")),
		text.FgGreen.Sprintf("Usage Count"),
	})

	for _, tag := range filteredTags {
		t.AppendRow(table.Row{tag, tagCount[tag]})
	}

	t.Render()
	return nil
}

// tagCmd represents the tag command
var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage note tags",
}

var addTagCmd = &cobra.Command{
	Use:     "add [noteID] [tag]",
	Short:   "Add a tag to a note",
	Args:    cobra.ExactArgs(2),
	Aliases: []string{"a"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		err = AddTagToNote(args[0], args[1], *config)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}

		fmt.Printf("✅ Tag '%s' added to note %s\n", strings.ToUpper(strings.TrimSpace(args[1])), args[0])
	},
}

var removeTagCmd = &cobra.Command{
	Use:     "remove [noteID] [tag]",
	Short:   "Remove a tag from a note",
	Args:    cobra.ExactArgs(2),
	Aliases: []string{"rm"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		err = RemoveTagFromNote(args[0], args[1], *config)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}

		fmt.Printf("✅ Tag '%s' removed from note %s\n", strings.ToUpper(strings.TrimSpace(args[1])), args[0])
	},
}

var listTagCmd = &cobra.Command{
	Use:     "list",
	Short:   "List all tags",
	Aliases: []string{"ls"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		err = ListTags(*config, tagSearchQuery, tagPageSize)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
	},
}

func init() {
	tagCmd.AddCommand(addTagCmd)
	tagCmd.AddCommand(removeTagCmd)
	tagCmd.AddCommand(listTagCmd)
	rootCmd.AddCommand(tagCmd)
	listTagCmd.Flags().StringVarP(&tagSearchQuery, "search", "q", "", "Search by tag name")
	listTagCmd.Flags().IntVar(&tagPageSize, "limit", 20, "Set the number of tags to display per page (-1 for all)")
}
