package notify

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/rpmellow/notepad/internal/model"
)

// Send fires one desktop notification through the configured command
// (notify-send by default). The command gets title and body as its two
// arguments.
func Send(entry Entry, config model.Config) error {
	if !config.Notify.Enable {
		return nil
	}

	command := config.Notify.Command
	if command == "" {
		command = "notify-send"
	}

	parts := strings.Fields(command)
	if len(parts) == 0 {
		return fmt.Errorf("notify command is blank")
	}
	args := append(parts[1:], entry.Title, entry.Body)

	if err := exec.Command(parts[0], args...).Run(); err != nil {
		return fmt.Errorf("failed to run notify command (%s): %w", command, err)
	}
	return nil
}
