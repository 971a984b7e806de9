// Top-level command dispatch after the chat session ends.
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chunhub/gemini-chat/pkg/config"
	"github.com/chunhub/gemini-chat/pkg/settings"
	"github.com/chunhub/gemini-chat/pkg/theme"
)

// runCommandLoop prompts for commands until "exit" or EOF. "setting" opens
// the settings editor against the live config and theme; anything else
// reports an invalid command and reprompts. Matching is case-insensitive.
func runCommandLoop(cfg *config.Config, th *theme.Theme, in *bufio.Scanner, out io.Writer) error {
	for {
		_, _ = fmt.Fprint(out, "Enter command ('setting' for settings, 'exit' to quit): ")
		if !in.Scan() {
			break
		}

		switch strings.ToLower(strings.TrimSpace(in.Text())) {
		case "setting":
			editor := &settings.Editor{Config: cfg, Theme: th, In: in, Out: out}
			if err := editor.Run(); err != nil {
				return err
			}
		case "exit":
			th.Infoln(out, "Program exited.")
			return nil
		default:
			th.Infoln(out, "Invalid command, please try again.")
		}
	}

	if err := in.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
