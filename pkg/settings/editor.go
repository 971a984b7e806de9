// Package settings implements the interactive settings editor over the
// generation config and the color theme.
package settings

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chunhub/gemini-chat/pkg/config"
	"github.com/chunhub/gemini-chat/pkg/theme"
)

// Editor drives the setting-mode menu. Modifications apply to the live Config
// and Theme immediately; only save-and-exit persists them. A discarded edit
// therefore remains visible for the rest of the process but is lost on exit;
// this mirrors the historical behavior and is pinned by tests.
//
// In is a shared line scanner owned by the caller, so nested prompts do not
// fight over buffered stdin.
type Editor struct {
	Config *config.Config
	Theme  *theme.Theme
	In     *bufio.Scanner
	Out    io.Writer

	// SaveConfig and SaveTheme default to the instances' own Save methods;
	// tests inject counters here.
	SaveConfig func() error
	SaveTheme  func() error
}

// Run loops over the menu until save-and-exit, exit-without-saving, or EOF.
func (e *Editor) Run() error {
	out := e.Out
	if out == nil {
		out = io.Discard
	}
	saveConfig := e.SaveConfig
	if saveConfig == nil {
		saveConfig = e.Config.Save
	}
	saveTheme := e.SaveTheme
	if saveTheme == nil {
		saveTheme = e.Theme.Save
	}

	scanner := e.In
	for {
		e.Theme.Infoln(out, "\n=== Setting Mode ===")
		e.Theme.Infoln(out, "1. View Current Settings")
		e.Theme.Infoln(out, "2. Modify Setting")
		e.Theme.Infoln(out, "3. Save and Exit")
		e.Theme.Infoln(out, "4. Exit Without Saving")
		choice, ok := prompt(scanner, out, "Select operation: ")
		if !ok {
			return scanner.Err()
		}

		switch choice {
		case "1":
			e.view(out)
		case "2":
			e.modify(scanner, out)
		case "3":
			if err := saveConfig(); err != nil {
				return err
			}
			if err := saveTheme(); err != nil {
				return err
			}
			e.Theme.Infoln(out, "Settings saved, exiting setting mode.")
			return nil
		case "4":
			e.Theme.Infoln(out, "Exiting setting mode, changes not saved.")
			return nil
		default:
			e.Theme.Infoln(out, "Invalid choice, please try again.")
		}
	}
}

func (e *Editor) view(out io.Writer) {
	e.Theme.Infoln(out, "\nCurrent Settings:")
	for _, key := range e.Config.Keys() {
		value, _ := e.Config.Get(key)
		_, _ = fmt.Fprintf(out, "  %s: %s\n", key, value)
	}

	e.Theme.Infoln(out, "\nRGB Settings:")
	for _, key := range e.Theme.Keys() {
		value, _ := e.Theme.Get(key)
		_, _ = fmt.Fprintf(out, "  %s: %s\n", key, value)
	}
}

func (e *Editor) modify(scanner *bufio.Scanner, out io.Writer) {
	domain, ok := prompt(scanner, out, "Enter 'gemini' to modify gemini settings or 'rgb' to modify rgb settings: ")
	if !ok {
		return
	}

	switch strings.ToLower(domain) {
	case "gemini":
		key, ok := prompt(scanner, out, "Enter setting to modify (e.g., model, api_key, temperature, top_k, top_p, hack): ")
		if !ok {
			return
		}
		if _, known := e.Config.Get(key); !known {
			e.Theme.Infoln(out, "Invalid setting.")
			return
		}
		value, ok := prompt(scanner, out, fmt.Sprintf("Enter new value for %s: ", key))
		if !ok {
			return
		}
		if err := e.Config.Set(key, value); err != nil {
			e.Theme.Infoln(out, "Invalid setting.")
			return
		}
		e.Theme.Infoln(out, "Setting modified.")
	case "rgb":
		key, ok := prompt(scanner, out, "Enter rgb setting to modify (e.g., blue_fg, green_fg, yellow_fg, cyan_fg, magenta_fg, blue_bg): ")
		if !ok {
			return
		}
		if _, known := e.Theme.Get(key); !known {
			e.Theme.Infoln(out, "Invalid setting.")
			return
		}
		value, ok := prompt(scanner, out, fmt.Sprintf("Enter new value for %s (e.g., 255,255,255): ", key))
		if !ok {
			return
		}
		if err := e.Theme.Set(key, value); err != nil {
			e.Theme.Infoln(out, "Invalid setting.")
			return
		}
		e.Theme.Infoln(out, "RGB setting modified.")
	default:
		e.Theme.Infoln(out, "Invalid setting type.")
	}
}

// prompt prints the prompt text and reads one trimmed line. ok is false on EOF.
func prompt(scanner *bufio.Scanner, out io.Writer, text string) (string, bool) {
	_, _ = fmt.Fprint(out, text)
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}
