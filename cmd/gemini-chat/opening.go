// Scripted opening-turn loading.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var openingTurnFile = filepath.Join("hck", "command.txt")

// Opening turns are meant to be short prompts; anything past this is noise.
const maxOpeningTurnBytes = 64 * 1024

// readOpeningTurn reads the scripted opening turn. A missing file is an
// error the caller reports and then continues without an opening turn.
func readOpeningTurn(path string) (string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("hck command file not found")
	}
	if err != nil {
		return "", fmt.Errorf("read hck command file: %w", err)
	}
	if len(data) > maxOpeningTurnBytes {
		data = data[:maxOpeningTurnBytes]
	}
	return strings.TrimSpace(string(data)), nil
}
