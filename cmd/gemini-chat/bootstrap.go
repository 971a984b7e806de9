// First-run environment check.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const installedMarker = ".installed"

// ensureFirstRun verifies the working directory is writable on the first run
// and drops a marker file so later runs skip the check. A marker that cannot
// be written is the one fatal startup condition.
func ensureFirstRun(dir string, out io.Writer) error {
	marker := filepath.Join(dir, installedMarker)
	if _, err := os.Stat(marker); err == nil {
		return nil
	}

	f, err := os.Create(marker)
	if err != nil {
		return fmt.Errorf("environment check: %w", err)
	}
	_ = f.Close()
	_, _ = fmt.Fprintln(out, "Environment check complete.")
	return nil
}
