package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEnsureFirstRunCreatesMarker(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	if err := ensureFirstRun(dir, &out); err != nil {
		t.Fatalf("ensureFirstRun failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, installedMarker)); err != nil {
		t.Fatalf("expected marker file: %v", err)
	}
	if !strings.Contains(out.String(), "Environment check complete.") {
		t.Fatalf("expected first-run message, got: %q", out.String())
	}
}

func TestEnsureFirstRunSkipsWhenMarkerExists(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, installedMarker), nil, 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := ensureFirstRun(dir, &out); err != nil {
		t.Fatalf("ensureFirstRun failed: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output on later runs, got: %q", out.String())
	}
}

func TestReadOpeningTurn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "command.txt")
	if err := os.WriteFile(path, []byte("  run the scripted intro  \n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := readOpeningTurn(path)
	if err != nil {
		t.Fatalf("readOpeningTurn failed: %v", err)
	}
	if got != "run the scripted intro" {
		t.Fatalf("unexpected opening turn: %q", got)
	}
}

func TestReadOpeningTurnMissingFile(t *testing.T) {
	_, err := readOpeningTurn(filepath.Join(t.TempDir(), "command.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Fatalf("unexpected error: %v", err)
	}
}
