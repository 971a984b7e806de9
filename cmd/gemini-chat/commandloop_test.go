package main

import (
	"bufio"
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chunhub/gemini-chat/pkg/config"
	"github.com/chunhub/gemini-chat/pkg/theme"
)

func newLoopFixture(t *testing.T, input string) (*config.Config, *theme.Theme, *bufio.Scanner, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()

	cfg, err := config.LoadOrCreate(filepath.Join(dir, "config.ini"))
	if err != nil {
		t.Fatal(err)
	}
	th, err := theme.LoadOrCreate(filepath.Join(dir, "rgb.ini"))
	if err != nil {
		t.Fatal(err)
	}
	return cfg, th, bufio.NewScanner(strings.NewReader(input)), &bytes.Buffer{}
}

func TestCommandLoopExit(t *testing.T) {
	cfg, th, in, out := newLoopFixture(t, "exit\n")

	if err := runCommandLoop(cfg, th, in, out); err != nil {
		t.Fatalf("runCommandLoop failed: %v", err)
	}
	if !strings.Contains(out.String(), "Program exited.") {
		t.Fatalf("expected goodbye message, got:\n%s", out.String())
	}
}

func TestCommandLoopExitIsCaseInsensitive(t *testing.T) {
	cfg, th, in, out := newLoopFixture(t, "  EXIT  \n")

	if err := runCommandLoop(cfg, th, in, out); err != nil {
		t.Fatalf("runCommandLoop failed: %v", err)
	}
	if !strings.Contains(out.String(), "Program exited.") {
		t.Fatalf("expected goodbye message, got:\n%s", out.String())
	}
}

func TestCommandLoopInvalidCommandReprompts(t *testing.T) {
	cfg, th, in, out := newLoopFixture(t, "bogus\nexit\n")

	if err := runCommandLoop(cfg, th, in, out); err != nil {
		t.Fatalf("runCommandLoop failed: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Invalid command, please try again.") {
		t.Fatalf("expected invalid command message, got:\n%s", got)
	}
	if strings.Count(got, "Enter command") != 2 {
		t.Fatalf("expected two prompts, got:\n%s", got)
	}
}

func TestCommandLoopEntersSettingsAndReturns(t *testing.T) {
	// Open the editor, modify a setting in memory, discard, then exit the
	// program; the shared scanner must hand input back to the outer loop.
	cfg, th, in, out := newLoopFixture(t, "setting\n2\ngemini\nmodel\ngemini-1.5-flash\n4\nexit\n")

	if err := runCommandLoop(cfg, th, in, out); err != nil {
		t.Fatalf("runCommandLoop failed: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "=== Setting Mode ===") {
		t.Fatalf("expected settings menu, got:\n%s", got)
	}
	if !strings.Contains(got, "Program exited.") {
		t.Fatalf("expected goodbye after settings, got:\n%s", got)
	}
	if cfg.Model() != "gemini-1.5-flash" {
		t.Fatalf("expected live config edit, got %q", cfg.Model())
	}
}
