package chat

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chunhub/gemini-chat/pkg/config"
	"github.com/chunhub/gemini-chat/pkg/theme"
)

// Session runs one interactive conversation. It reads the generation settings
// on every call and never mutates them; history lives only for the duration
// of Run. In is a shared line scanner: the caller owns stdin and hands the
// same scanner to every interactive component in turn.
type Session struct {
	Config  *config.Config
	Theme   *theme.Theme
	Backend Backend
	In      *bufio.Scanner
	Out     io.Writer
	Logger  Logger
}

// Run drives the conversation loop until the user types "exit" or input ends.
// A non-empty openingTurn is queued as the first user turn and sent together
// with the first backend call; it is not a round-trip of its own. When no
// credential is configured Run returns immediately without touching the
// backend (the caller has already warned the user).
func (s *Session) Run(ctx context.Context, openingTurn string) error {
	if s.Config.APIKey() == "" {
		return nil
	}

	out := s.Out
	if out == nil {
		out = io.Discard
	}

	s.Theme.Infoln(out, "Successfully connected to the model!")
	userCode := s.Theme.ForegroundCode("green_fg")
	modelCode := s.Theme.ForegroundCode("yellow_fg")

	var history []Turn
	if openingTurn != "" {
		history = append(history, Turn{Role: RoleUser, Text: openingTurn})
		debugf(s.Logger, "[debug] opening turn queued (%d bytes)", len(openingTurn))
	}

	scanner := s.In
	for {
		_, _ = fmt.Fprintf(out, "%suser&//: %s", userCode, theme.Reset)
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(input, "exit") {
			s.Theme.Infoln(out, "Program exited.")
			break
		}

		history = append(history, Turn{Role: RoleUser, Text: input})
		params := GenParams{
			Temperature: s.Config.Temperature(),
			TopK:        s.Config.TopK(),
			TopP:        s.Config.TopP(),
		}
		debugf(s.Logger, "[debug] generate: turns=%d temperature=%v top_k=%d top_p=%v", len(history), params.Temperature, params.TopK, params.TopP)

		reply, err := s.Backend.Generate(ctx, history, params)
		if err != nil {
			// The user turn stays in history; the user may retry or exit.
			s.Theme.Infof(out, "Error: %v", err)
			continue
		}
		history = append(history, Turn{Role: RoleModel, Text: reply})
		_, _ = fmt.Fprintf(out, "\n%s//chun.com&: %s%s\n", modelCode, theme.Reset, reply)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
