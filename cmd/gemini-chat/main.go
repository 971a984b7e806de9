// Package main is an interactive console chat client for the Gemini API with
// persisted generation settings and a persisted terminal color theme.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/chunhub/gemini-chat/pkg/anim"
	"github.com/chunhub/gemini-chat/pkg/catalog"
	"github.com/chunhub/gemini-chat/pkg/chat"
	"github.com/chunhub/gemini-chat/pkg/config"
	"github.com/chunhub/gemini-chat/pkg/theme"
)

const (
	configFile = "config.ini"
	themeFile  = "rgb.ini"
)

// main is the program entry point.
func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	out := os.Stdout
	if err := ensureFirstRun(".", out); err != nil {
		return err
	}

	cfg, err := config.LoadOrCreate(configFile)
	if err != nil {
		return err
	}
	th, err := theme.LoadOrCreate(themeFile)
	if err != nil {
		return err
	}

	var logger chat.Logger = chat.NopLogger{}
	if strings.TrimSpace(os.Getenv("CHAT_VERBOSE")) != "" {
		logger = chat.NewWriterLogger(os.Stderr)
	}

	// The environment can override the stored credential for this run; the
	// override is never persisted unless the user saves it in setting mode.
	if envKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); envKey != "" {
		_ = cfg.Set("api_key", envKey)
	}
	apiKey := cfg.APIKey()
	if apiKey == "" {
		th.Infoln(out, "Error: API key is empty! Please configure using 'setting' command.")
	}

	ctx := context.Background()
	var backend chat.Backend
	if apiKey != "" {
		backend, err = buildBackend(ctx, th, cfg, apiKey, out)
		if err != nil {
			return err
		}
	}

	var openingTurn string
	if cfg.HackEnabled() {
		anim.Downloading(out, th, randomBetween(1500*time.Millisecond, 3500*time.Millisecond))
		anim.Loading(out, th, randomBetween(time.Second, 3*time.Second))
		turn, err := readOpeningTurn(openingTurnFile)
		if err != nil {
			th.Infof(out, "Error: %v", err)
		} else {
			openingTurn = turn
		}
	}

	stdin := bufio.NewScanner(os.Stdin)
	if apiKey != "" {
		session := &chat.Session{
			Config:  cfg,
			Theme:   th,
			Backend: backend,
			In:      stdin,
			Out:     out,
			Logger:  logger,
		}
		if err := session.Run(ctx, openingTurn); err != nil {
			return err
		}
	}

	return runCommandLoop(cfg, th, stdin, out)
}

// buildBackend selects the generation backend and, for Gemini, exports the
// model catalog as a best-effort side effect.
func buildBackend(ctx context.Context, th *theme.Theme, cfg *config.Config, apiKey string, out io.Writer) (chat.Backend, error) {
	switch name := strings.ToLower(strings.TrimSpace(os.Getenv("CHAT_BACKEND"))); name {
	case "", "gemini":
		client, err := chat.NewGeminiClient(ctx, apiKey)
		if err != nil {
			return nil, err
		}
		if err := catalog.Export(ctx, &catalog.GeminiLister{Client: client}, "."); err != nil {
			th.Infof(out, "Error listing models: %v", err)
		} else {
			th.Infof(out, "Model list saved to: %s", catalog.ReportFile)
		}
		return chat.NewGemini(client, cfg.Model()), nil
	case "openai":
		return chat.NewOpenAI(apiKey, strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")), cfg.Model()), nil
	default:
		return nil, fmt.Errorf("unknown CHAT_BACKEND: %s", name)
	}
}

func randomBetween(minimum, maximum time.Duration) time.Duration {
	return minimum + rand.N(maximum-minimum)
}
