// Package catalog exports the list of models available to the configured
// credential as a human-readable report and a YAML manifest.
package catalog

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"google.golang.org/genai"
	"gopkg.in/yaml.v3"
)

// File names written by Export.
const (
	ReportFile   = "available_models.txt"
	ManifestFile = "available_models.yaml"
)

// Entry describes one generation-capable model.
type Entry struct {
	Name  string   `yaml:"name"`
	Notes []string `yaml:"notes,omitempty"`
}

// Lister enumerates the models available to the credential.
type Lister interface {
	ListModels(ctx context.Context) ([]Entry, error)
}

// GeminiLister lists models through the Gemini API, keeping only those that
// support content generation.
type GeminiLister struct {
	Client *genai.Client
}

// ListModels implements Lister.
func (l *GeminiLister) ListModels(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	for m, err := range l.Client.Models.All(ctx) {
		if err != nil {
			return nil, fmt.Errorf("list models: %w", err)
		}
		if !slices.Contains(m.SupportedActions, "generateContent") {
			continue
		}
		entries = append(entries, Entry{Name: m.Name, Notes: notesFor(m.Name)})
	}
	return entries, nil
}

// notesFor returns the known free-tier limits for a model name.
func notesFor(name string) []string {
	switch strings.TrimPrefix(name, "models/") {
	case "gemini-1.5-flash":
		return []string{
			"Limitations: 1500 RPM (requests per minute)",
			"Pricing: Input and output are free",
		}
	case "gemini-1.5-pro":
		return []string{
			"Limitations: 2 RPM (requests per minute)",
			"      32,000 TPM (tokens per minute)",
			"      50 RPD (requests per day)",
		}
	default:
		return []string{"Limitations: Please refer to official documentation"}
	}
}

// WriteReport renders the human-readable model list.
func WriteReport(w io.Writer, entries []Entry) error {
	if _, err := fmt.Fprint(w, "Available Models:\n------------------\n"); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "Model Name: %s\n", e.Name); err != nil {
			return err
		}
		for _, note := range e.Notes {
			if _, err := fmt.Fprintf(w, "  %s\n", note); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, "------------------\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteManifest renders the machine-readable model list.
func WriteManifest(w io.Writer, entries []Entry) error {
	manifest := struct {
		Models []Entry `yaml:"models"`
	}{Models: entries}
	data, err := yaml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// Export lists the models and writes both files into dir.
func Export(ctx context.Context, lister Lister, dir string) error {
	entries, err := lister.ListModels(ctx)
	if err != nil {
		return err
	}

	report, err := os.Create(filepath.Join(dir, ReportFile))
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer func() { _ = report.Close() }()
	if err := WriteReport(report, entries); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	manifest, err := os.Create(filepath.Join(dir, ManifestFile))
	if err != nil {
		return fmt.Errorf("create manifest: %w", err)
	}
	defer func() { _ = manifest.Close() }()
	if err := WriteManifest(manifest, entries); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}
