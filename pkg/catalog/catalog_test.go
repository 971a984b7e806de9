package catalog

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type staticLister struct {
	entries []Entry
	err     error
}

func (l staticLister) ListModels(context.Context) ([]Entry, error) {
	return l.entries, l.err
}

func TestWriteReport(t *testing.T) {
	entries := []Entry{
		{Name: "models/gemini-1.5-flash", Notes: notesFor("models/gemini-1.5-flash")},
		{Name: "models/other", Notes: notesFor("models/other")},
	}

	var buf bytes.Buffer
	if err := WriteReport(&buf, entries); err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}
	got := buf.String()
	if !strings.HasPrefix(got, "Available Models:\n------------------\n") {
		t.Fatalf("unexpected report header:\n%s", got)
	}
	for _, want := range []string{
		"Model Name: models/gemini-1.5-flash",
		"1500 RPM",
		"Model Name: models/other",
		"Please refer to official documentation",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in report:\n%s", want, got)
		}
	}
}

func TestWriteManifestRoundTrips(t *testing.T) {
	entries := []Entry{{Name: "models/gemini-pro", Notes: []string{"note"}}}

	var buf bytes.Buffer
	if err := WriteManifest(&buf, entries); err != nil {
		t.Fatalf("WriteManifest failed: %v", err)
	}

	var decoded struct {
		Models []Entry `yaml:"models"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("unmarshal manifest: %v", err)
	}
	if len(decoded.Models) != 1 || decoded.Models[0].Name != "models/gemini-pro" {
		t.Fatalf("unexpected manifest contents: %#v", decoded.Models)
	}
}

func TestExportWritesBothFiles(t *testing.T) {
	dir := t.TempDir()
	lister := staticLister{entries: []Entry{{Name: "models/gemini-pro"}}}

	if err := Export(context.Background(), lister, dir); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	for _, name := range []string{ReportFile, ManifestFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("expected %s to be written: %v", name, err)
		}
	}
}

func TestExportSurfacesListerError(t *testing.T) {
	lister := staticLister{err: errors.New("no access")}
	if err := Export(context.Background(), lister, t.TempDir()); err == nil {
		t.Fatal("expected error from lister")
	}
}
