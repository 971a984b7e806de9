// Package theme manages the persisted terminal color theme and renders
// named colors as 24-bit ANSI escape sequences.
package theme

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

const section = "colors"

// Reset restores the terminal's default colors.
const Reset = "\x1b[0m"

// keyOrder fixes the order keys are listed and written in.
var keyOrder = []string{
	"blue_fg",
	"green_fg",
	"yellow_fg",
	"cyan_fg",
	"magenta_fg",
	"blue_bg",
}

var defaults = map[string]string{
	"blue_fg":    "0,0,255",
	"green_fg":   "0,255,0",
	"yellow_fg":  "255,255,0",
	"cyan_fg":    "0,255,255",
	"magenta_fg": "255,0,255",
	"blue_bg":    "0,0,0",
}

// Theme maps semantic color names to "r,g,b" strings backed by an ini file.
type Theme struct {
	path   string
	values map[string]string
}

// LoadOrCreate reads the theme file at path, synthesizing and persisting the
// built-in defaults when the file does not exist. Unknown keys are ignored;
// missing recognized keys fall back to their defaults.
func LoadOrCreate(path string) (*Theme, error) {
	t := &Theme{path: path, values: make(map[string]string, len(defaults))}
	for k, v := range defaults {
		t.values[k] = v
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := t.Save(); err != nil {
			return nil, fmt.Errorf("create default theme: %w", err)
		}
		return t, nil
	}

	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}
	sec := f.Section(section)
	for _, k := range keyOrder {
		if sec.HasKey(k) {
			t.values[k] = sec.Key(k).String()
		}
	}
	return t, nil
}

// Save writes the full mapping back to the theme file, overwriting it.
func (t *Theme) Save() error {
	f := ini.Empty()
	sec, err := f.NewSection(section)
	if err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	for _, k := range keyOrder {
		if _, err := sec.NewKey(k, t.values[k]); err != nil {
			return fmt.Errorf("save theme: %w", err)
		}
	}
	if err := f.SaveTo(t.path); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

// Path returns the backing file path.
func (t *Theme) Path() string {
	return t.path
}

// Keys lists the recognized color names in a stable order.
func (t *Theme) Keys() []string {
	out := make([]string, len(keyOrder))
	copy(out, keyOrder)
	return out
}

// Get returns the stored raw value for name.
func (t *Theme) Get(name string) (string, bool) {
	v, ok := t.values[name]
	return v, ok
}

// Set assigns a raw "r,g,b" value to a recognized color name. The value is
// not validated here; malformed values degrade to no color at render time.
func (t *Theme) Set(name, raw string) error {
	if _, ok := t.values[name]; !ok {
		return fmt.Errorf("unknown color name: %s", name)
	}
	t.values[name] = strings.TrimSpace(raw)
	return nil
}

// ForegroundCode returns the 24-bit foreground escape for a color name, or
// an empty string when the stored value is not three comma-separated ints.
func (t *Theme) ForegroundCode(name string) string {
	r, g, b, ok := t.rgb(name)
	if !ok {
		return ""
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
}

// BackgroundCode is the background variant of ForegroundCode.
func (t *Theme) BackgroundCode(name string) string {
	r, g, b, ok := t.rgb(name)
	if !ok {
		return ""
	}
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r, g, b)
}

func (t *Theme) rgb(name string) (r, g, b int, ok bool) {
	raw, found := t.values[name]
	if !found {
		raw, found = defaults[name]
		if !found {
			return 0, 0, 0, false
		}
	}
	parts := strings.Split(raw, ",")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	channels := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0, 0, 0, false
		}
		channels[i] = n
	}
	return channels[0], channels[1], channels[2], true
}

// Infoln prints a status line in the theme's blue foreground over the blue
// background, followed by a reset.
func (t *Theme) Infoln(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s%s%s%s\n", t.BackgroundCode("blue_bg"), t.ForegroundCode("blue_fg"), msg, Reset)
}

// Infof is Infoln with formatting.
func (t *Theme) Infof(w io.Writer, format string, args ...any) {
	t.Infoln(w, fmt.Sprintf(format, args...))
}
