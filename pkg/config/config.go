// Package config manages the persisted generation settings: model, credential,
// and sampling parameters.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

const section = "gemini"

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-pro"

const (
	defaultTemperature = 0.9
	defaultTopK        = 40
	defaultTopP        = 0.9
	defaultHack        = true
)

// keyOrder fixes the order keys are listed and written in.
var keyOrder = []string{"model", "api_key", "temperature", "top_k", "top_p", "hack"}

var defaults = map[string]string{
	"model":       DefaultModel,
	"api_key":     "",
	"temperature": "0.9",
	"top_k":       "40",
	"top_p":       "0.9",
	"hack":        "true",
}

// Config holds the generation settings as raw strings backed by an ini file.
// Values are parsed on access; unparsable values fall back to defaults.
type Config struct {
	path   string
	values map[string]string
}

// LoadOrCreate reads the config file at path, synthesizing and persisting the
// defaults when the file does not exist. Unknown keys are ignored; missing
// recognized keys fall back to their defaults.
func LoadOrCreate(path string) (*Config, error) {
	c := &Config{path: path, values: make(map[string]string, len(defaults))}
	for k, v := range defaults {
		c.values[k] = v
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := c.Save(); err != nil {
			return nil, fmt.Errorf("create default config: %w", err)
		}
		return c, nil
	}

	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	sec := f.Section(section)
	for _, k := range keyOrder {
		if sec.HasKey(k) {
			c.values[k] = sec.Key(k).String()
		}
	}
	return c, nil
}

// Save writes all settings back to the config file, overwriting it.
func (c *Config) Save() error {
	f := ini.Empty()
	sec, err := f.NewSection(section)
	if err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	for _, k := range keyOrder {
		if _, err := sec.NewKey(k, c.values[k]); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
	}
	if err := f.SaveTo(c.path); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

// Path returns the backing file path.
func (c *Config) Path() string {
	return c.path
}

// Keys lists the recognized setting names in a stable order.
func (c *Config) Keys() []string {
	out := make([]string, len(keyOrder))
	copy(out, keyOrder)
	return out
}

// Get returns the stored raw value for key.
func (c *Config) Get(key string) (string, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Set assigns a raw value to a recognized key. No type validation happens
// here; the typed accessors substitute defaults for unparsable values.
func (c *Config) Set(key, raw string) error {
	if _, ok := c.values[key]; !ok {
		return fmt.Errorf("unknown setting: %s", key)
	}
	c.values[key] = strings.TrimSpace(raw)
	return nil
}

// Model returns the configured model identifier.
func (c *Config) Model() string {
	if v := strings.TrimSpace(c.values["model"]); v != "" {
		return v
	}
	return DefaultModel
}

// APIKey returns the trimmed credential. Empty means not configured; callers
// are responsible for warning the user.
func (c *Config) APIKey() string {
	return strings.TrimSpace(c.values["api_key"])
}

// Temperature returns the sampling temperature.
func (c *Config) Temperature() float64 {
	v, err := strconv.ParseFloat(c.values["temperature"], 64)
	if err != nil {
		return defaultTemperature
	}
	return v
}

// TopK returns the top-k sampling parameter.
func (c *Config) TopK() int {
	v, err := strconv.Atoi(c.values["top_k"])
	if err != nil {
		return defaultTopK
	}
	return v
}

// TopP returns the top-p sampling parameter.
func (c *Config) TopP() float64 {
	v, err := strconv.ParseFloat(c.values["top_p"], 64)
	if err != nil {
		return defaultTopP
	}
	return v
}

// HackEnabled reports whether the scripted opening turn is injected.
func (c *Config) HackEnabled() bool {
	v, err := strconv.ParseBool(c.values["hack"])
	if err != nil {
		return defaultHack
	}
	return v
}
