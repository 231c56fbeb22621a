package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tailored-agentic-units/statebox/observability"
)

const defaultObserver = "noop"

// StateConfig declares one state in a configuration file. Declaration order
// in the file is preserved; the first state becomes the initial one.
type StateConfig struct {
	Name    string         `json:"name" yaml:"name"`
	Context map[string]any `json:"context,omitempty" yaml:"context,omitempty"`
}

// Config holds construction parameters for a container. Observer names an
// entry in the observability registry.
type Config struct {
	Observer string        `json:"observer,omitempty" yaml:"observer,omitempty"`
	States   []StateConfig `json:"states" yaml:"states"`
}

// DefaultConfig returns a Config with sensible defaults. States is left
// empty on purpose: a usable state set must come from the caller or the
// loaded file.
func DefaultConfig() Config {
	return Config{
		Observer: defaultObserver,
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Observer != "" {
		c.Observer = source.Observer
	}
	if len(source.States) > 0 {
		c.States = source.States
	}
}

// LoadConfig reads a config file, merges it with defaults, and returns the
// resulting Config. The format is chosen by extension: .yaml/.yml files are
// parsed as YAML, everything else as JSON.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	switch filepath.Ext(filename) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &loaded); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}

// NewFromConfig creates a container from configuration, resolving the
// observer by name from the observability registry. An empty observer name
// falls back to the noop observer.
//
// Example:
//
//	cfg, err := store.LoadConfig("states.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	h, err := store.NewFromConfig(*cfg)
func NewFromConfig(cfg Config) (*Handle, error) {
	name := cfg.Observer
	if name == "" {
		name = defaultObserver
	}
	observer, err := observability.GetObserver(name)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve observer: %w", err)
	}

	entries := make([]Entry, 0, len(cfg.States))
	for _, s := range cfg.States {
		entries = append(entries, Entry{Name: s.Name, Context: s.Context})
	}
	return New(observer, entries...)
}
