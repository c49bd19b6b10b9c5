package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ThemeSpec is a declarative description of one curation target, loaded
// from a per-theme YAML file. Immutable input to a run.
type ThemeSpec struct {
	Name           string        `yaml:"-" json:"name"` // file base name, set on load
	CollectionName string        `yaml:"collection_name" json:"collection_name"`
	Keywords       []string      `yaml:"keywords" json:"keywords,omitempty"`
	MinRating      *float64      `yaml:"min_rating" json:"min_rating,omitempty"`
	UseAI          bool          `yaml:"use_ai" json:"use_ai"`
	AIPrompt       string        `yaml:"ai_prompt" json:"ai_prompt,omitempty"`
	MaxItems       int           `yaml:"max_items" json:"max_items,omitempty"` // 0 means engine-wide default
	Promote        bool          `yaml:"promote" json:"promote"`
	Schedule       time.Duration `yaml:"schedule" json:"schedule,omitempty"` // 0 means manual runs only
}

// LoadTheme reads and validates a single theme spec file
func LoadTheme(path string) (*ThemeSpec, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the configured themes dir
	if err != nil {
		return nil, fmt.Errorf("read theme file: %w", err)
	}

	var spec ThemeSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse theme %s: %w", path, err)
	}

	spec.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if spec.CollectionName == "" {
		spec.CollectionName = titleCase(spec.Name)
	}

	if err := spec.validate(); err != nil {
		return nil, fmt.Errorf("invalid theme %s: %w", spec.Name, err)
	}
	return &spec, nil
}

// LoadThemes reads all theme specs from a directory, sorted by name.
// A single malformed file fails the load, silent skips hide config mistakes.
func LoadThemes(dir string) ([]*ThemeSpec, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read themes dir: %w", err)
	}

	var specs []*ThemeSpec
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		spec, err := LoadTheme(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}

	sort.Slice(specs, func(i, j int) bool { return specs[i].Name < specs[j].Name })
	return specs, nil
}

// validate checks the spec for consistency
func (s *ThemeSpec) validate() error {
	if s.UseAI && strings.TrimSpace(s.AIPrompt) == "" {
		return fmt.Errorf("ai_prompt is required when use_ai is set")
	}
	if s.MinRating != nil && (*s.MinRating < 0 || *s.MinRating > 10) {
		return fmt.Errorf("min_rating must be between 0 and 10")
	}
	if s.MaxItems < 0 {
		return fmt.Errorf("max_items must be non-negative")
	}
	if s.Schedule < 0 {
		return fmt.Errorf("schedule must be non-negative")
	}
	return nil
}

// titleCase turns a file base name like "october-horror" into "October Horror"
func titleCase(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool { return r == '-' || r == '_' || r == ' ' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
