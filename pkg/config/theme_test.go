package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTheme(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadTheme(t *testing.T) {
	dir := t.TempDir()
	path := writeTheme(t, dir, "october.yaml", `
collection_name: "Halloween Frights"
keywords: [Horror, Halloween, ghost]
min_rating: 6.0
use_ai: true
ai_prompt: |
  Classic horror movies for a spooky october night.
max_items: 5
promote: true
schedule: 24h
`)

	spec, err := LoadTheme(path)
	require.NoError(t, err)

	assert.Equal(t, "october", spec.Name)
	assert.Equal(t, "Halloween Frights", spec.CollectionName)
	assert.Equal(t, []string{"Horror", "Halloween", "ghost"}, spec.Keywords)
	require.NotNil(t, spec.MinRating)
	assert.InDelta(t, 6.0, *spec.MinRating, 0.0001)
	assert.True(t, spec.UseAI)
	assert.Equal(t, 5, spec.MaxItems)
	assert.True(t, spec.Promote)
	assert.Equal(t, 24*time.Hour, spec.Schedule)
}

func TestLoadTheme_Defaults(t *testing.T) {
	dir := t.TempDir()
	path := writeTheme(t, dir, "best-of-noir.yaml", "use_ai: false\n")

	spec, err := LoadTheme(path)
	require.NoError(t, err)

	assert.Equal(t, "best-of-noir", spec.Name)
	assert.Equal(t, "Best Of Noir", spec.CollectionName, "collection name derived from file name")
	assert.Nil(t, spec.MinRating, "no rating filter by default")
	assert.Zero(t, spec.MaxItems, "engine default applies")
	assert.Zero(t, spec.Schedule, "manual runs only by default")
}

func TestLoadTheme_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{name: "ai without prompt", content: "use_ai: true\n", errMsg: "ai_prompt is required"},
		{name: "rating out of range", content: "min_rating: 11\n", errMsg: "min_rating must be between 0 and 10"},
		{name: "negative max items", content: "max_items: -1\n", errMsg: "max_items must be non-negative"},
		{name: "malformed yaml", content: "keywords: [a", errMsg: "parse theme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			_, err := LoadTheme(writeTheme(t, dir, "bad.yaml", tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadThemes(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "zombies.yaml", "collection_name: Zombies\n")
	writeTheme(t, dir, "april.yml", "collection_name: Spring Break\n")
	writeTheme(t, dir, "notes.txt", "not a theme\n")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0o700))

	specs, err := LoadThemes(dir)
	require.NoError(t, err)
	require.Len(t, specs, 2)
	assert.Equal(t, "april", specs[0].Name, "sorted by name")
	assert.Equal(t, "zombies", specs[1].Name)
}

func TestLoadThemes_BadFileFailsLoad(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "good.yaml", "collection_name: Good\n")
	writeTheme(t, dir, "broken.yaml", "use_ai: true\n")

	_, err := LoadThemes(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ai_prompt is required")
}

func TestLoadThemes_MissingDir(t *testing.T) {
	_, err := LoadThemes("/nonexistent/themes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read themes dir")
}
