package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dungeonexplorer/pkg/engine/world"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ENVIRONMENT", "LOG_LEVEL", "LOG_FILE", "DUNGEON_SIZE", "PLAYER_HEALTH", "DUNGEON_SEED", "DUNGEON_VOCABULARY", "DUNGEON_LANG", "DUNGEON_UI"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, world.DefaultSize, cfg.GridSize)
	assert.Equal(t, 100, cfg.PlayerHealth)
	assert.Zero(t, cfg.Seed)
	assert.Empty(t, cfg.VocabularyPath)
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, UIPlain, cfg.UI)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("DUNGEON_SIZE", "6")
	t.Setenv("PLAYER_HEALTH", "25")
	t.Setenv("DUNGEON_SEED", "1234")
	t.Setenv("DUNGEON_LANG", "fr")
	t.Setenv("DUNGEON_UI", "Select")

	cfg := Load()

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 6, cfg.GridSize)
	assert.Equal(t, 25, cfg.PlayerHealth)
	assert.Equal(t, int64(1234), cfg.Seed)
	assert.Equal(t, "fr", cfg.Language)
	assert.Equal(t, UISelect, cfg.UI)
}

func TestLoad_BadNumbersFallBack(t *testing.T) {
	t.Setenv("DUNGEON_SIZE", "big")
	t.Setenv("PLAYER_HEALTH", "lots")

	cfg := Load()

	assert.Equal(t, world.DefaultSize, cfg.GridSize)
	assert.Equal(t, 100, cfg.PlayerHealth)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"nonsense", slog.LevelWarn},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLogLevel(tt.in), "parseLogLevel(%q)", tt.in)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero size", func(c *Config) { c.GridSize = 0 }, true},
		{"negative health", func(c *Config) { c.PlayerHealth = -1 }, true},
		{"unknown ui", func(c *Config) { c.UI = "gui" }, true},
		{"select ui", func(c *Config) { c.UI = UISelect }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{GridSize: 4, PlayerHealth: 100, UI: UIPlain}
			tt.mutate(cfg)
			if tt.wantErr {
				assert.Error(t, cfg.Validate())
			} else {
				assert.NoError(t, cfg.Validate())
			}
		})
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadVocabulary_EmptyPathIsDefault(t *testing.T) {
	vocab, err := LoadVocabulary("")
	require.NoError(t, err)
	assert.Equal(t, world.DefaultVocabulary(), vocab)
}

func TestLoadVocabulary_OverridesAndNormalizes(t *testing.T) {
	path := writeFile(t, `
items:
  - healing potion
  - "  rusty key "
walls:
  - " obsidian "
`)

	vocab, err := LoadVocabulary(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Healing Potion", "Rusty Key"}, vocab.Items)
	assert.Equal(t, []string{"obsidian"}, vocab.Walls)
	assert.Equal(t, world.DefaultVocabulary().Shapes, vocab.Shapes)
}

func TestLoadVocabulary_DropsMarkupDelimiters(t *testing.T) {
	path := writeFile(t, `
items:
  - "{lantern}"
floors:
  - "GT{MENU_QUIT} tiles"
`)

	vocab, err := LoadVocabulary(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Lantern"}, vocab.Items)
	assert.Equal(t, []string{"GTMENU_QUIT tiles"}, vocab.Floors)
}

func TestLoadVocabulary_Invalid(t *testing.T) {
	path := writeFile(t, "items: []\n")
	_, err := LoadVocabulary(path)
	assert.ErrorIs(t, err, world.ErrInvalidVocabulary)
}

func TestLoadVocabulary_Errors(t *testing.T) {
	_, err := LoadVocabulary(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadVocabulary(writeFile(t, "items: [unclosed\n"))
	assert.Error(t, err)
}
