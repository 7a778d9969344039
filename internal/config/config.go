package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"dungeonexplorer/pkg/engine/world"
	"dungeonexplorer/pkg/game/renderer"
)

// Choice prompt styles
const (
	UIPlain  = "plain"
	UISelect = "select"
)

type Config struct {
	Environment    string
	LogLevel       slog.Level
	LogFile        string
	GridSize       int
	PlayerHealth   int
	Seed           int64
	VocabularyPath string
	Language       string
	UI             string
}

func Load() *Config {
	return &Config{
		Environment:    getEnv("ENVIRONMENT", "development"),
		LogLevel:       parseLogLevel(getEnv("LOG_LEVEL", "warn")),
		LogFile:        getEnv("LOG_FILE", ""),
		GridSize:       getEnvInt("DUNGEON_SIZE", world.DefaultSize),
		PlayerHealth:   getEnvInt("PLAYER_HEALTH", 100),
		Seed:           int64(getEnvInt("DUNGEON_SEED", 0)),
		VocabularyPath: getEnv("DUNGEON_VOCABULARY", ""),
		Language:       getEnv("DUNGEON_LANG", "en"),
		UI:             strings.ToLower(getEnv("DUNGEON_UI", UIPlain)),
	}
}

// Validate checks the values a session cannot start without
func (c *Config) Validate() error {
	if c.GridSize <= 0 {
		return fmt.Errorf("grid size must be positive, got %d", c.GridSize)
	}
	if c.PlayerHealth <= 0 {
		return fmt.Errorf("player health must be positive, got %d", c.PlayerHealth)
	}
	switch c.UI {
	case UIPlain, UISelect:
	default:
		return fmt.Errorf("unknown ui %q (want %s or %s)", c.UI, UIPlain, UISelect)
	}
	return nil
}

// LoadVocabulary reads a YAML word list file. Lists missing from the file keep
// their built-in defaults; item names are title cased. An empty path returns the defaults.
func LoadVocabulary(path string) (world.Vocabulary, error) {
	vocab := world.DefaultVocabulary()
	if path == "" {
		return vocab, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return world.Vocabulary{}, fmt.Errorf("read vocabulary: %w", err)
	}
	if err := yaml.Unmarshal(data, &vocab); err != nil {
		return world.Vocabulary{}, fmt.Errorf("parse vocabulary %s: %w", path, err)
	}

	normalizeVocabulary(&vocab)
	if err := vocab.Validate(); err != nil {
		return world.Vocabulary{}, fmt.Errorf("vocabulary %s: %w", path, err)
	}
	return vocab, nil
}

func normalizeVocabulary(v *world.Vocabulary) {
	for _, list := range [][]string{v.Lighting, v.Shapes, v.Walls, v.Floors, v.Features} {
		for i := range list {
			list[i] = strings.TrimSpace(renderer.Literal(list[i]))
		}
	}

	title := cases.Title(language.English)
	for i, item := range v.Items {
		v.Items[i] = title.String(strings.TrimSpace(renderer.Literal(item)))
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}
