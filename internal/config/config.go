package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/glide/internal/slider"
)

// Config holds the application settings read from glide's config file.
type Config struct {
	Deck         string
	ShowWarnings bool
	LogFile      string
	LogLevel     slog.Level
	PollInterval time.Duration
	Slider       slider.Options
}

const (
	defaultConfigPath   = "~/.config/glide/config.toml"
	defaultLogFile      = "~/.local/state/glide/glide.log"
	defaultPollInterval = 5 * time.Second
)

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		LogFile:      mustExpand(defaultLogFile),
		LogLevel:     slog.LevelInfo,
		PollInterval: defaultPollInterval,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Deck         string         `toml:"deck"`
		ShowWarnings bool           `toml:"show_warnings"`
		LogFile      string         `toml:"log_file"`
		LogLevel     string         `toml:"log_level"`
		PollSeconds  int            `toml:"poll_seconds"`
		Slider       slider.Options `toml:"slider"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.ShowWarnings = raw.ShowWarnings
	cfg.Slider = raw.Slider

	if deck := strings.TrimSpace(raw.Deck); deck != "" {
		cfg.Deck = ResolveDeck(deck)
	}

	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}

	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return Config{}, fmt.Errorf("parse config: log_level: %w", err)
		}
	}

	if raw.PollSeconds > 0 {
		cfg.PollInterval = time.Duration(raw.PollSeconds) * time.Second
	}

	return cfg, nil
}

// ResolveDeck expands a local deck path and leaves URLs untouched.
func ResolveDeck(source string) string {
	trimmed := strings.TrimSpace(source)
	if strings.Contains(trimmed, "://") {
		return trimmed
	}
	return mustExpand(trimmed)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
