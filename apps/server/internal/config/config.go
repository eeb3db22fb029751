// Package config loads server configuration from an optional YAML file with
// environment overrides. The API key is env-only so it never lands in a
// checked-in config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
)

const (
	defaultListenAddr = ":8080"
	defaultSessionTTL = 24 * time.Hour
)

var ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not set")

// Gemini names the models each lab panel talks to. Image generation and
// video generation go through the REST predict surface; the rest use the
// generateContent surface.
type Gemini struct {
	APIKey         string `yaml:"-"`
	ChatModel      string `yaml:"chat_model"`
	FastModel      string `yaml:"fast_model"`
	ImageModel     string `yaml:"image_model"`
	ImageEditModel string `yaml:"image_edit_model"`
	VideoModel     string `yaml:"video_model"`
	LiveModel      string `yaml:"live_model"`
}

// Content points at optional JSON overrides for the built-in game data.
// Empty paths mean "use the compiled-in defaults".
type Content struct {
	QuestsFile   string `yaml:"quests_file"`
	PersonasFile string `yaml:"personas_file"`
}

type Config struct {
	ListenAddr string        `yaml:"listen_addr"`
	StaticDir  string        `yaml:"static_dir"`
	SessionTTL time.Duration `yaml:"session_ttl"`
	Content    Content       `yaml:"content"`
	Gemini     Gemini        `yaml:"gemini"`
}

func Default() Config {
	return Config{
		ListenAddr: defaultListenAddr,
		SessionTTL: defaultSessionTTL,
		Gemini: Gemini{
			ChatModel:      "gemini-2.5-flash",
			FastModel:      "gemini-2.5-flash-lite",
			ImageModel:     "imagen-4.0-generate-001",
			ImageEditModel: "gemini-2.5-flash-image",
			VideoModel:     "veo-3.1-generate-preview",
			LiveModel:      "gemini-2.5-flash-native-audio-preview-09-2025",
		},
	}
}

// Load reads path over the defaults. An empty path skips the file entirely.
// Environment variables win over file values.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	if addr := os.Getenv("LISTEN_ADDR"); addr != "" {
		cfg.ListenAddr = addr
	}
}

func (c Config) Validate() error {
	if c.ListenAddr == "" {
		return errors.New("listen_addr must not be empty")
	}
	if c.SessionTTL <= 0 {
		return errors.New("session_ttl must be positive")
	}
	if c.Gemini.ChatModel == "" || c.Gemini.ImageModel == "" || c.Gemini.VideoModel == "" {
		return errors.New("gemini model names must not be empty")
	}
	return nil
}

// LabEnabled reports whether the AI lab panels can be served. The game loop
// never depends on this.
func (c Config) LabEnabled() bool {
	return c.Gemini.APIKey != ""
}
