package box

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tailored-agentic-units/statebox/observability"
)

// Config holds box initialization parameters.
type Config struct {
	Name              string  `json:"name,omitempty" yaml:"name,omitempty"`
	DefaultIntent     string  `json:"default_intent,omitempty" yaml:"default_intent,omitempty"`
	MeditationSeconds float64 `json:"meditation_seconds,omitempty" yaml:"meditation_seconds,omitempty"`
	Seed              uint64  `json:"seed,omitempty" yaml:"seed,omitempty"`         // 0 seeds from entropy.
	Observer          string  `json:"observer,omitempty" yaml:"observer,omitempty"` // Registry name, see observability.GetObserver.
}

// DefaultConfig returns the configuration of a plain "Box One".
func DefaultConfig() Config {
	return Config{
		Name:              DefaultName,
		DefaultIntent:     DefaultIntent,
		MeditationSeconds: DefaultMeditation.Seconds(),
		Observer:          "slog",
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Name != "" {
		c.Name = source.Name
	}
	if source.DefaultIntent != "" {
		c.DefaultIntent = source.DefaultIntent
	}
	if source.MeditationSeconds != 0 {
		c.MeditationSeconds = source.MeditationSeconds
	}
	if source.Seed != 0 {
		c.Seed = source.Seed
	}
	if source.Observer != "" {
		c.Observer = source.Observer
	}
}

// maxMeditationSeconds is the longest wait a time.Duration can hold.
var maxMeditationSeconds = float64(math.MaxInt64) / float64(time.Second)

// Validate rejects settings no box can run with.
func (c *Config) Validate() error {
	if c.MeditationSeconds < 0 || math.IsNaN(c.MeditationSeconds) || c.MeditationSeconds >= maxMeditationSeconds {
		return fmt.Errorf("%w: meditation_seconds must be between 0 and %.0f, got %v", ErrInvalidConfig, maxMeditationSeconds, c.MeditationSeconds)
	}
	return nil
}

// Meditation returns MeditationSeconds as a duration.
func (c *Config) Meditation() time.Duration {
	ns := c.MeditationSeconds * float64(time.Second)
	if ns >= float64(math.MaxInt64) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(ns)
}

// LoadConfig reads a YAML (.yaml, .yml) or JSON config file over
// DefaultConfig and returns the result. Keys absent from the file keep their
// defaults; keys present win even when zero, so meditation_seconds: 0 and
// seed: 0 are honoured.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// NewFromConfig validates cfg and creates a box from it. The configured
// observer is resolved from the observability registry; options given here
// are applied afterwards and win over the config.
func NewFromConfig(cfg *Config, opts ...Option) (*Box, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base := []Option{
		WithDefaultIntent(cfg.DefaultIntent),
		WithMeditation(cfg.Meditation()),
	}

	if cfg.Seed != 0 {
		base = append(base, WithRand(NewRand(cfg.Seed)))
	}

	if cfg.Observer != "" {
		obs, err := observability.GetObserver(cfg.Observer)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		base = append(base, WithObserver(obs))
	}

	name := cfg.Name
	if name == "" {
		name = DefaultName
	}

	return New(name, append(base, opts...)...), nil
}
