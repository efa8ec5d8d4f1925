package box_test

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tailored-agentic-units/statebox/box"
)

func TestDefaultConfig(t *testing.T) {
	cfg := box.DefaultConfig()

	if cfg.Name != "Box One" {
		t.Errorf("got Name %q, want %q", cfg.Name, "Box One")
	}
	if cfg.DefaultIntent != "curious" {
		t.Errorf("got DefaultIntent %q, want curious", cfg.DefaultIntent)
	}
	if cfg.Meditation() != time.Second {
		t.Errorf("got Meditation %v, want 1s", cfg.Meditation())
	}
	if cfg.Seed != 0 {
		t.Errorf("got Seed %d, want 0", cfg.Seed)
	}
	if cfg.Observer != "slog" {
		t.Errorf("got Observer %q, want slog", cfg.Observer)
	}
}

func TestConfig_Merge(t *testing.T) {
	cfg := box.DefaultConfig()

	cfg.Merge(&box.Config{Name: "Wisdom Box", MeditationSeconds: 0.5, Seed: 9})

	if cfg.Name != "Wisdom Box" {
		t.Errorf("got Name %q, want %q", cfg.Name, "Wisdom Box")
	}
	if cfg.MeditationSeconds != 0.5 {
		t.Errorf("got MeditationSeconds %v, want 0.5", cfg.MeditationSeconds)
	}
	if cfg.Seed != 9 {
		t.Errorf("got Seed %d, want 9", cfg.Seed)
	}
	if cfg.DefaultIntent != "curious" {
		t.Errorf("got DefaultIntent %q, want curious (preserved)", cfg.DefaultIntent)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		wantErr bool
	}{
		{name: "default", seconds: 1, wantErr: false},
		{name: "zero", seconds: 0, wantErr: false},
		{name: "one day", seconds: 86400, wantErr: false},
		{name: "negative", seconds: -1, wantErr: true},
		{name: "nan", seconds: math.NaN(), wantErr: true},
		{name: "infinite", seconds: math.Inf(1), wantErr: true},
		{name: "overflows duration", seconds: 1e10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := box.DefaultConfig()
			cfg.MeditationSeconds = tt.seconds

			err := cfg.Validate()
			if tt.wantErr {
				if !errors.Is(err, box.ErrInvalidConfig) {
					t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() = %v, want nil", err)
			}
			if d := cfg.Meditation(); d < 0 {
				t.Errorf("Meditation() = %v, want non-negative", d)
			}
		})
	}
}

func TestConfig_MeditationClampsAtMax(t *testing.T) {
	cfg := box.Config{MeditationSeconds: 1e10}
	if d := cfg.Meditation(); d != time.Duration(math.MaxInt64) {
		t.Errorf("Meditation() = %v, want max duration", d)
	}
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name:    "json",
			file:    "box.json",
			content: `{"name": "Lifecycle Box", "default_intent": "peaceful", "meditation_seconds": 0.01, "seed": 5}`,
		},
		{
			name:    "yaml",
			file:    "box.yaml",
			content: "name: Lifecycle Box\ndefault_intent: peaceful\nmeditation_seconds: 0.01\nseed: 5\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}

			cfg, err := box.LoadConfig(path)
			if err != nil {
				t.Fatalf("LoadConfig failed: %v", err)
			}

			if cfg.Name != "Lifecycle Box" {
				t.Errorf("got Name %q, want %q", cfg.Name, "Lifecycle Box")
			}
			if cfg.DefaultIntent != "peaceful" {
				t.Errorf("got DefaultIntent %q, want peaceful", cfg.DefaultIntent)
			}
			if cfg.Meditation() != 10*time.Millisecond {
				t.Errorf("got Meditation %v, want 10ms", cfg.Meditation())
			}
			if cfg.Seed != 5 {
				t.Errorf("got Seed %d, want 5", cfg.Seed)
			}
			if cfg.Observer != "slog" {
				t.Errorf("got Observer %q, want slog (default)", cfg.Observer)
			}
		})
	}
}

func TestLoadConfig_ExplicitZeroOverridesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "box.yaml")
	if err := os.WriteFile(path, []byte("meditation_seconds: 0\nseed: 0\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := box.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Meditation() != 0 {
		t.Errorf("got Meditation %v, want 0", cfg.Meditation())
	}
	if cfg.Name != box.DefaultName {
		t.Errorf("got Name %q, want default %q", cfg.Name, box.DefaultName)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	if _, err := box.LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := box.LoadConfig(path); err == nil {
		t.Error("expected error for malformed file")
	}
}

func TestNewFromConfig(t *testing.T) {
	cfg := box.DefaultConfig()
	cfg.Merge(&box.Config{Name: "Config Box", DefaultIntent: "anxious", Seed: 11, Observer: "noop"})

	b, err := box.NewFromConfig(&cfg, box.WithClock(newManualClock()))
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}

	if b.Name() != "Config Box" {
		t.Errorf("got Name %q, want %q", b.Name(), "Config Box")
	}
	if obs := b.ObserveDefault(); obs.PhysicalState != "chaotic" {
		t.Errorf("got PhysicalState %q, want chaotic", obs.PhysicalState)
	}

	other, err := box.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}
	for i := range 10 {
		b.Observe("neutral")
		other.Observe("neutral")
		o1, o2 := b.Status(), other.Status()
		if o1.PhysicalState != o2.PhysicalState || o1.MentalState != o2.MentalState {
			t.Fatalf("draw %d diverged for equal seeds: %+v vs %+v", i, o1, o2)
		}
	}
}

func TestNewFromConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  box.Config
	}{
		{name: "negative meditation", cfg: box.Config{MeditationSeconds: -0.5}},
		{name: "unknown observer", cfg: box.Config{Observer: "carrier-pigeon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := box.NewFromConfig(&tt.cfg)
			if !errors.Is(err, box.ErrInvalidConfig) {
				t.Errorf("got %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestNewFromConfig_EmptyNameUsesDefault(t *testing.T) {
	b, err := box.NewFromConfig(&box.Config{})
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}
	if b.Name() != box.DefaultName {
		t.Errorf("got Name %q, want %q", b.Name(), box.DefaultName)
	}
}
