package config

import (
	"testing"
	"time"
)

func TestParseEnv(t *testing.T) {
	type target struct {
		Name    string        `env:"CONFIG_TEST_NAME"`
		Timeout time.Duration `env:"CONFIG_TEST_TIMEOUT" envDefault:"30s"`
	}

	t.Run("reads values and defaults", func(t *testing.T) {
		t.Setenv("CONFIG_TEST_NAME", "streetview")
		var cfg target
		if err := ParseEnv(&cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Name != "streetview" {
			t.Errorf("expected name %q, got %q", "streetview", cfg.Name)
		}
		if cfg.Timeout != 30*time.Second {
			t.Errorf("expected default timeout 30s, got %v", cfg.Timeout)
		}
	})

	t.Run("rejects malformed values", func(t *testing.T) {
		t.Setenv("CONFIG_TEST_TIMEOUT", "not-a-duration")
		var cfg target
		if err := ParseEnv(&cfg); err == nil {
			t.Fatal("expected error for malformed duration")
		}
	})
}
