package config_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/tolelom/pohlog/config"
	"github.com/tolelom/pohlog/poh"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := config.DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.StartHash = strings.Repeat("ab", 32)
	cfg.TickIntervalHashes = 42

	path := filepath.Join(t.TempDir(), "config.json")
	if err := config.Save(cfg, path); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.StartHash != cfg.StartHash || got.TickIntervalHashes != cfg.TickIntervalHashes {
		t.Errorf("round trip mismatch: got %+v want %+v", got, cfg)
	}
}

func TestValidateRejectsBadStartHash(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.StartHash = "not-hex"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for malformed start_hash")
	}
}

func TestHashDefaultsToZero(t *testing.T) {
	cfg := config.DefaultConfig()
	h, err := cfg.Hash()
	if err != nil {
		t.Fatal(err)
	}
	if h != poh.ZeroHash {
		t.Error("empty start_hash must decode to the zero hash")
	}
}

func TestTickIntervalNilWhenZero(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.TickIntervalHashes = 0
	if cfg.TickInterval() != nil {
		t.Error("zero tick_interval_hashes must yield a nil interval")
	}
}
