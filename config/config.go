package config

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tolelom/pohlog/poh"
)

// Config holds all historian run configuration.
type Config struct {
	StartHash          string `json:"start_hash"`           // hex-encoded 32-byte hash to start the chain from; empty → zero hash
	TickIntervalHashes uint64 `json:"tick_interval_hashes"`  // 0 → no automatic ticks, idle-hash continuously
	KeystorePath       string `json:"keystore_path"`
	ArchivePath        string `json:"archive_path"`
}

// DefaultConfig returns a single-process development configuration.
func DefaultConfig() *Config {
	return &Config{
		StartHash:          "",
		TickIntervalHashes: 1_000_000,
		KeystorePath:       "./keystore.json",
		ArchivePath:        "./data/archive",
	}
}

// Load reads a JSON config file from path and validates required fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// Validate checks that all required fields are present and well-formed.
func (c *Config) Validate() error {
	if c.StartHash != "" {
		b, err := hex.DecodeString(c.StartHash)
		if err != nil || len(b) != 32 {
			return fmt.Errorf("start_hash: must be 64-char hex (32 bytes), got %q", c.StartHash)
		}
	}
	if c.ArchivePath == "" {
		return fmt.Errorf("archive_path must not be empty")
	}
	return nil
}

// Hash decodes StartHash into a poh.Hash, defaulting to poh.ZeroHash when
// StartHash is empty.
func (c *Config) Hash() (poh.Hash, error) {
	if c.StartHash == "" {
		return poh.ZeroHash, nil
	}
	b, err := hex.DecodeString(c.StartHash)
	if err != nil || len(b) != 32 {
		return poh.Hash{}, fmt.Errorf("start_hash: must be 64-char hex (32 bytes), got %q", c.StartHash)
	}
	var h poh.Hash
	copy(h[:], b)
	return h, nil
}

// TickInterval returns a *uint64 suitable for poh.NewHistorian: nil means
// "no automatic ticks", matching the Historian's idle-hash-only mode.
func (c *Config) TickInterval() *uint64 {
	if c.TickIntervalHashes == 0 {
		return nil
	}
	v := c.TickIntervalHashes
	return &v
}

// Save writes the config to path as formatted JSON.
func Save(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
