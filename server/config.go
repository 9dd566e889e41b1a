package server

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the service configuration, loaded from YAML with env overrides
// applied by the entry point.
type Config struct {
	// Addr is the listen address.
	Addr string `yaml:"addr"`
	// BaseURL is the dictionary host pages are fetched from.
	BaseURL string `yaml:"base_url"`
	// SnapshotPath is the YAML store snapshot, loaded at boot and written
	// on shutdown. Empty disables snapshotting.
	SnapshotPath string `yaml:"snapshot_path"`
	// DBPath is the SQLite store location. Empty disables persistence.
	DBPath string `yaml:"db_path"`
	// FetchTimeout bounds one page fetch during a find-or-fetch query.
	FetchTimeout time.Duration `yaml:"fetch_timeout"`
	// LexiconDir holds per-language frequency lists named <code>.txt
	// ("word count" per line, most frequent first). Empty leaves the
	// language-membership filter undetermined.
	LexiconDir string `yaml:"lexicon_dir"`
	// LexiconLimit caps how many words load per frequency list.
	LexiconLimit int `yaml:"lexicon_limit"`
}

// LoadConfig reads the YAML config at path. A missing file yields the
// defaults.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyDefaults()
			return cfg, nil
		}
		return cfg, fmt.Errorf("server: read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("server: parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.BaseURL == "" {
		c.BaseURL = "https://en.wiktionary.org"
	}
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = 30 * time.Second
	}
	if c.LexiconLimit <= 0 {
		c.LexiconLimit = 50000
	}
}
