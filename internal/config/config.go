// Package config loads glotta.toml. Flags override file values; file
// values override defaults.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	// Epsilon is the minimum score a language must exceed to win.
	Epsilon float64 `toml:"epsilon"`
	// AxiomRatio is the default supervised fraction for batch eval.
	AxiomRatio float64 `toml:"axiom_ratio"`
	// MinTokenRunes drops shorter tokens in whitespace-segmented
	// languages. Zero keeps everything.
	MinTokenRunes int `toml:"min_token_runes"`
	// UseKagome enables morpheme segmentation for Japanese.
	UseKagome bool `toml:"use_kagome"`
	// Seed fixes batch shuffling; zero means random.
	Seed int64 `toml:"seed"`

	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`
	// DBPath overrides the run-history database location.
	DBPath string `toml:"db_path"`
}

func Default() Config {
	return Config{
		Epsilon:    0.0001,
		AxiomRatio: 0.5,
		LogLevel:   "info",
	}
}

// Load reads the TOML file at path on top of defaults. A missing file
// is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("decode %s: %w", path, err)
	}
	for _, key := range meta.Undecoded() {
		return cfg, fmt.Errorf("unknown config key %q in %s", key, path)
	}
	return cfg, nil
}
