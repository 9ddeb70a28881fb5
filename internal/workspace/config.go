package workspace

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Default buffer categories seeded into every workspace.
const (
	CommonBufferCategory = "Common"
	GradBufferCategory   = "Grad"

	commonBufferSize = 2
	gradBufferSize   = 1
)

// Config carries construction parameters for a workspace.
//
// Buffers enumerates the buffer categories seeded at construction time and
// their pool capacities, replacing any process-wide capacity table: each
// workspace carries its own limits.
type Config struct {
	Name    string         `toml:"name"`
	Buffers map[string]int `toml:"buffers"`
}

// DefaultConfig returns the standard seeding: a general-purpose Common
// pool of 2 and a Grad pool of 1.
func DefaultConfig() Config {
	return Config{
		Buffers: map[string]int{
			CommonBufferCategory: commonBufferSize,
			GradBufferCategory:   gradBufferSize,
		},
	}
}

// LoadConfig reads a workspace configuration from a TOML file.
// A file without a [buffers] table falls back to the default categories.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load workspace config %q: %w", path, err)
	}
	if len(cfg.Buffers) == 0 {
		cfg.Buffers = DefaultConfig().Buffers
	}
	return cfg, nil
}
