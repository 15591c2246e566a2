package worldgen

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml"
)

// Config contains options for constructing a Generator. The zero value is
// usable; defaults are applied by withDefaults.
type Config struct {
	// Log is the Logger to use for logging information. If nil, Log is set
	// to slog.Default().
	Log *slog.Logger
	// Seed is the world seed every noise source and the tree placer derive
	// from. Two generators with equal Seed produce identical chunks.
	Seed int64
	// SeaLevel is the water surface height. Columns below it flood; the
	// climate depth axis is measured relative to it. Defaults to 62.
	SeaLevel int
	// RelaxPasses is the number of height smoothing iterations run over a
	// chunk. Defaults to 3, which is enough for the step limit to settle.
	RelaxPasses int
	// Metrics receives generation counters. If nil, counting is disabled.
	Metrics *Metrics
}

func (c Config) withDefaults() Config {
	if c.Log == nil {
		c.Log = slog.Default()
	}
	if c.SeaLevel <= 0 {
		c.SeaLevel = 62
	}
	if c.RelaxPasses <= 0 {
		c.RelaxPasses = 3
	}
	return c
}

// fileConfig is the TOML shape of a generator configuration file.
type fileConfig struct {
	World struct {
		Seed        int64 `toml:"seed"`
		SeaLevel    int   `toml:"sea_level"`
		RelaxPasses int   `toml:"relax_passes"`
	} `toml:"world"`
}

// ReadConfig reads a Config from the TOML file at path. Fields absent from
// the file keep their zero value and pick up defaults on use.
func ReadConfig(path string) (Config, error) {
	var c Config
	contents, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	var data fileConfig
	if err := toml.Unmarshal(contents, &data); err != nil {
		return c, fmt.Errorf("read config: decode toml: %w", err)
	}
	c.Seed = data.World.Seed
	c.SeaLevel = data.World.SeaLevel
	c.RelaxPasses = data.World.RelaxPasses
	return c, nil
}

// WriteConfig writes the Config to a TOML file at path, creating it if
// needed.
func WriteConfig(c Config, path string) error {
	var data fileConfig
	data.World.Seed = c.Seed
	data.World.SeaLevel = c.SeaLevel
	data.World.RelaxPasses = c.RelaxPasses

	encoded, err := toml.Marshal(data)
	if err != nil {
		return fmt.Errorf("write config: encode toml: %w", err)
	}
	if err := os.WriteFile(path, encoded, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
