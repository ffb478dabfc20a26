// Package config is for run-wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"
	"github.com/spf13/viper"
)

// Config is the root-level settings struct, populated from the command
// line flags the cmd package binds into Viper.
type Config struct {
	// starting number of cells
	Size int `mapstructure:"size"`

	// which backing holds the cells
	Backing string `mapstructure:"backing"`

	// operations to run
	Steps int `mapstructure:"steps"`

	// seed of the pseudorandom source behind every draw of a run
	Seed int64 `mapstructure:"seed"`

	// relative operation weights
	InsertWeight  int `mapstructure:"insert-weight"`
	CopyWeight    int `mapstructure:"copy-weight"`
	DisableWeight int `mapstructure:"disable-weight"`

	// largest element an insertion splices in
	MaxLen int `mapstructure:"max-len"`

	// how far a copy can land from its source, in cells
	MaxOffset int `mapstructure:"max-offset"`

	// print a trace line every this many steps, 0 for no trace
	Trace int `mapstructure:"trace"`

	// cross-check the backings every this many steps, 0 for only at
	// the end
	Every int `mapstructure:"every"`

	// leave the final render and active table out of the summary
	Quiet bool `mapstructure:"quiet"`
}

// New returns a Config populated by the Viper settings bound from the
// command line.
func New() Config {
	var c Config

	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings: %v", err)
	}

	return c
}
