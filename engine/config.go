package engine

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/rats/constants"
)

// Config is read once at session creation and reused by Restart
type Config struct {
	Rows    int // maze height in cells
	Cols    int // maze width in cells
	Density int // percentage of spanning-tree walls kept

	Factories  int
	RatDamage  int
	BratDamage int

	FPS int

	// Seed feeds the session random source; zero seeds from the wall clock
	Seed int64
}

// DefaultConfig returns the stock game settings
func DefaultConfig() Config {
	return Config{
		Rows:       15,
		Cols:       15,
		Density:    85,
		Factories:  5,
		RatDamage:  constants.DefaultRatDamage,
		BratDamage: constants.DefaultBratDamage,
		FPS:        constants.DefaultFPS,
	}
}

// Validate rejects settings the simulation cannot run with
func (c Config) Validate() error {
	if c.Rows < 2 || c.Cols < 2 {
		return errors.Errorf("maze must be at least 2x2 cells, got %dx%d", c.Rows, c.Cols)
	}
	if c.Density < 0 || c.Density > 100 {
		return errors.Errorf("density must be within 0..100, got %d", c.Density)
	}
	if c.Factories < 0 {
		return errors.Errorf("factory count cannot be negative, got %d", c.Factories)
	}
	if c.RatDamage < 0 || c.BratDamage < 0 {
		return errors.Errorf("damage cannot be negative, got rat=%d brat=%d", c.RatDamage, c.BratDamage)
	}
	if c.FPS <= 0 {
		return errors.Errorf("fps must be positive, got %d", c.FPS)
	}
	return nil
}
