package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Width     int
	Height    int
	Particles int
	SeedKind  string
	Scale     int
	Seed      int64
	SaveFile  string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:     400,
		Particles: 10_000,
		SeedKind:  "center",
		Scale:     2,
		Seed:      1337,
		SaveFile:  "dla-grid",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells (defaults to width)")
	fs.IntVar(&c.Particles, "particles", c.Particles, "number of particles to stick")
	fs.StringVar(&c.SeedKind, "seed-kind", c.SeedKind, "initial pattern: center, bottomedge, alledges, fourdots, randomfive, circle")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed")
	fs.StringVar(&c.SaveFile, "save-file", c.SaveFile, "base path for grid save/load")
}
