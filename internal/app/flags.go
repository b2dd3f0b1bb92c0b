package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim            string
	Width          int
	Height         int
	Topology       string
	Scale          int
	TPS            int
	Seed           int64
	MaxGenerations int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:            "life",
		Width:          256,
		Height:         256,
		Topology:       "bounded",
		Scale:          3,
		TPS:            30,
		Seed:           42,
		MaxGenerations: 2000,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells (power of two)")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells (power of two)")
	fs.StringVar(&c.Topology, "topology", c.Topology, "boundary policy: bounded or torus")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "reseed after this many generations (0 disables)")
}

// SimConfig flattens the grid parameters into the factory map format.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"w":        strconv.Itoa(c.Width),
		"h":        strconv.Itoa(c.Height),
		"topology": c.Topology,
	}
}
