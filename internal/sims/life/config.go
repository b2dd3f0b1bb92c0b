package life

import (
	"strconv"

	"bitlife/internal/core"
)

// Topology selects the boundary policy applied during an advance.
type Topology int

const (
	// TopologyBounded leaves the outermost cell ring out of rule
	// evaluation; border cells stay permanently dead padding.
	TopologyBounded Topology = iota
	// TopologyToroidal wraps coordinates so opposite edges connect; every
	// cell participates in the rule.
	TopologyToroidal
)

func (t Topology) String() string {
	if t == TopologyToroidal {
		return "torus"
	}
	return "bounded"
}

// Config controls the Life simulation dimensions and boundary policy.
type Config struct {
	Width  int
	Height int
	Margin int

	Topology Topology

	// SeedCells is how many interior cells Reset draws. Duplicate draws
	// collapse, so the live population after a reseed is at most this.
	SeedCells int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:     256,
		Height:    256,
		Margin:    core.DefaultMargin,
		Topology:  TopologyBounded,
		SeedCells: 256 * 256 / 8,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["margin"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Margin = parsed
		}
	}
	if v, ok := cfg["topology"]; ok {
		switch v {
		case "torus", "toroidal":
			c.Topology = TopologyToroidal
		case "bounded":
			c.Topology = TopologyBounded
		}
	}
	if v, ok := cfg["seed_cells"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.SeedCells = parsed
		}
	}
	if cfg["w"] != "" || cfg["h"] != "" {
		if _, ok := cfg["seed_cells"]; !ok {
			c.SeedCells = c.Width * c.Height / 8
		}
	}
	return c
}
