package dla

import (
	"strconv"
	"strings"

	"dla-ca/internal/core"
)

// Config controls the simulation dimensions and stopping point.
type Config struct {
	Width  int
	Height int

	// Particles is the stuck-particle count at which the simulation stops.
	Particles int

	Seed     int64
	SeedKind core.SeedKind
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:     400,
		Height:    400,
		Particles: 10_000,
		Seed:      1337,
		SeedKind:  core.SeedCenter,
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs).
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
	if v, ok := cfg["particles"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Particles = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["seed_kind"]; ok {
		if kind, ok := ParseSeedKind(v); ok {
			c.SeedKind = kind
		}
	}
	return c
}

// ParseSeedKind maps a case-insensitive seed-kind name to its tag. Name
// parsing lives here, at the configuration boundary; the engine itself only
// ever sees the tag.
func ParseSeedKind(name string) (core.SeedKind, bool) {
	switch strings.ToLower(name) {
	case "center":
		return core.SeedCenter, true
	case "bottomedge":
		return core.SeedBottomEdge, true
	case "alledges":
		return core.SeedAllEdges, true
	case "fourdots":
		return core.SeedFourDots, true
	case "randomfive", "randfive":
		return core.SeedRandomFive, true
	case "circle":
		return core.SeedCircle, true
	default:
		return core.SeedCenter, false
	}
}

func init() {
	core.Register("dla", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
