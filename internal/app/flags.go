package app

import (
	"flag"
	"fmt"
	"strings"

	"topoviz/internal/terrain"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int
	Height   int
	HUDWidth int
	TPS      int
	Seed     int64
	Synth    bool
	Verbose  bool

	// Terrain holds the values set through the dedicated flags. Overrides
	// given with -set are applied on top by TerrainConfig.
	Terrain   terrain.Config
	Overrides KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:    960,
		Height:   600,
		HUDWidth: 240,
		TPS:      60,
		Seed:     1337,
		Synth:    true,
		Terrain:  terrain.DefaultConfig(),
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "contour view width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "contour view height in pixels")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width (0 hides it)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the synthetic control source")
	fs.BoolVar(&c.Synth, "synth", c.Synth, "drive the scene from the synthetic control source")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "enable debug logging")

	fs.IntVar(&c.Terrain.Levels, "levels", c.Terrain.Levels, "contour levels (N levels draw N-1 lines)")
	fs.IntVar(&c.Terrain.Octaves, "octaves", c.Terrain.Octaves, "noise octaves")
	fs.Float64Var(&c.Terrain.Speed, "speed", c.Terrain.Speed, "animation speed multiplier")
	fs.Float64Var(&c.Terrain.LineThickness, "line", c.Terrain.LineThickness, "contour line thickness")
	fs.StringVar(&c.Terrain.Noise, "noise", c.Terrain.Noise, "noise backend (perlin, simplex)")
	fs.Var(&c.Overrides, "set", "terrain override in key=value form (repeatable)")
}

// TerrainConfig returns the terrain configuration with every -set override
// applied. Malformed pairs and unknown keys are reported as errors.
func (c *Config) TerrainConfig() (terrain.Config, error) {
	cfg := c.Terrain
	if err := c.Overrides.Apply(&cfg); err != nil {
		return terrain.Config{}, err
	}
	return cfg.Normalize(), nil
}

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

// Set implements flag.Value.
func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Apply writes each pair into cfg.
func (l KVList) Apply(cfg *terrain.Config) error {
	for _, kv := range l {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("override %q: expected key=value", kv)
		}
		key = strings.TrimSpace(key)
		if !cfg.Set(key, strings.TrimSpace(value)) {
			return fmt.Errorf("override %q: unknown key or bad value", kv)
		}
	}
	return nil
}
