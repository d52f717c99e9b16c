package terrain

import (
	"math"
	"strconv"
	"strings"

	"topoviz/internal/core"
)

// Recognized configuration ranges.
const (
	MinLevels = 4
	MaxLevels = 24

	MinOctaves = 2
	MaxOctaves = 6

	MinSpeed = 0.1
	MaxSpeed = 3.0

	MinLineThickness = 0.3
	MaxLineThickness = 3.0

	MinSmoothingMillis = 150
	MaxSmoothingMillis = 300
)

// Config controls the elevation field and the contour density drawn from it.
type Config struct {
	Levels        int
	Octaves       int
	Speed         float64
	LineThickness float64

	ScaleX float64
	ScaleY float64

	// TimeRate is the noise-space distance travelled per second at speed 1.
	TimeRate     float64
	SpeedBassMod float64

	LiftGain       float64
	LiftFalloff    float64
	RippleFreq     float64
	RippleGain     float64
	UndulationFreq float64
	UndulationGain float64

	SmoothingMillis float64

	Noise string
	Seed  int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Levels:          12,
		Octaves:         4,
		Speed:           1.0,
		LineThickness:   1.0,
		ScaleX:          3.0,
		ScaleY:          3.0,
		TimeRate:        0.15,
		SpeedBassMod:    0.5,
		LiftGain:        0.6,
		LiftFalloff:     1.6,
		RippleFreq:      24,
		RippleGain:      0.12,
		UndulationFreq:  6,
		UndulationGain:  0.3,
		SmoothingMillis: 200,
		Noise:           "perlin",
		Seed:            1337,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Malformed values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	for k, v := range cfg {
		c.Set(k, v)
	}
	return c
}

// Set applies a single key=value override and reports whether it was
// recognized and parsed.
func (c *Config) Set(key, value string) bool {
	value = strings.TrimSpace(value)
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "levels":
		return setInt(&c.Levels, value)
	case "octaves", "detail":
		return setInt(&c.Octaves, value)
	case "speed":
		return setFloat(&c.Speed, value)
	case "line", "line_thickness":
		return setFloat(&c.LineThickness, value)
	case "scale_x":
		return setFloat(&c.ScaleX, value)
	case "scale_y":
		return setFloat(&c.ScaleY, value)
	case "time_rate":
		return setFloat(&c.TimeRate, value)
	case "speed_bass_mod":
		return setFloat(&c.SpeedBassMod, value)
	case "lift_gain":
		return setFloat(&c.LiftGain, value)
	case "lift_falloff":
		return setFloat(&c.LiftFalloff, value)
	case "ripple_freq":
		return setFloat(&c.RippleFreq, value)
	case "ripple_gain":
		return setFloat(&c.RippleGain, value)
	case "undulation_freq":
		return setFloat(&c.UndulationFreq, value)
	case "undulation_gain":
		return setFloat(&c.UndulationGain, value)
	case "smoothing_ms":
		return setFloat(&c.SmoothingMillis, value)
	case "noise":
		if value == "" {
			return false
		}
		c.Noise = strings.ToLower(value)
		return true
	case "seed":
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return false
		}
		c.Seed = parsed
		return true
	}
	return false
}

func setInt(dst *int, value string) bool {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return false
	}
	*dst = parsed
	return true
}

func setFloat(dst *float64, value string) bool {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return false
	}
	*dst = parsed
	return true
}

// Normalize clamps every recognized option to its valid range.
func (c Config) Normalize() Config {
	out := c
	out.Levels = clampInt(c.Levels, MinLevels, MaxLevels)
	out.Octaves = clampInt(c.Octaves, MinOctaves, MaxOctaves)
	out.Speed = clampFloat(c.Speed, MinSpeed, MaxSpeed)
	out.LineThickness = clampFloat(c.LineThickness, MinLineThickness, MaxLineThickness)
	out.SmoothingMillis = clampFloat(c.SmoothingMillis, MinSmoothingMillis, MaxSmoothingMillis)
	if !(out.ScaleX > 0) {
		out.ScaleX = 1
	}
	if !(out.ScaleY > 0) {
		out.ScaleY = 1
	}
	if !(out.TimeRate >= 0) {
		out.TimeRate = 0
	}
	if !(out.SpeedBassMod >= 0) {
		out.SpeedBassMod = 0
	}
	if out.Noise == "" {
		out.Noise = "perlin"
	}

	if out.Levels != c.Levels || out.Octaves != c.Octaves || out.Speed != c.Speed ||
		out.LineThickness != c.LineThickness || out.SmoothingMillis != c.SmoothingMillis {
		core.Logger().Debug("terrain: config clamped",
			"levels", out.Levels, "octaves", out.Octaves, "speed", out.Speed,
			"line", out.LineThickness, "smoothing_ms", out.SmoothingMillis)
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
