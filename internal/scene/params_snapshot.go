package scene

import (
	"strconv"

	"topoviz/internal/core"
	"topoviz/internal/terrain"
)

// Parameters reports the current tunables grouped for display.
func (s *Scene) Parameters() core.ParameterSnapshot {
	cfg := s.Config()
	g := s.Grid()
	sm := s.builder.Smoothed()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Contours",
			Params: []core.Parameter{
				intParam("levels", "Contour levels", cfg.Levels),
				floatParam("line", "Line thickness", cfg.LineThickness),
			},
		},
		{
			Name: "Terrain",
			Params: []core.Parameter{
				intParam("octaves", "Detail (octaves)", cfg.Octaves),
				floatParam("speed", "Speed", cfg.Speed),
				floatParam("smoothing_ms", "Smoothing (ms)", cfg.SmoothingMillis),
				{Key: "noise", Label: "Noise", Type: core.ParamTypeString, Value: cfg.Noise},
			},
		},
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("cols", "Columns", g.Cols),
				intParam("rows", "Rows", g.Rows),
				floatParam("cell", "Cell size", g.CellW),
			},
		},
		{
			Name: "Signal",
			Params: []core.Parameter{
				floatParam("bass", "Bass", sm.Bass),
				floatParam("mid", "Mid", sm.Mid),
				floatParam("treble", "Treble", sm.Treble),
				floatParam("volume", "Volume", sm.Volume),
			},
		},
	}}
}

// ParameterControls lists the values the HUD may adjust.
func (s *Scene) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "levels", Label: "Levels", Type: core.ParamTypeInt, Step: 1, Min: terrain.MinLevels, Max: terrain.MaxLevels},
		{Key: "octaves", Label: "Detail", Type: core.ParamTypeInt, Step: 1, Min: terrain.MinOctaves, Max: terrain.MaxOctaves},
		{Key: "speed", Label: "Speed", Type: core.ParamTypeFloat, Step: 0.1, Min: terrain.MinSpeed, Max: terrain.MaxSpeed},
		{Key: "line", Label: "Line", Type: core.ParamTypeFloat, Step: 0.1, Min: terrain.MinLineThickness, Max: terrain.MaxLineThickness},
	}
}

// SetIntParameter updates an integer tunable.
func (s *Scene) SetIntParameter(key string, value int) bool {
	cfg := s.Config()
	switch key {
	case "levels":
		cfg.Levels = value
	case "octaves":
		cfg.Octaves = value
	default:
		return false
	}
	s.SetConfig(cfg)
	return true
}

// SetFloatParameter updates a floating point tunable.
func (s *Scene) SetFloatParameter(key string, value float64) bool {
	cfg := s.Config()
	switch key {
	case "speed":
		cfg.Speed = value
	case "line":
		cfg.LineThickness = value
	case "smoothing_ms":
		cfg.SmoothingMillis = value
	default:
		return false
	}
	s.SetConfig(cfg)
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
