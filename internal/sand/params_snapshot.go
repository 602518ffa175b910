package sand

import (
	"strconv"

	"mad-sand/internal/core"
)

// Parameters reports the world's configuration and live brush state.
func (w *World) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Columns", w.cfg.Width),
				intParam("h", "Rows", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
				intParam("dunes", "Dune height", w.cfg.DuneHeight),
			},
		},
		{
			Name: "Brush",
			Params: []core.Parameter{
				{Key: "kind", Label: "Currently dropping", Type: core.ParamTypeString, Value: w.kind.Name()},
				intParam("radius", "Drop radius", w.radius),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				intParam("frame", "Frame", w.frame),
				intParam("particles", "Particles", w.Count()),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable settings.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "radius", Label: "Drop radius", Step: 1, Min: 0, Max: maxRadius, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an adjustable setting by key.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "radius":
		w.SetRadius(value)
		return true
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}
