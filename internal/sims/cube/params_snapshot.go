package cube

import (
	"math"
	"strconv"

	"cube-ca/internal/core"
	"cube-ca/pkg/lattice"
)

func (w *World) Parameters() core.ParameterSnapshot {
	st := w.eng.Stats()
	groups := []core.ParameterGroup{
		{
			Name: "Lattice",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				intParam("d", "Depth", w.cfg.Depth),
				stringParam("boundary", "Boundary", w.cfg.Boundary.String()),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				int64Param("seed", "Seed", w.seed),
				floatParam("p", "Seed chance", w.cfg.Probability),
			},
			Summary: "applied on reset",
		},
		{
			Name: "Rule",
			Params: []core.Parameter{
				stringParam("rule", "Survive/Birth", w.eng.Rule().String()),
				intParam("max_life", "Max life", w.cfg.MaxLife),
				intParam("workers", "Workers", w.eng.Workers()),
			},
		},
		{
			Name: "Stats",
			Params: []core.Parameter{
				int64Param("generation", "Generation", int64(st.Generation)),
				intParam("alive", "Alive", st.Alive),
				intParam("visible", "Visible", st.Visible),
				intParam("births", "Births", st.Births),
				intParam("deaths", "Deaths", st.Deaths),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable values.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "p", Label: "Seed chance %", Type: core.ParamTypeFloat, Step: 0.5, Scale: 100, Min: 0, Max: 100, HasMin: true, HasMax: true},
		{Key: "max_life", Label: "Max life", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: lattice.MaxLifeLimit, HasMin: true, HasMax: true},
		{Key: "workers", Label: "Workers", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 64, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates "p" from a percentage. The new chance is used by
// the next Reset.
func (w *World) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "p":
		if math.IsNaN(value) {
			return false
		}
		if value < 0 {
			value = 0
		}
		if value > 100 {
			value = 100
		}
		w.cfg.Probability = value / 100
		return true
	}
	return false
}

// SetIntParameter updates "max_life" (applied on the next Reset) or
// "workers" (applied on the next Step).
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "max_life":
		w.cfg.MaxLife = min(max(value, 1), lattice.MaxLifeLimit)
		return true
	case "workers":
		w.cfg.Workers = max(value, 1)
		w.eng.SetWorkers(w.cfg.Workers)
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

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
