package ui

import (
	"math"
	"strconv"

	"cube-ca/internal/core"
)

// controlSet tracks the HUD-adjustable parameters of a sim and pushes
// adjustments back through its setters.
type controlSet struct {
	states      []controlState
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
	selected    int
}

type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool
}

func newControlSet(sim core.Sim) *controlSet {
	cs := &controlSet{}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			cs.states = append(cs.states, controlState{control: ctrl, value: "--"})
		}
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		cs.intSetter = setter
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		cs.floatSetter = setter
	}
	return cs
}

// refresh reads current values from a snapshot.
func (cs *controlSet) refresh(snap core.ParameterSnapshot) {
	for i := range cs.states {
		state := &cs.states[i]
		state.hasValue = false
		state.value = "--"
		param, ok := snap.Lookup(state.control.Key)
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = strconv.Itoa(parsed)
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			state.floatValue = state.control.Scaled(parsed)
			state.value = formatFloat(state.control, state.floatValue)
			state.hasValue = true
		}
	}
}

// cycle moves the selection by delta, wrapping around.
func (cs *controlSet) cycle(delta int) {
	n := len(cs.states)
	if n == 0 {
		return
	}
	cs.selected = ((cs.selected+delta)%n + n) % n
}

// target returns the value one step in direction and whether it differs from
// the current value.
func (cs *controlSet) target(state *controlState, direction int) (float64, bool) {
	if !state.hasValue || direction == 0 {
		return 0, false
	}
	ctrl := state.control
	step := ctrl.Step
	switch ctrl.Type {
	case core.ParamTypeInt:
		if cs.intSetter == nil {
			return 0, false
		}
		step = math.Max(1, math.Round(step))
	case core.ParamTypeFloat:
		if cs.floatSetter == nil {
			return 0, false
		}
		if step <= 0 {
			step = 0.05
		}
	default:
		return 0, false
	}
	next := ctrl.Clamp(state.floatValue + float64(direction)*step)
	return next, math.Abs(next-state.floatValue) > 1e-9
}

func (cs *controlSet) canAdjust(i, direction int) bool {
	if i < 0 || i >= len(cs.states) {
		return false
	}
	_, ok := cs.target(&cs.states[i], direction)
	return ok
}

// adjust steps control i and reports whether the sim accepted the change.
func (cs *controlSet) adjust(i, direction int) bool {
	if i < 0 || i >= len(cs.states) {
		return false
	}
	state := &cs.states[i]
	next, ok := cs.target(state, direction)
	if !ok {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		v := int(math.Round(next))
		if !cs.intSetter.SetIntParameter(state.control.Key, v) {
			return false
		}
		state.intValue = v
		state.floatValue = float64(v)
		state.value = strconv.Itoa(v)
	case core.ParamTypeFloat:
		if !cs.floatSetter.SetFloatParameter(state.control.Key, next) {
			return false
		}
		state.floatValue = next
		state.value = formatFloat(state.control, next)
	}
	return true
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}
