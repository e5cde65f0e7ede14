package app

import (
	"math"

	"cube-ca/internal/render"
)

// ViewMode selects how the lattice is shown.
type ViewMode int

const (
	// SliceView tiles every z-slice side by side.
	SliceView ViewMode = iota
	// VolumeView draws the lattice as a rotatable cloud of cells.
	VolumeView
)

func (m ViewMode) String() string {
	if m == VolumeView {
		return "volume"
	}
	return "slices"
}

const (
	rotateStep = math.Pi / 90
	maxPitch   = math.Pi / 2
)

// orbit is the volume view's camera orientation.
type orbit struct {
	yaw, pitch float64
}

func defaultOrbit() orbit {
	return orbit{yaw: math.Pi / 6, pitch: math.Pi / 8}
}

// rotate turns by whole steps. Yaw wraps; pitch stops at straight up or down.
func (o *orbit) rotate(dYaw, dPitch int) {
	o.yaw = math.Mod(o.yaw+float64(dYaw)*rotateStep, 2*math.Pi)
	o.pitch = math.Max(-maxPitch, math.Min(maxPitch, o.pitch+float64(dPitch)*rotateStep))
}

// camera fits a w×h×d lattice into a viewW×viewH view.
func (o orbit) camera(w, h, d int, viewW, viewH float64) render.Camera {
	return render.Camera{
		Yaw:     o.yaw,
		Pitch:   o.pitch,
		Scale:   render.FitScale(w, h, d, viewW, viewH),
		CenterX: viewW / 2,
		CenterY: viewH / 2,
	}
}
