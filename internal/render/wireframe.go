package render

import "cube-ca/pkg/lattice"

// Segment is a projected line in screen space.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// boxEdges pairs corner indices; corner bit 0 is x, bit 1 is y, bit 2 is z.
var boxEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7},
	{0, 2}, {1, 3}, {4, 6}, {5, 7},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// BoxOutline projects the twelve edges of the box enclosing a w×h×d lattice.
func BoxOutline(w, h, d int, cam Camera) []Segment {
	hx, hy, hz := float64(w)/2, float64(h)/2, float64(d)/2
	var pts [8][2]float64
	for i := range pts {
		p := lattice.Vec3{X: -hx, Y: -hy, Z: -hz}
		if i&1 != 0 {
			p.X = hx
		}
		if i&2 != 0 {
			p.Y = hy
		}
		if i&4 != 0 {
			p.Z = hz
		}
		x, y, _ := cam.Project(p)
		pts[i] = [2]float64{x, y}
	}
	out := make([]Segment, 0, len(boxEdges))
	for _, e := range boxEdges {
		a, b := pts[e[0]], pts[e[1]]
		out = append(out, Segment{X1: a[0], Y1: a[1], X2: b[0], Y2: b[1]})
	}
	return out
}

// AxisGizmo projects unit axes of the given pixel length from (ox, oy). The
// result is ordered x, y, z and follows lattice index direction, which is
// opposite to layout space.
func AxisGizmo(cam Camera, ox, oy, length float64) [3]Segment {
	cam.CenterX, cam.CenterY = ox, oy
	cam.Scale = length
	var out [3]Segment
	for i, v := range []lattice.Vec3{{X: -1}, {Y: -1}, {Z: -1}} {
		x, y, _ := cam.Project(v)
		out[i] = Segment{X1: ox, Y1: oy, X2: x, Y2: y}
	}
	return out
}
