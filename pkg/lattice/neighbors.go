package lattice

// CountAliveNeighbors sums the previous-generation state of the 26 Moore
// neighbours of (x, y, z). Every axis wraps independently. Only snapshot
// values are read, so the result does not depend on which cells have already
// been advanced in the current step.
func CountAliveNeighbors(l *Lattice, x, y, z int) int {
	var xs, ys, zs [3]int
	for i := 0; i < 3; i++ {
		xs[i] = l.WrappedIndex(AxisX, i-1, x)
		ys[i] = l.WrappedIndex(AxisY, i-1, y)
		zs[i] = l.WrappedIndex(AxisZ, i-1, z)
	}

	sum := 0
	for k, nz := range zs {
		for j, ny := range ys {
			row := (nz*l.h + ny) * l.w
			for i, nx := range xs {
				if i == 1 && j == 1 && k == 1 {
					continue
				}
				sum += int(l.cells[row+nx].prev)
			}
		}
	}
	return sum
}
