// Package lattice implements a three-dimensional binary cellular automaton
// on a width×height×depth lattice.
//
// Each generation is synchronous. Engine.Step first copies every cell's
// state into its previous-state snapshot, then evaluates the rule for every
// updatable cell from snapshots only, and finally commits the new states and
// decays the life counter of dead cells. A cell stays Visible while its life
// is positive, so dead cells fade out over MaxLife generations.
//
// Neighbourhoods are the 26-cell Moore cube. Axes wrap toroidally; the
// FrozenBorder policy additionally keeps the outermost shell static.
package lattice
