// Package life implements the bounded Game of Life grid.
//
// The grid is not toroidal: cells on an edge simply have fewer neighbors.
// Every coordinate lookup goes through [Grid.PositionIndex], which is the
// only place the row-major formula appears.
//
//   - [Grid.Update]: advances one generation using the B3/S23 rule
//   - [Grid.Toggle], [Grid.Set]: single-cell edits, no-op when off the grid
//   - [Grid.Clear], [Grid.Randomize]: whole-grid resets
//
// # Live cell count
//
// [Grid.LiveCells] reports the population of the generation produced by the
// most recent Update. Manual edits do not refresh it; use [Grid.Population]
// for an exact count at any time.
package life
