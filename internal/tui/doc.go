// Package tui provides the terminal front-end for the simulator.
//
// The package implements a full-screen UI using the Bubble Tea framework:
//
//   - [Model]: turns key, mouse and resize messages into controller events
//   - [Theme]: color schemes, cycled at runtime
//   - a population graph overlay drawn with asciigraph
//   - [Canvas]: a braille minimap of the whole grid
//
// # Key Bindings
//
//	w/a/s/d, h/j/k/l - Pan the camera
//	+ / -            - Pan speed
//	Space            - Pause/Resume
//	N                - Single step while paused
//	C / R            - Clear / Randomize
//	G                - Population graph
//	M                - Minimap
//	T                - Cycle color themes
//	?                - Show help overlay
//
// Mouse left paints live cells, mouse right paints dead ones.
package tui
