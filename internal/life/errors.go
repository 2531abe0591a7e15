package life

import "errors"

// ErrEmptyGrid indicates a grid with zero or negative area.
var ErrEmptyGrid = errors.New("life: grid must have positive width and height")
