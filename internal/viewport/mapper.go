package viewport

// Origin is the world position of screen cell (0, 0). It may be negative
// when the camera sits near the top or left edge of the map. Rendering,
// pointer mapping and the minimap all go through here.
func (c *Camera) Origin() (x, y int) {
	return c.X - c.ViewportWidth/2, c.Y - c.ViewportHeight/2
}

// ScreenToWorld maps a screen cell to a world cell. Screen columns are cell
// columns, i.e. terminal columns already halved. ok is false when the result
// would be negative.
func (c *Camera) ScreenToWorld(col, row int) (x, y int, ok bool) {
	if col < 0 || row < 0 {
		return 0, 0, false
	}
	ox, oy := c.Origin()
	x, y = col+ox, row+oy
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	return x, y, true
}

// WorldToScreen is the inverse of ScreenToWorld. ok is false when the world
// cell falls outside the viewport.
func (c *Camera) WorldToScreen(x, y int) (col, row int, ok bool) {
	ox, oy := c.Origin()
	col, row = x-ox, y-oy
	if col < 0 || row < 0 || col >= c.ViewportWidth || row >= c.ViewportHeight {
		return 0, 0, false
	}
	return col, row, true
}
