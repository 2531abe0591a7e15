package viewport

// DefaultSpeed is the pan distance a new camera starts with.
const DefaultSpeed = 5

// Direction is a pan direction.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Camera is the visible window onto the grid. X and Y are the world cell the
// viewport is centered on.
type Camera struct {
	ViewportWidth  int
	ViewportHeight int
	X, Y           int
	Speed          int
}

// NewCamera centers a camera on (x, y) and sizes its viewport from the
// terminal. Each cell is drawn two columns wide, so cols is halved.
func NewCamera(x, y, cols, rows int) *Camera {
	c := &Camera{X: x, Y: y, Speed: DefaultSpeed}
	c.Resize(cols, rows)
	return c
}

// Pan moves the camera by Speed and clamps it to [0, mapWidth] x [0, mapHeight].
func (c *Camera) Pan(dir Direction, mapWidth, mapHeight int) {
	switch dir {
	case North:
		c.Y = clamp(saturatingSub(c.Y, c.Speed), 0, mapHeight)
	case South:
		c.Y = clamp(c.Y+c.Speed, 0, mapHeight)
	case East:
		c.X = clamp(c.X+c.Speed, 0, mapWidth)
	case West:
		c.X = clamp(saturatingSub(c.X, c.Speed), 0, mapWidth)
	}
}

// SetSpeed clamps v into [1, min(ViewportWidth, ViewportHeight)].
func (c *Camera) SetSpeed(v int) {
	c.Speed = clamp(v, 1, c.maxSpeed())
}

// Resize applies a new terminal size.
func (c *Camera) Resize(cols, rows int) {
	c.ViewportWidth = max(0, cols/2)
	c.ViewportHeight = max(0, rows)
	c.SetSpeed(c.Speed)
}

func (c *Camera) maxSpeed() int {
	return max(1, min(c.ViewportWidth, c.ViewportHeight))
}

// saturatingSub returns a-b, stopping at zero instead of going negative.
func saturatingSub(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return min(max(v, lo), hi)
}
