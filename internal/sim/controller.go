package sim

import (
	"fmt"
	"iter"

	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/viewport"
)

// Controller owns the grid and camera and applies input events to them.
// It is not safe for concurrent use; events must be fed from one goroutine.
type Controller struct {
	grid       *life.Grid
	camera     *viewport.Camera
	running    bool
	paused     bool
	generation int
}

// New builds a controller with the camera centered on the grid.
func New(opts Options) (*Controller, error) {
	grid, err := life.New(opts.Width, opts.Height, opts.Seed)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	cam := viewport.NewCamera(opts.Width/2, opts.Height/2, opts.Cols, opts.Rows)
	if opts.Speed > 0 {
		cam.SetSpeed(opts.Speed)
	}
	return &Controller{grid: grid, camera: cam, running: true}, nil
}

func (c *Controller) Running() bool            { return c.running }
func (c *Controller) Paused() bool             { return c.paused }
func (c *Controller) Generation() int          { return c.generation }
func (c *Controller) Grid() *life.Grid         { return c.grid }
func (c *Controller) Camera() *viewport.Camera { return c.camera }

// Handle applies a single event.
func (c *Controller) Handle(ev Event) {
	switch ev := ev.(type) {
	case KeyEvent:
		c.apply(ev.Action)
	case PointerEvent:
		c.paint(ev)
	case ResizeEvent:
		c.camera.Resize(ev.Cols, ev.Rows)
	case TickEvent:
		if !c.paused {
			c.advance()
		}
	}
}

func (c *Controller) apply(a Action) {
	w, h := c.grid.Width(), c.grid.Height()
	switch a {
	case ActionQuit:
		c.running = false
	case ActionPanNorth:
		c.camera.Pan(viewport.North, w, h)
	case ActionPanSouth:
		c.camera.Pan(viewport.South, w, h)
	case ActionPanEast:
		c.camera.Pan(viewport.East, w, h)
	case ActionPanWest:
		c.camera.Pan(viewport.West, w, h)
	case ActionSpeedUp:
		c.camera.SetSpeed(c.camera.Speed + 1)
	case ActionSpeedDown:
		c.camera.SetSpeed(c.camera.Speed - 1)
	case ActionClear:
		c.grid.Clear()
		c.generation = 0
	case ActionRandomize:
		c.grid.Randomize()
	case ActionTogglePause:
		c.paused = !c.paused
	case ActionStep:
		if c.paused {
			c.advance()
		}
	}
}

func (c *Controller) advance() {
	c.grid.Update()
	c.generation++
}

func (c *Controller) paint(ev PointerEvent) {
	x, y, ok := c.camera.ScreenToWorld(ev.Col, ev.Row)
	if !ok {
		return
	}
	c.grid.Set(x, y, ev.Button == ButtonPrimary)
}

// Frame yields every viewport cell in row-major order. Cells that map off
// the grid are blank.
func (c *Controller) Frame() iter.Seq[Placement] {
	return func(yield func(Placement) bool) {
		for row := 0; row < c.camera.ViewportHeight; row++ {
			for col := 0; col < c.camera.ViewportWidth; col++ {
				if !yield(Placement{Col: col, Row: row, Glyph: c.glyphAt(col, row)}) {
					return
				}
			}
		}
	}
}

func (c *Controller) glyphAt(col, row int) Glyph {
	x, y, ok := c.camera.ScreenToWorld(col, row)
	if !ok {
		return GlyphBlank
	}
	alive, ok := c.grid.CellAt(x, y)
	switch {
	case !ok:
		return GlyphBlank
	case alive:
		return GlyphAlive
	default:
		return GlyphDead
	}
}

func (c *Controller) Status() Status {
	return Status{
		CameraX:    c.camera.X,
		CameraY:    c.camera.Y,
		Speed:      c.camera.Speed,
		Paused:     c.paused,
		LiveCells:  c.grid.LiveCells(),
		Generation: c.generation,
		Width:      c.grid.Width(),
		Height:     c.grid.Height(),
	}
}
