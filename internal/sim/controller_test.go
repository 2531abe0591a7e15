package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func newController(w, h, cols, rows, speed int) *Controller {
	c, err := New(Options{Width: w, Height: h, Seed: 1, Cols: cols, Rows: rows, Speed: speed})
	Expect(err).NotTo(HaveOccurred())
	return c
}

func press(c *Controller, actions ...Action) {
	for _, a := range actions {
		c.Handle(KeyEvent{Action: a})
	}
}

func collect(c *Controller) []Placement {
	var out []Placement
	for p := range c.Frame() {
		out = append(out, p)
	}
	return out
}

var _ = Describe("Controller", func() {
	var c *Controller

	BeforeEach(func() {
		c = newController(10, 10, 20, 10, 1)
	})

	It("starts running, unpaused, centered on the grid", func() {
		Expect(c.Running()).To(BeTrue())
		Expect(c.Paused()).To(BeFalse())
		Expect(c.Generation()).To(Equal(0))
		Expect(c.Camera().X).To(Equal(5))
		Expect(c.Camera().Y).To(Equal(5))
		Expect(c.Camera().ViewportWidth).To(Equal(10))
		Expect(c.Camera().ViewportHeight).To(Equal(10))
	})

	It("rejects a zero-area grid", func() {
		_, err := New(Options{Width: 0, Height: 4, Cols: 10, Rows: 10})
		Expect(err).To(HaveOccurred())
	})

	Describe("panning", func() {
		It("moves east by one and clamps at the map width", func() {
			press(c, ActionPanEast)
			Expect(c.Camera().X).To(Equal(6))

			for i := 0; i < 9; i++ {
				press(c, ActionPanEast)
				Expect(c.Camera().X).To(BeNumerically("<=", 10))
			}
			Expect(c.Camera().X).To(Equal(10))
		})

		It("saturates at zero going north and west", func() {
			for i := 0; i < 20; i++ {
				press(c, ActionPanNorth, ActionPanWest)
			}
			Expect(c.Camera().X).To(Equal(0))
			Expect(c.Camera().Y).To(Equal(0))
		})

		It("moves south", func() {
			press(c, ActionPanSouth, ActionPanSouth)
			Expect(c.Camera().Y).To(Equal(7))
		})
	})

	Describe("speed", func() {
		It("stays within [1, min viewport]", func() {
			press(c, ActionSpeedDown, ActionSpeedDown)
			Expect(c.Camera().Speed).To(Equal(1))
			for i := 0; i < 30; i++ {
				press(c, ActionSpeedUp)
			}
			Expect(c.Camera().Speed).To(Equal(10))
		})
	})

	Describe("ticks", func() {
		BeforeEach(func() {
			c.Grid().Set(4, 3, true)
			c.Grid().Set(4, 4, true)
			c.Grid().Set(4, 5, true)
		})

		It("advances the grid and counts generations", func() {
			c.Handle(TickEvent{})
			Expect(c.Generation()).To(Equal(1))
			Expect(c.Status().LiveCells).To(Equal(3))
			alive, _ := c.Grid().CellAt(3, 4)
			Expect(alive).To(BeTrue())
		})

		It("does nothing while paused", func() {
			press(c, ActionTogglePause)
			c.Handle(TickEvent{})
			Expect(c.Generation()).To(Equal(0))
			alive, _ := c.Grid().CellAt(4, 3)
			Expect(alive).To(BeTrue())
		})

		It("steps once on demand while paused", func() {
			press(c, ActionTogglePause, ActionStep)
			Expect(c.Generation()).To(Equal(1))
			press(c, ActionTogglePause, ActionStep)
			Expect(c.Generation()).To(Equal(1))
		})

		It("resets the generation count on clear", func() {
			c.Handle(TickEvent{})
			c.Handle(TickEvent{})
			press(c, ActionClear)
			Expect(c.Generation()).To(Equal(0))
			Expect(c.Grid().Population()).To(Equal(0))
			Expect(c.Status().LiveCells).To(Equal(0))
		})
	})

	It("randomizes and then clears to an empty grid", func() {
		press(c, ActionRandomize)
		Expect(c.Grid().Population()).To(BeNumerically(">", 0))
		press(c, ActionClear)
		Expect(c.Grid().Population()).To(BeZero())
	})

	It("stops running on quit", func() {
		press(c, ActionQuit)
		Expect(c.Running()).To(BeFalse())
	})

	It("ignores ActionNone", func() {
		press(c, ActionNone)
		Expect(c.Status()).To(Equal(newController(10, 10, 20, 10, 1).Status()))
	})

	Describe("pointer painting", func() {
		It("sets the mapped cell alive with the primary button", func() {
			c.Handle(PointerEvent{Button: ButtonPrimary, Col: 3, Row: 4})
			alive, ok := c.Grid().CellAt(3, 4)
			Expect(ok).To(BeTrue())
			Expect(alive).To(BeTrue())
		})

		It("clears the mapped cell with the secondary button", func() {
			c.Grid().Set(3, 4, true)
			c.Handle(PointerEvent{Button: ButtonSecondary, Col: 3, Row: 4})
			alive, _ := c.Grid().CellAt(3, 4)
			Expect(alive).To(BeFalse())
		})

		It("leaves the grid alone when the click maps off the grid", func() {
			for i := 0; i < 10; i++ {
				press(c, ActionPanWest)
			}
			c.Handle(PointerEvent{Button: ButtonPrimary, Col: 2, Row: 2})

			for i := 0; i < 10; i++ {
				press(c, ActionPanEast)
			}
			c.Handle(PointerEvent{Button: ButtonPrimary, Col: 9, Row: 2})

			Expect(c.Grid().Population()).To(BeZero())
		})
	})

	Describe("resize", func() {
		It("halves the columns", func() {
			c.Handle(ResizeEvent{Cols: 41, Rows: 12})
			Expect(c.Camera().ViewportWidth).To(Equal(20))
			Expect(c.Camera().ViewportHeight).To(Equal(12))
		})
	})

	Describe("frame", func() {
		It("yields every viewport cell in row-major order", func() {
			c = newController(4, 4, 8, 4, 1)
			c.Grid().Set(1, 2, true)

			frame := collect(c)
			Expect(frame).To(HaveLen(16))
			Expect(frame[0]).To(Equal(Placement{Col: 0, Row: 0, Glyph: GlyphDead}))
			Expect(frame[2*4+1]).To(Equal(Placement{Col: 1, Row: 2, Glyph: GlyphAlive}))
			Expect(frame[15].Col).To(Equal(3))
			Expect(frame[15].Row).To(Equal(3))
		})

		It("marks off-grid cells blank", func() {
			c = newController(4, 4, 8, 4, 4)
			press(c, ActionPanNorth, ActionPanWest)

			frame := collect(c)
			Expect(frame[0].Glyph).To(Equal(GlyphBlank))
			Expect(frame[1*4+1].Glyph).To(Equal(GlyphBlank))
			Expect(frame[2*4+2].Glyph).To(Equal(GlyphDead))
		})

		It("agrees with pointer mapping", func() {
			c.Handle(PointerEvent{Button: ButtonPrimary, Col: 7, Row: 1})
			var hits []Placement
			for p := range c.Frame() {
				if p.Glyph == GlyphAlive {
					hits = append(hits, p)
				}
			}
			Expect(hits).To(ConsistOf(Placement{Col: 7, Row: 1, Glyph: GlyphAlive}))
		})

		It("stops when the consumer stops", func() {
			n := 0
			for range c.Frame() {
				n++
				if n == 3 {
					break
				}
			}
			Expect(n).To(Equal(3))
		})
	})

	It("reports status", func() {
		press(c, ActionTogglePause)
		Expect(c.Status()).To(Equal(Status{
			CameraX: 5, CameraY: 5, Speed: 1, Paused: true,
			Width: 10, Height: 10,
		}))
	})
})
