package life

import (
	"errors"
	"testing"

	. "github.com/onsi/gomega"
)

func mustGrid(t *testing.T, w, h int) *Grid {
	t.Helper()
	g, err := New(w, h, 1)
	if err != nil {
		t.Fatalf("new grid: %v", err)
	}
	return g
}

func alive(g *Grid) map[[2]int]bool {
	out := make(map[[2]int]bool)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if a, _ := g.CellAt(x, y); a {
				out[[2]int{x, y}] = true
			}
		}
	}
	return out
}

func TestNew_RejectsEmptyGrid(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 5},
		{"zero height", 5, 0},
		{"negative", -1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.w, tt.h, 0)
			if !errors.Is(err, ErrEmptyGrid) {
				t.Errorf("expected ErrEmptyGrid, got %v", err)
			}
		})
	}
}

func TestNew_AllDead(t *testing.T) {
	g := NewWithT(t)
	grid := mustGrid(t, 4, 3)

	g.Expect(grid.Population()).To(Equal(0))
	g.Expect(grid.LiveCells()).To(Equal(0))
	g.Expect(grid.Width()).To(Equal(4))
	g.Expect(grid.Height()).To(Equal(3))
}

func TestPositionIndex_Bijective(t *testing.T) {
	grid := mustGrid(t, 7, 5)
	seen := make(map[int]bool)

	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			i, ok := grid.PositionIndex(x, y)
			if !ok {
				t.Fatalf("(%d,%d) reported out of bounds", x, y)
			}
			if i < 0 || i >= 35 {
				t.Fatalf("(%d,%d) mapped outside range: %d", x, y, i)
			}
			if seen[i] {
				t.Fatalf("index %d produced twice", i)
			}
			seen[i] = true
		}
	}
	if len(seen) != 35 {
		t.Errorf("expected 35 distinct indices, got %d", len(seen))
	}
}

func TestPositionIndex_OutOfBounds(t *testing.T) {
	grid := mustGrid(t, 3, 3)
	for _, p := range [][2]int{{3, 0}, {0, 3}, {-1, 0}, {0, -1}, {100, 100}} {
		if _, ok := grid.PositionIndex(p[0], p[1]); ok {
			t.Errorf("expected %v to be out of bounds", p)
		}
		if _, ok := grid.CellAt(p[0], p[1]); ok {
			t.Errorf("CellAt%v should report no value", p)
		}
	}
}

func TestToggle_Involution(t *testing.T) {
	g := NewWithT(t)
	grid := mustGrid(t, 5, 5)
	grid.Randomize()
	before := alive(grid)

	grid.Toggle(2, 3)
	a, _ := grid.CellAt(2, 3)
	g.Expect(a).To(Equal(!before[[2]int{2, 3}]))

	grid.Toggle(2, 3)
	g.Expect(alive(grid)).To(Equal(before))
}

func TestToggle_OutOfBoundsIsNoop(t *testing.T) {
	g := NewWithT(t)
	grid := mustGrid(t, 3, 3)
	grid.Toggle(3, 1)
	grid.Toggle(-1, 1)
	grid.Set(9, 9, true)
	g.Expect(grid.Population()).To(BeZero())
}

func TestToggle_DoesNotRefreshCount(t *testing.T) {
	grid := mustGrid(t, 3, 3)
	grid.Toggle(1, 1)
	if grid.LiveCells() != 0 {
		t.Errorf("expected stale count 0, got %d", grid.LiveCells())
	}
	if grid.Population() != 1 {
		t.Errorf("expected population 1, got %d", grid.Population())
	}
}

func TestUpdate_AllDeadStaysDead(t *testing.T) {
	g := NewWithT(t)
	grid := mustGrid(t, 6, 6)
	grid.Update()
	g.Expect(grid.Population()).To(BeZero())
	g.Expect(grid.LiveCells()).To(BeZero())
}

func TestUpdate_BlinkerPeriodTwo(t *testing.T) {
	g := NewWithT(t)
	grid := mustGrid(t, 3, 3)
	vertical := map[[2]int]bool{{1, 0}: true, {1, 1}: true, {1, 2}: true}
	horizontal := map[[2]int]bool{{0, 1}: true, {1, 1}: true, {2, 1}: true}
	for p := range vertical {
		grid.Set(p[0], p[1], true)
	}

	grid.Update()
	g.Expect(alive(grid)).To(Equal(horizontal))
	g.Expect(grid.LiveCells()).To(Equal(3))

	grid.Update()
	g.Expect(alive(grid)).To(Equal(vertical))
	g.Expect(grid.LiveCells()).To(Equal(3))
}

func TestUpdate_BlockIsStill(t *testing.T) {
	g := NewWithT(t)
	grid := mustGrid(t, 2, 2)
	for _, p := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		grid.Set(p[0], p[1], true)
	}
	grid.Update()
	g.Expect(grid.LiveCells()).To(Equal(4))
}

func TestUpdate_NoWraparound(t *testing.T) {
	grid := mustGrid(t, 5, 5)
	// On a torus these would feed (0,2) three neighbors.
	grid.Set(4, 1, true)
	grid.Set(4, 2, true)
	grid.Set(4, 3, true)

	grid.Update()

	if a, _ := grid.CellAt(0, 2); a {
		t.Error("cell on the opposite edge should not be born")
	}
	want := map[[2]int]bool{{3, 2}: true, {4, 2}: true}
	got := alive(grid)
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for p := range want {
		if !got[p] {
			t.Errorf("expected %v alive", p)
		}
	}
}

func TestUpdate_GliderKeepsPopulation(t *testing.T) {
	grid := mustGrid(t, 20, 20)
	for _, p := range [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}} {
		grid.Set(p[0], p[1], true)
	}
	for i := 0; i < 20; i++ {
		grid.Update()
		if grid.LiveCells() != 5 {
			t.Fatalf("generation %d: expected 5 live cells, got %d", i+1, grid.LiveCells())
		}
	}
}

func TestUpdate_CornerCell(t *testing.T) {
	grid := mustGrid(t, 1, 1)
	grid.Set(0, 0, true)
	grid.Update()
	if grid.Population() != 0 {
		t.Error("lone cell should die")
	}
}

func TestRandomizeThenClear(t *testing.T) {
	g := NewWithT(t)
	grid := mustGrid(t, 16, 16)
	grid.Randomize()
	g.Expect(grid.Population()).To(BeNumerically(">", 0))

	grid.Clear()
	g.Expect(grid.Population()).To(BeZero())
	g.Expect(grid.LiveCells()).To(BeZero())
}

func TestRandomize_RoughlyFair(t *testing.T) {
	grid := mustGrid(t, 100, 100)
	grid.Randomize()
	p := grid.Population()
	if p < 4000 || p > 6000 {
		t.Errorf("expected roughly half of 10000 cells alive, got %d", p)
	}
}

func TestReseed_Deterministic(t *testing.T) {
	a, b := mustGrid(t, 10, 10), mustGrid(t, 10, 10)
	a.Reseed(42)
	b.Reseed(42)
	a.Randomize()
	b.Randomize()
	if len(alive(a)) != len(alive(b)) {
		t.Fatal("same seed should produce the same board")
	}
	for p := range alive(a) {
		if ok, _ := b.CellAt(p[0], p[1]); !ok {
			t.Fatalf("boards differ at %v", p)
		}
	}
}
