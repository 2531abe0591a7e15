package pattern

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/san-kum/lifesim/internal/life"
	"gopkg.in/yaml.v3"
)

//go:embed patterns.yaml
var patternData []byte

var ErrUnknownPattern = errors.New("pattern: unknown pattern")

// Pattern is a named arrangement of live cells.
type Pattern struct {
	Name        string   `yaml:"-"`
	Description string   `yaml:"description"`
	Rows        []string `yaml:"rows"`
}

// Size returns the bounding box of the pattern.
func (p *Pattern) Size() (w, h int) {
	for _, row := range p.Rows {
		w = max(w, len(row))
	}
	return w, len(p.Rows)
}

// Cells returns the live cell offsets relative to the top-left corner.
func (p *Pattern) Cells() [][2]int {
	var cells [][2]int
	for y, row := range p.Rows {
		for x, ch := range row {
			if ch == 'O' || ch == '*' {
				cells = append(cells, [2]int{x, y})
			}
		}
	}
	return cells
}

// Stamp sets the pattern's cells alive with its top-left corner at (x, y).
// Cells that land off the grid are dropped.
func (p *Pattern) Stamp(g *life.Grid, x, y int) {
	for _, c := range p.Cells() {
		g.Set(x+c[0], y+c[1], true)
	}
}

// StampCentered stamps the pattern in the middle of the grid.
func (p *Pattern) StampCentered(g *life.Grid) {
	w, h := p.Size()
	p.Stamp(g, (g.Width()-w)/2, (g.Height()-h)/2)
}

var loadLibrary = sync.OnceValues(func() (map[string]*Pattern, error) {
	lib := make(map[string]*Pattern)
	if err := yaml.Unmarshal(patternData, &lib); err != nil {
		return nil, fmt.Errorf("pattern: parse library: %w", err)
	}
	for name, p := range lib {
		p.Name = name
	}
	return lib, nil
})

func (p *Pattern) clone() *Pattern {
	cp := *p
	cp.Rows = slices.Clone(p.Rows)
	return &cp
}

// Get returns a copy of the named pattern.
func Get(name string) (*Pattern, error) {
	lib, err := loadLibrary()
	if err != nil {
		return nil, err
	}
	p, ok := lib[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPattern, name)
	}
	return p.clone(), nil
}

// List returns every pattern sorted by name.
func List() []*Pattern {
	lib, err := loadLibrary()
	if err != nil {
		return nil
	}
	out := make([]*Pattern, 0, len(lib))
	for _, p := range lib {
		out = append(out, p.clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
