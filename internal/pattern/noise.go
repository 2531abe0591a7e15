package pattern

import (
	"github.com/aquilax/go-perlin"
	"github.com/san-kum/lifesim/internal/life"
)

const (
	noiseAlpha     = 2.0
	noiseBeta      = 2.0
	noiseOctaves   = 3
	noiseScale     = 0.08
	noiseThreshold = 0.05
)

// FillNoise seeds the grid with Perlin noise: cells where the noise rises
// above a threshold start alive. Unlike Randomize this produces clustered
// islands of life with empty sea in between.
func FillNoise(g *life.Grid, seed int64) {
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			v := p.Noise2D(float64(x)*noiseScale, float64(y)*noiseScale)
			g.Set(x, y, v > noiseThreshold)
		}
	}
}
