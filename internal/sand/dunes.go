package sand

import perlin "github.com/aquilax/go-perlin"

const (
	duneAlpha   = 2.0
	duneBeta    = 2.0
	duneOctaves = 3
	// duneWaves is roughly how many crests span the grid width.
	duneWaves = 3.0
)

// duneProfile returns, per column, how many floor rows a dune of the given
// maximum height covers.
func duneProfile(cols, height int, seed int64) []int {
	out := make([]int, cols)
	if height <= 0 || cols <= 0 {
		return out
	}
	p := perlin.NewPerlin(duneAlpha, duneBeta, duneOctaves, seed)
	for col := range out {
		x := float64(col) / float64(cols) * duneWaves
		n := (p.Noise1D(x) + 1) / 2
		h := int(n*float64(height) + 0.5)
		out[col] = max(0, min(h, height))
	}
	return out
}

// pileDunes enables the floor cells under the dune profile.
func pileDunes(g *Grid, height int, seed int64) {
	profile := duneProfile(g.cols, min(height, g.rows), seed)
	for col, h := range profile {
		for row := g.rows - h; row < g.rows; row++ {
			g.Update(col, row, func(c *Cell) {
				c.Reset()
				c.Enabled = true
			})
		}
	}
}
