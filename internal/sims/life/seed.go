package life

import "bitlife/internal/core"

// SeedRandom clears the grid, margin rows included, and raises count cells at
// coordinates drawn uniformly from the interior [1, W-2] x [1, H-2]. The
// border ring is never seeded, so bounded grids start with inert padding in
// place. Duplicate draws collapse silently: the live population afterwards is
// at most count. Counts of the interior area or larger fill the interior
// outright, since uniform draws alone would leave holes at any finite count.
func SeedRandom(g *core.BitGrid, count int, src core.IntSource) {
	g.ClearAll()
	w, h := g.W(), g.H()
	interior := (w - 2) * (h - 2)
	if count >= interior {
		for y := 1; y < h-1; y++ {
			for x := 1; x < w-1; x++ {
				g.Set(x, y)
			}
		}
		return
	}
	for i := 0; i < count; i++ {
		x := src(w-2) + 1
		y := src(h-2) + 1
		g.Set(x, y)
	}
}
