package life

import (
	"github.com/pkg/errors"

	"bitlife/internal/core"
	rng "bitlife/pkg/core"
)

// minMargin is the smallest scratch headroom the top-to-bottom sweep can
// tolerate: the write cursor at physical row y must stay strictly above the
// previous-generation data for row y-1, which sits at physical y+margin-1.
const minMargin = 2

// Life implements Conway's Game of Life (B3/S23) over a single bit-packed
// buffer. Each Step advances the grid in place: the buffer is shifted down by
// the margin so the previous generation stays readable through the offset
// accessor while the next generation is written over the vacated rows. One
// buffer of H+margin rows replaces the usual two full generations.
//
// Step mutates shared state row by row and must run to completion before any
// other access to the grid, including a render read, begins.
type Life struct {
	cfg  Config
	grid *core.BitGrid

	generation int

	// row0 snapshots the previous generation's first row for toroidal
	// sweeps; the last row's wrap-around read needs it after the row's
	// physical home has been overwritten.
	row0 []byte
}

// New returns a Life simulation with the provided dimensions using defaults.
func New(w, h int) (*Life, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.SeedCells = w * h / 8
	return NewWithConfig(cfg)
}

// NewWithConfig returns a Life simulation configured from the provided
// options. Dimension and margin constraints are rejected here, never at
// advance time.
func NewWithConfig(cfg Config) (*Life, error) {
	if cfg.Margin < minMargin {
		return nil, errors.Wrapf(core.ErrMarginTooSmall, "margin %d, sweep order needs %d", cfg.Margin, minMargin)
	}
	grid, err := core.NewBitGrid(cfg.Width, cfg.Height, cfg.Margin)
	if err != nil {
		return nil, err
	}
	return &Life{
		cfg:  cfg,
		grid: grid,
		row0: make([]byte, grid.Stride()),
	}, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cfg.Width, H: l.cfg.Height} }

// Grid exposes the underlying storage for codecs and seeders.
func (l *Life) Grid() *core.BitGrid { return l.grid }

// Bitmap returns the current generation as a packed MSB-first bitmap,
// Stride bytes per row, margin rows excluded. This is the slice handed to a
// rendering sink.
func (l *Life) Bitmap() []byte { return l.grid.Bitmap() }

// Generation returns the number of advances since the last reseed.
func (l *Life) Generation() int { return l.generation }

// Reset repopulates the board randomly from the provided seed, clears the
// margin scratch rows and zeroes the generation counter.
func (l *Life) Reset(seed int64) {
	r := rng.NewRNG(seed)
	SeedRandom(l.grid, l.cfg.SeedCells, r.IntN)
	l.generation = 0
}

// ResetGeneration zeroes the counter without touching cell state, for hosts
// that reseed through the codec instead of randomly.
func (l *Life) ResetGeneration() { l.generation = 0 }

// Step advances the simulation by one generation in place.
func (l *Life) Step() {
	g := l.grid
	g.ShiftRowsDown(g.Margin())
	if l.cfg.Topology == TopologyToroidal {
		l.stepToroidal()
	} else {
		l.stepBounded()
	}
	l.generation++
}

// stepBounded evaluates the interior ring only. Border cells carry their
// last-written state forward: the top row survives the shift untouched, the
// side columns are copied cell by cell, and the bottom row is restored from
// its shifted copy once the sweep no longer needs it.
func (l *Life) stepBounded() {
	g := l.grid
	w, h := l.cfg.Width, l.cfg.Height
	for y := 1; y < h-1; y++ {
		carry(g, 0, y)
		carry(g, w-1, y)
		for x := 1; x < w-1; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					if g.Alive(x+dx, y+dy) {
						neighbors++
					}
				}
			}
			write(g, x, y, g.Alive(x, y), neighbors)
		}
	}
	copy(g.Row(h-1), g.Row(h-1+g.Margin()))
}

// stepToroidal evaluates every cell with wrap-around coordinates.
func (l *Life) stepToroidal() {
	g := l.grid
	w, h := l.cfg.Width, l.cfg.Height
	copy(l.row0, g.Row(g.Margin()))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					if l.oldAlive(x+dx, y+dy) {
						neighbors++
					}
				}
			}
			write(g, x, y, l.oldAlive(x, y), neighbors)
		}
	}
}

// oldAlive reads the previous generation with toroidal wrapping. Row 0 comes
// from the snapshot: its physical home is overwritten partway through the
// sweep but the last row still wraps around to it.
func (l *Life) oldAlive(x, y int) bool {
	x, y = l.grid.Wrap(x, y)
	if y == 0 {
		return l.row0[x>>3]&(0x80>>(x&7)) != 0
	}
	return l.grid.Alive(x, y)
}

// carry copies a border cell's previous state into the new generation row.
func carry(g *core.BitGrid, x, y int) {
	if g.Alive(x, y) {
		g.Set(x, y)
	} else {
		g.Clear(x, y)
	}
}

// write applies B3/S23 and stores the outcome at the unshifted row.
func write(g *core.BitGrid, x, y int, alive bool, neighbors int) {
	if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
		g.Set(x, y)
	} else {
		g.Clear(x, y)
	}
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		return NewWithConfig(FromMap(cfg))
	})
}
