package life

import (
	"math/bits"
	"testing"

	rng "bitlife/pkg/core"
)

func popCount(bitmap []byte) int {
	n := 0
	for _, b := range bitmap {
		n += bits.OnesCount8(b)
	}
	return n
}

func TestSeedRandomZeroCount(t *testing.T) {
	g := newTestGrid(t, 16, 16)
	g.Set(5, 5)
	SeedRandom(g, 0, rng.NewRNG(1).IntN)
	if popCount(g.Bitmap()) != 0 {
		t.Fatal("seeding zero cells must leave the grid fully dead")
	}
}

func TestSeedRandomPopulationIsAtMostCount(t *testing.T) {
	g := newTestGrid(t, 32, 32)
	const count = 40
	SeedRandom(g, count, rng.NewRNG(7).IntN)
	if pop := popCount(g.Bitmap()); pop == 0 || pop > count {
		t.Fatalf("population = %d, want in (0, %d]", pop, count)
	}
}

func TestSeedRandomStaysInterior(t *testing.T) {
	g := newTestGrid(t, 16, 16)
	SeedRandom(g, 200, rng.NewRNG(3).IntN)
	for i := 0; i < 16; i++ {
		if g.Get(i, 0) || g.Get(i, 15) || g.Get(0, i) || g.Get(15, i) {
			t.Fatalf("border cell seeded at index %d", i)
		}
	}
}

func TestSeedRandomSaturatesInterior(t *testing.T) {
	g := newTestGrid(t, 16, 16)
	SeedRandom(g, 14*14, rng.NewRNG(5).IntN)
	for y := 1; y < 15; y++ {
		for x := 1; x < 15; x++ {
			if !g.Get(x, y) {
				t.Fatalf("interior cell (%d,%d) dead after saturating seed", x, y)
			}
		}
	}
	if pop := popCount(g.Bitmap()); pop != 14*14 {
		t.Fatalf("population = %d, want %d (border must stay dead)", pop, 14*14)
	}
}

func TestSeedRandomClearsMargin(t *testing.T) {
	g := newTestGrid(t, 16, 16)
	for y := 16; y < 16+g.Margin(); y++ {
		g.Row(y)[0] = 0xFF
	}
	SeedRandom(g, 0, rng.NewRNG(1).IntN)
	for y := 16; y < 16+g.Margin(); y++ {
		if g.Row(y)[0] != 0 {
			t.Fatalf("margin row %d not cleared by seeding", y)
		}
	}
}
