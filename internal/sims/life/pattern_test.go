package life

import (
	"errors"
	"testing"

	"bitlife/internal/core"
)

func newTestGrid(t *testing.T, w, h int) *core.BitGrid {
	t.Helper()
	g, err := core.NewBitGrid(w, h, core.DefaultMargin)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestDecodeRoundTrip(t *testing.T) {
	g := newTestGrid(t, 32, 16)
	pattern := []byte{
		2, 3, 4, 5, // 16 cells wide, 3 rows, placed at (4, 5)
		0xA5, 0x01,
		0x00, 0xFF,
		0x80, 0x00,
	}
	if err := DecodePattern(pattern, g); err != nil {
		t.Fatal(err)
	}

	payload := pattern[4:]
	for y := 0; y < 16; y++ {
		for x := 0; x < 32; x++ {
			want := false
			px, py := x-4, y-5
			if px >= 0 && px < 16 && py >= 0 && py < 3 {
				want = payload[py*2+px>>3]&(0x80>>(px&7)) != 0
			}
			if got := g.Get(x, y); got != want {
				t.Fatalf("cell (%d,%d) alive=%v, want %v", x, y, got, want)
			}
		}
	}
}

func TestDecodeClearsPreviousState(t *testing.T) {
	g := newTestGrid(t, 16, 16)
	g.Set(10, 10)
	if err := DecodePattern([]byte{1, 1, 1, 1, 0x80}, g); err != nil {
		t.Fatal(err)
	}
	if g.Get(10, 10) {
		t.Fatal("decode must clear stale cells")
	}
	if !g.Get(1, 1) {
		t.Fatal("decoded cell (1,1) missing")
	}
}

func TestDecodeTruncated(t *testing.T) {
	g := newTestGrid(t, 16, 16)
	if err := DecodePattern([]byte{1, 1, 0}, g); !errors.Is(err, ErrPatternTruncated) {
		t.Fatalf("short header: got %v, want %v", err, ErrPatternTruncated)
	}
	if err := DecodePattern([]byte{2, 2, 0, 0, 0xFF}, g); !errors.Is(err, ErrPatternTruncated) {
		t.Fatalf("short payload: got %v, want %v", err, ErrPatternTruncated)
	}
}

func TestDecodePaddingBitsMayOverhangEdge(t *testing.T) {
	// The payload is byte granular, so a pattern near the right edge can
	// carry zero padding past it. Only live cells are bounds checked: the
	// canned blinker decodes on a grid exactly one byte wide.
	g := newTestGrid(t, 8, 8)
	if err := DecodePattern(Blinker, g); err != nil {
		t.Fatalf("blinker on 8x8 grid: %v", err)
	}
	for _, c := range [][2]int{{2, 2}, {3, 2}, {4, 2}} {
		if !g.Get(c[0], c[1]) {
			t.Fatalf("blinker cell (%d,%d) missing", c[0], c[1])
		}
	}

	// Same placement with a live bit in the overhang must be rejected.
	g.ClearAll()
	g.Set(1, 1)
	if err := DecodePattern([]byte{1, 1, 2, 2, 0xE1}, g); !errors.Is(err, ErrPatternOutOfBounds) {
		t.Fatalf("live overhang bit: got %v, want %v", err, ErrPatternOutOfBounds)
	}
	if !g.Get(1, 1) {
		t.Fatal("rejected decode must not modify the grid")
	}
}

func TestDecodeOutOfBoundsLeavesGridUntouched(t *testing.T) {
	g := newTestGrid(t, 16, 16)
	g.Set(3, 3)

	if err := DecodePattern([]byte{1, 1, 12, 0, 0xFF}, g); !errors.Is(err, ErrPatternOutOfBounds) {
		t.Fatalf("x overflow: got %v, want %v", err, ErrPatternOutOfBounds)
	}
	if err := DecodePattern([]byte{1, 2, 0, 15, 0xFF, 0xFF}, g); !errors.Is(err, ErrPatternOutOfBounds) {
		t.Fatalf("y overflow: got %v, want %v", err, ErrPatternOutOfBounds)
	}
	if !g.Get(3, 3) {
		t.Fatal("rejected decode must not modify the grid")
	}
}

func TestGliderDescriptor(t *testing.T) {
	g := newTestGrid(t, 16, 16)
	if err := DecodePattern(Glider, g); err != nil {
		t.Fatal(err)
	}
	want := [][2]int{{3, 2}, {4, 3}, {2, 4}, {3, 4}, {4, 4}}
	count := 0
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if g.Get(x, y) {
				count++
			}
		}
	}
	if count != len(want) {
		t.Fatalf("glider has %d live cells, want %d", count, len(want))
	}
	for _, c := range want {
		if !g.Get(c[0], c[1]) {
			t.Fatalf("glider cell (%d,%d) missing", c[0], c[1])
		}
	}
}
