package render

import (
	"image/color"
	"testing"
)

func TestFillPackedRGBA(t *testing.T) {
	// Two rows, one byte each: a lone MSB cell, then an alternating row.
	bits := []byte{0x80, 0xAA}
	buf := make([]byte, 16*4)
	fillPackedRGBA(buf, bits, 1, 2, color.White, color.Black)

	for px := 0; px < 16; px++ {
		row, col := px/8, px%8
		want := byte(0)
		if bits[row]&(0x80>>col) != 0 {
			want = 0xFF
		}
		base := px * 4
		if buf[base] != want || buf[base+1] != want || buf[base+2] != want {
			t.Fatalf("pixel %d: rgb = (%d,%d,%d), want %d", px, buf[base], buf[base+1], buf[base+2], want)
		}
		if buf[base+3] != 0xFF {
			t.Fatalf("pixel %d: alpha = %d, want 255", px, buf[base+3])
		}
	}
}
