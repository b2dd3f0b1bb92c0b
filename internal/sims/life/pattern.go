package life

import (
	"github.com/pkg/errors"

	"bitlife/internal/core"
)

// Pattern descriptor layout: a four byte header [byteWidth, rowCount,
// xOffset, yOffset] followed by byteWidth*rowCount payload bytes, one bit per
// cell, MSB-first, row-major. No magic number, no versioning; the format is
// positional and fixed.
const patternHeaderLen = 4

// Pattern decode errors. The wire format carries no bounds field, so these
// are the hardened replacements for what would otherwise corrupt the grid.
var (
	ErrPatternTruncated   = errors.New("pattern shorter than header plus payload")
	ErrPatternOutOfBounds = errors.New("pattern placement exceeds grid extent")
)

// Canned descriptors for common starters, placed near the grid's top-left.
var (
	// Blinker is a horizontal period-2 oscillator.
	Blinker = []byte{1, 1, 2, 2, 0xE0}
	// Glider travels diagonally down-right.
	Glider = []byte{1, 3, 2, 2, 0x40, 0x20, 0xE0}
)

// DecodePattern clears the grid and raises the cells the descriptor encodes,
// offset by the header's (xOffset, yOffset). Every set bit must land inside
// the grid; zero padding bits in the byte-granular payload may overhang the
// edge. The descriptor is validated before any cell is touched.
func DecodePattern(pattern []byte, g *core.BitGrid) error {
	if len(pattern) < patternHeaderLen {
		return errors.Wrapf(ErrPatternTruncated, "%d bytes", len(pattern))
	}
	byteWidth := int(pattern[0])
	rowCount := int(pattern[1])
	xOffset := int(pattern[2])
	yOffset := int(pattern[3])

	payload := pattern[patternHeaderLen:]
	if len(payload) < byteWidth*rowCount {
		return errors.Wrapf(ErrPatternTruncated, "payload %d bytes, header promises %d", len(payload), byteWidth*rowCount)
	}
	for row := 0; row < rowCount; row++ {
		for b := 0; b < byteWidth; b++ {
			v := payload[row*byteWidth+b]
			for bit := 0; bit < 8; bit++ {
				if v&(0x80>>bit) == 0 {
					continue
				}
				x, y := b*8+bit+xOffset, row+yOffset
				if x >= g.W() || y >= g.H() {
					return errors.Wrapf(ErrPatternOutOfBounds, "live cell at (%d,%d) on %dx%d grid",
						x, y, g.W(), g.H())
				}
			}
		}
	}

	g.ClearAll()
	for row := 0; row < rowCount; row++ {
		for b := 0; b < byteWidth; b++ {
			v := payload[row*byteWidth+b]
			for bit := 0; bit < 8; bit++ {
				if v&(0x80>>bit) != 0 {
					g.Set(b*8+bit+xOffset, row+yOffset)
				}
			}
		}
	}
	return nil
}
