package core

import "github.com/pkg/errors"

// DefaultMargin is the number of scratch rows allocated beyond the logical
// grid. A top-to-bottom sweep needs at least two rows of headroom between the
// write cursor and the shifted previous-generation data; three leaves slack.
const DefaultMargin = 3

// Configuration errors reported by NewBitGrid. Dimension constraints exist so
// that toroidal wrapping reduces to a bitmask and rows stay byte aligned.
var (
	ErrDimensionNotPowerOfTwo = errors.New("grid dimension must be a power of two")
	ErrWidthNotByteAligned    = errors.New("grid width must be a multiple of 8")
	ErrMarginTooSmall         = errors.New("margin must be at least one row")
)

// BitGrid is bit-packed 2D boolean storage with extra scratch rows that make
// an in-place generation advance possible. Cells are stored 8 per byte,
// MSB-first, row-major.
//
// Addressing is deliberately asymmetric. Between advances the current
// generation occupies the first H physical rows, which is where Set and Clear
// write and what Bitmap exposes. During an advance the engine first shifts the
// whole buffer down by Margin rows, after which Alive (which reads Margin
// rows below the write cursor) still sees the previous generation while Set
// and Clear lay down the next one over the vacated top rows. Callers other
// than the engine must treat Alive as meaningful only mid-advance and read
// steady state through Get or Bitmap.
//
// None of the cell primitives validate coordinates. Staying inside
// [0, W) x [0, H) is the caller's contract; this keeps the hot path branch
// free on the class of hardware the layout was designed for.
type BitGrid struct {
	w, h   int
	margin int
	stride int // bytes per row
	buf    []byte
}

// NewBitGrid allocates storage for a w by h grid plus margin scratch rows.
// Width and height must be powers of two and width a multiple of 8.
func NewBitGrid(w, h, margin int) (*BitGrid, error) {
	if !powerOfTwo(w) {
		return nil, errors.Wrapf(ErrDimensionNotPowerOfTwo, "width %d", w)
	}
	if !powerOfTwo(h) {
		return nil, errors.Wrapf(ErrDimensionNotPowerOfTwo, "height %d", h)
	}
	if w%8 != 0 {
		return nil, errors.Wrapf(ErrWidthNotByteAligned, "width %d", w)
	}
	if margin < 1 {
		return nil, errors.Wrapf(ErrMarginTooSmall, "margin %d", margin)
	}
	stride := w / 8
	return &BitGrid{
		w:      w,
		h:      h,
		margin: margin,
		stride: stride,
		buf:    make([]byte, stride*(h+margin)),
	}, nil
}

func powerOfTwo(n int) bool { return n > 0 && n&(n-1) == 0 }

// W returns the logical grid width in cells.
func (g *BitGrid) W() int { return g.w }

// H returns the logical grid height in cells.
func (g *BitGrid) H() int { return g.h }

// Margin returns the number of scratch rows.
func (g *BitGrid) Margin() int { return g.margin }

// Stride returns the number of bytes per row.
func (g *BitGrid) Stride() int { return g.stride }

func mask(x int) byte { return 0x80 >> (x & 7) }

// Set marks cell (x, y) alive at physical row y. Precondition: coordinates
// in range.
func (g *BitGrid) Set(x, y int) {
	g.buf[x>>3+y*g.stride] |= mask(x)
}

// Clear marks cell (x, y) dead at physical row y. Precondition: coordinates
// in range.
func (g *BitGrid) Clear(x, y int) {
	g.buf[x>>3+y*g.stride] &^= mask(x)
}

// Alive reads cell (x, y) through the margin offset, i.e. at physical row
// y+Margin. Valid only between ShiftRowsDown and the overwrite of that row
// during an advance. Precondition: coordinates in range.
func (g *BitGrid) Alive(x, y int) bool {
	return g.buf[x>>3+(y+g.margin)*g.stride]&mask(x) != 0
}

// Get reads the steady-state cell (x, y), mirroring the addressing Set uses.
// Precondition: coordinates in range.
func (g *BitGrid) Get(x, y int) bool {
	return g.buf[x>>3+y*g.stride]&mask(x) != 0
}

// Wrap folds coordinates back into the grid toroidally. Valid for offsets no
// more negative than -W/-H; the power-of-two constraint makes this a mask.
func (g *BitGrid) Wrap(x, y int) (int, int) {
	return (x + g.w) & (g.w - 1), (y + g.h) & (g.h - 1)
}

// ClearAll zeroes the whole buffer, margin rows included.
func (g *BitGrid) ClearAll() {
	for i := range g.buf {
		g.buf[i] = 0
	}
}

// ShiftRowsDown moves the entire buffer contents toward higher rows by the
// given count, dropping the last rows. The built-in copy has memmove
// semantics, so the overlapping regions are safe.
func (g *BitGrid) ShiftRowsDown(rows int) {
	off := rows * g.stride
	copy(g.buf[off:], g.buf[:len(g.buf)-off])
}

// Row exposes the backing bytes of one physical row. The engine uses it to
// snapshot and blank rows wholesale; everyone else should prefer Bitmap.
func (g *BitGrid) Row(y int) []byte {
	return g.buf[y*g.stride : (y+1)*g.stride]
}

// Bitmap returns the logical H-row bitmap, Stride bytes per row, MSB-first.
// The margin rows are never included.
func (g *BitGrid) Bitmap() []byte {
	return g.buf[:g.h*g.stride]
}
