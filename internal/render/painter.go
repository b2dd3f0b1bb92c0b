//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"bitlife/internal/core"
)

// GridPainter accepts packed bitmaps and keeps a single RGBA image up to
// date for drawing.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte

	onColor  color.Color
	offColor color.Color

	originX, originY int
}

var _ core.BitmapSink = (*GridPainter)(nil)

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, on, off color.Color) *GridPainter {
	gp := &GridPainter{
		w:        w,
		h:        h,
		buf:      make([]byte, 4*w*h),
		onColor:  on,
		offColor: off,
	}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// DrawBitmap uploads a packed bitmap into the painter image. The buffer must
// match the painter's dimensions.
func (gp *GridPainter) DrawBitmap(originX, originY, byteWidth, rowCount int, buf []byte) {
	if byteWidth*8 != gp.w || rowCount != gp.h {
		return
	}
	gp.originX, gp.originY = originX, originY
	fillPackedRGBA(gp.buf, buf, byteWidth, rowCount, gp.onColor, gp.offColor)
	gp.img.WritePixels(gp.buf)
}

// Blit draws the most recently uploaded bitmap onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(float64(gp.originX*scale), float64(gp.originY*scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
