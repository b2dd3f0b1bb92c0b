package render

import (
	"fmt"
	"io"
	"strings"

	"bitlife/internal/core"
)

const (
	textCellOn  = "##"
	textCellOff = ".."
)

// TextSink writes packed bitmaps as ASCII rows, two characters per cell. It
// is the presentation path for terminals and for dumping a board when a soak
// scenario fails.
type TextSink struct {
	Out io.Writer
}

var _ core.BitmapSink = (*TextSink)(nil)

// DrawBitmap renders rowCount rows of byteWidth bytes. The origin is emitted
// as a header line so successive frames stay distinguishable in a scrollback.
func (s *TextSink) DrawBitmap(originX, originY, byteWidth, rowCount int, buf []byte) {
	fmt.Fprintf(s.Out, "-- %dx%d at (%d,%d) --\n", byteWidth*8, rowCount, originX, originY)
	var line strings.Builder
	for y := 0; y < rowCount; y++ {
		line.Reset()
		for b := 0; b < byteWidth; b++ {
			v := buf[y*byteWidth+b]
			for bit := 0; bit < 8; bit++ {
				if v&(0x80>>bit) != 0 {
					line.WriteString(textCellOn)
				} else {
					line.WriteString(textCellOff)
				}
			}
		}
		fmt.Fprintln(s.Out, line.String())
	}
}
