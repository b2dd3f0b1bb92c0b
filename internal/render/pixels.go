package render

import "image/color"

// fillPackedRGBA expands a packed MSB-first bitmap into RGBA pixels in buf.
// Rows are byteWidth bytes wide; buf must hold byteWidth*8*rowCount pixels.
func fillPackedRGBA(buf []byte, bits []byte, byteWidth, rowCount int, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for y := 0; y < rowCount; y++ {
		for b := 0; b < byteWidth; b++ {
			v := bits[y*byteWidth+b]
			for bit := 0; bit < 8; bit++ {
				base := (y*byteWidth*8 + b*8 + bit) * 4
				if v&(0x80>>bit) != 0 {
					buf[base+0] = uint8(rOn >> 8)
					buf[base+1] = uint8(gOn >> 8)
					buf[base+2] = uint8(bOn >> 8)
					buf[base+3] = uint8(aOn >> 8)
					continue
				}
				buf[base+0] = uint8(rOff >> 8)
				buf[base+1] = uint8(gOff >> 8)
				buf[base+2] = uint8(bOff >> 8)
				buf[base+3] = uint8(aOff >> 8)
			}
		}
	}
}
