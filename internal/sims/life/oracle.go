package life

// Oracle is a plain double-buffered rendition of the same rule and boundary
// policies. It spends the second full buffer the engine exists to avoid, in
// exchange for the most obviously correct sweep, and is used to cross-check
// the in-place advance in tests and the soak command.
type Oracle struct {
	w, h     int
	topology Topology
	cur      []bool
	nxt      []bool
}

// NewOracle returns an all-dead reference board.
func NewOracle(w, h int, topology Topology) *Oracle {
	return &Oracle{
		w:        w,
		h:        h,
		topology: topology,
		cur:      make([]bool, w*h),
		nxt:      make([]bool, w*h),
	}
}

// Set raises cell (x, y).
func (o *Oracle) Set(x, y int) { o.cur[y*o.w+x] = true }

// Alive reports cell (x, y).
func (o *Oracle) Alive(x, y int) bool { return o.cur[y*o.w+x] }

// LoadBitmap copies a packed MSB-first bitmap (w/8 bytes per row) into the
// board, replacing its state.
func (o *Oracle) LoadBitmap(bits []byte) {
	stride := o.w / 8
	for y := 0; y < o.h; y++ {
		for x := 0; x < o.w; x++ {
			o.cur[y*o.w+x] = bits[y*stride+x>>3]&(0x80>>(x&7)) != 0
		}
	}
}

// Bitmap packs the board into the engine's bitmap layout for comparison.
func (o *Oracle) Bitmap() []byte {
	stride := o.w / 8
	out := make([]byte, stride*o.h)
	for y := 0; y < o.h; y++ {
		for x := 0; x < o.w; x++ {
			if o.cur[y*o.w+x] {
				out[y*stride+x>>3] |= 0x80 >> (x & 7)
			}
		}
	}
	return out
}

// Step advances one generation into the spare buffer and swaps.
func (o *Oracle) Step() {
	w, h := o.w, o.h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			if o.topology == TopologyBounded && (x == 0 || x == w-1 || y == 0 || y == h-1) {
				o.nxt[idx] = o.cur[idx]
				continue
			}
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if o.topology == TopologyToroidal {
						nx = (nx + w) % w
						ny = (ny + h) % h
					}
					if o.cur[ny*w+nx] {
						neighbors++
					}
				}
			}
			alive := o.cur[idx]
			o.nxt[idx] = (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3)
		}
	}
	o.cur, o.nxt = o.nxt, o.cur
}
