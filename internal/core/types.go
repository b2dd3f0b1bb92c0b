package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Bitmap() []byte
}

// BitmapSink accepts a packed, MSB-first bitmap for presentation. The buffer
// holds rowCount rows of byteWidth bytes each, placed at (originX, originY)
// in the destination's coordinate space.
type BitmapSink interface {
	DrawBitmap(originX, originY, byteWidth, rowCount int, buf []byte)
}

// IntSource returns a uniformly distributed integer in [0, bound).
type IntSource func(bound int) int

// Factory constructs a Sim using an optional configuration map. Map values
// that fail to parse fall back to the sim's defaults; constraints the sim
// cannot operate under (dimensions, margins) are reported as construction
// errors.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
