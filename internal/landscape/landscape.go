// Package landscape implements the cellular automaton engine: a double
// buffered byte grid, boundary topologies, the life-like and elementary rule
// families, and the step that advances the whole grid one generation.
//
// A Landscape serializes every operation behind a single mutex. Painting,
// rule and topology changes, snapshots, and steps therefore never interleave:
// a reader observes either the generation before a step or the one after it.
package landscape

import (
	"sync"

	"gopkg.in/errgo.v1"

	"landscapes/internal/core"
)

// MaxCells bounds the area of a landscape.
const MaxCells = 1 << 26

// ErrInvalidSize is the cause of New failures for unusable dimensions.
var ErrInvalidSize = errgo.New("invalid landscape size")

// Config describes a landscape at construction time.
type Config struct {
	Width    int
	Height   int
	Rule     uint32
	Family   Family
	Topology Topology
	// Workers splits each step into row bands evaluated concurrently.
	// Values below two select the sequential pass.
	Workers int
}

// DefaultConfig returns Conway's Game of Life on a 160x90 torus.
func DefaultConfig() Config {
	return Config{
		Width:    160,
		Height:   90,
		Rule:     Conway,
		Family:   LifeLike,
		Topology: Torus,
		Workers:  1,
	}
}

// Landscape is one simulation instance. The zero value is not usable; call New.
type Landscape struct {
	mu sync.Mutex

	size     core.Size
	topology Topology
	family   Family
	rule     uint32
	workers  int

	// bufs[cur] is the generation on display; bufs[cur^1] is scratch.
	bufs [2]*core.ByteGrid
	cur  int
	gen  uint64
}

// New allocates a landscape with both buffers zero-filled.
func New(cfg Config) (*Landscape, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, errgo.WithCausef(nil, ErrInvalidSize, "landscape size %dx%d must be positive", cfg.Width, cfg.Height)
	}
	if cfg.Width > MaxCells/cfg.Height {
		return nil, errgo.WithCausef(nil, ErrInvalidSize, "landscape size %dx%d exceeds %d cells", cfg.Width, cfg.Height, MaxCells)
	}
	front := core.NewByteGrid(cfg.Width, cfg.Height)
	l := &Landscape{
		size:     front.Size(),
		topology: cfg.Topology,
		family:   cfg.Family,
		rule:     cfg.Rule,
		workers:  cfg.Workers,
		bufs:     [2]*core.ByteGrid{front, core.NewByteGrid(cfg.Width, cfg.Height)},
	}
	return l, nil
}

// Size returns the grid dimensions.
func (l *Landscape) Size() core.Size { return l.size }

func (l *Landscape) current() *core.ByteGrid { return l.bufs[l.cur] }

func (l *Landscape) scratch() *core.ByteGrid { return l.bufs[l.cur^1] }

// get reads the current generation at (x, y) after topology resolution.
func (l *Landscape) get(x, y int) uint8 {
	g := l.current()
	x, y = l.topology.Resolve(g, x, y)
	return g.At(x, y)
}

// setNext writes the next generation at (x, y). Only rule evaluation uses it.
func (l *Landscape) setNext(x, y int, v uint8) {
	g := l.scratch()
	x, y = l.topology.Resolve(g, x, y)
	g.Set(x, y, v)
}

// setCurrent writes straight into the generation on display.
func (l *Landscape) setCurrent(x, y int, v uint8) {
	g := l.current()
	x, y = l.topology.Resolve(g, x, y)
	g.Set(x, y, alive(v))
}

func alive(v uint8) uint8 {
	if v != 0 {
		return 1
	}
	return 0
}

func (l *Landscape) countLiveNeighbors(x, y int) int {
	return int(l.get(x, y+1)) + // N
		int(l.get(x+1, y+1)) + // NE
		int(l.get(x+1, y)) + // E
		int(l.get(x+1, y-1)) + // SE
		int(l.get(x, y-1)) + // S
		int(l.get(x-1, y+1)) + // SW
		int(l.get(x-1, y)) + // W
		int(l.get(x-1, y-1)) // NW
}

// Get returns the value of the cell at (x, y) in the current generation.
func (l *Landscape) Get(x, y int) uint8 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.get(x, y)
}

// CountLiveNeighbors sums the eight cells surrounding (x, y).
func (l *Landscape) CountLiveNeighbors(x, y int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.countLiveNeighbors(x, y)
}

// Neighbourhood returns the 3x3 block centred on (x, y), row by row from y-1.
func (l *Landscape) Neighbourhood(x, y int) [3][3]uint8 {
	l.mu.Lock()
	defer l.mu.Unlock()
	var n [3][3]uint8
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			n[dy+1][dx+1] = l.get(x+dx, y+dy)
		}
	}
	return n
}

// Cells returns a copy of the current generation.
func (l *Landscape) Cells() []uint8 {
	return l.CopyCells(nil)
}

// CopyCells copies the current generation into dst, growing it if needed.
func (l *Landscape) CopyCells(dst []uint8) []uint8 {
	l.mu.Lock()
	defer l.mu.Unlock()
	src := l.current().Cells()
	if cap(dst) < len(src) {
		dst = make([]uint8, len(src))
	}
	dst = dst[:len(src)]
	copy(dst, src)
	return dst
}

// Generation counts steps since construction or the last reset.
func (l *Landscape) Generation() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen
}

// Reset clears both buffers. Under the elementary family the middle cell of
// the first row is seeded so the pattern has something to grow from.
func (l *Landscape) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.reset()
}

func (l *Landscape) reset() {
	l.bufs[0].Clear()
	l.bufs[1].Clear()
	if l.family == Elementary {
		l.current().Set(l.size.W/2, 0, 1)
	}
	l.gen = 0
}

// Randomize fills the current generation with a seeded 50% soup.
func (l *Landscape) Randomize(seed int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	core.NewRNG(seed).FillBinary(l.current().Cells(), 0.5)
	l.gen = 0
}
