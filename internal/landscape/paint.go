package landscape

// Brush selects the stamp applied by Paint.
type Brush uint8

const (
	// BrushSingle sets one cell alive.
	BrushSingle Brush = iota
	// BrushGlider stamps the five-cell glider that travels towards +x, +y.
	BrushGlider
)

func (b Brush) String() string {
	if b == BrushGlider {
		return "glider"
	}
	return "single"
}

// Next cycles to the other brush.
func (b Brush) Next() Brush {
	if b == BrushGlider {
		return BrushSingle
	}
	return BrushGlider
}

// gliderOffsets are relative to the anchor cell.
var gliderOffsets = [...][2]int{{-1, 1}, {0, -1}, {0, 1}, {1, 0}, {1, 1}}

// SetCurrent writes v (normalized to 0 or 1) into the generation on display.
// The change is visible immediately and is the input to the next step.
func (l *Landscape) SetCurrent(x, y int, v uint8) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.setCurrent(x, y, v)
}

// Toggle flips the cell at (x, y) in the generation on display.
func (l *Landscape) Toggle(x, y int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.setCurrent(x, y, l.get(x, y)^1)
}

// PaintSingle sets the cell at (x, y) alive.
func (l *Landscape) PaintSingle(x, y int) {
	l.Paint(BrushSingle, x, y)
}

// PaintGlider stamps a glider anchored at (x, y).
func (l *Landscape) PaintGlider(x, y int) {
	l.Paint(BrushGlider, x, y)
}

// Paint applies brush b at (x, y). The anchor is resolved through the active
// topology first and each stamped cell is resolved again, so stamps near an
// edge wrap on a torus and pile up against the wall when clamped.
func (l *Landscape) Paint(b Brush, x, y int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	x, y = l.topology.Resolve(l.current(), x, y)
	if b != BrushGlider {
		l.setCurrent(x, y, 1)
		return
	}
	for _, d := range gliderOffsets {
		l.setCurrent(x+d[0], y+d[1], 1)
	}
}
