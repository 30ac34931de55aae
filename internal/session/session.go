// Package session holds the interactive state that sits between a frontend
// and a landscape: cursor, pause flag, brush, held pointer button, and the
// step scheduler. Frontends translate their native input events into
// Commands and pointer calls and draw from Snapshot.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/juju/loggo"

	"landscapes/internal/core"
	"landscapes/internal/landscape"
)

var logger = loggo.GetLogger("landscapes.session")

// Button identifies a pointer button.
type Button uint8

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonSecondary
)

// Options configures a Session.
type Options struct {
	// CellW and CellH convert pointer positions to grid coordinates.
	CellW, CellH int
	// Interval is the real-time spacing between generations while running.
	Interval time.Duration
	// Seed is the first seed used by CmdRandomize.
	Seed int64
}

// Session is safe for concurrent use. It locks itself before the landscape,
// never the other way round.
type Session struct {
	mu sync.Mutex

	ls    *landscape.Landscape
	opts  Options
	clock *core.FixedStep

	cursor int // -1 when no cell is highlighted
	paused bool
	brush  landscape.Brush
	held   Button
	debug  bool
	quit   bool
	seed   int64

	frame []uint8
}

// New wraps ls in a paused session with no cursor.
func New(ls *landscape.Landscape, opts Options) *Session {
	if opts.CellW <= 0 {
		opts.CellW = 1
	}
	if opts.CellH <= 0 {
		opts.CellH = 1
	}
	return &Session{
		ls:     ls,
		opts:   opts,
		clock:  core.NewFixedStep(opts.Interval),
		cursor: -1,
		paused: true,
		seed:   opts.Seed,
	}
}

// CellSize returns the pixel size of one cell used to map pointer positions.
func (s *Session) CellSize() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts.CellW, s.opts.CellH
}

// SetCellSize changes the pointer mapping. Frontends with their own notion
// of a cell, like a terminal, call it before dispatching pointer events.
func (s *Session) SetCellSize(w, h int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w > 0 {
		s.opts.CellW = w
	}
	if h > 0 {
		s.opts.CellH = h
	}
}

// Landscape returns the landscape driven by the session.
func (s *Session) Landscape() *landscape.Landscape { return s.ls }

// Clock exposes the step scheduler, mainly so tests can substitute a clock.
func (s *Session) Clock() *core.FixedStep { return s.clock }

// Advance is called by the frontend on every frame. It runs one step when the
// session is not paused and the step interval has elapsed, and reports
// whether it did.
func (s *Session) Advance() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.paused || !s.clock.ShouldStep() {
		return false
	}
	s.ls.Step()
	return true
}

// Cursor returns the highlighted cell index, or -1.
func (s *Session) Cursor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// SetCursor highlights the cell at (x, y). Out-of-range coordinates clear it.
func (s *Session) SetCursor(x, y int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor = s.index(x, y)
}

func (s *Session) index(x, y int) int {
	size := s.ls.Size()
	if !size.Contains(x, y) {
		return -1
	}
	return y*size.W + x
}

func (s *Session) cursorXY() (int, int, bool) {
	if s.cursor < 0 {
		return 0, 0, false
	}
	w := s.ls.Size().W
	return s.cursor % w, s.cursor / w, true
}

// Paused reports whether scheduled steps are suspended.
func (s *Session) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// Brush returns the brush applied on pointer release.
func (s *Session) Brush() landscape.Brush {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.brush
}

// Debug reports whether the neighbourhood overlay is on.
func (s *Session) Debug() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.debug
}

// Done reports whether the user asked to quit.
func (s *Session) Done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quit
}

// Frame is a consistent view of what to draw.
type Frame struct {
	Size   core.Size
	Cells  []uint8
	Cursor int
	Debug  bool
}

// Snapshot copies the current generation. Frame.Cells is reused by the next
// call to Snapshot.
func (s *Session) Snapshot() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frame = s.ls.CopyCells(s.frame)
	return Frame{
		Size:   s.ls.Size(),
		Cells:  s.frame,
		Cursor: s.cursor,
		Debug:  s.debug,
	}
}

// PointerMove tracks the pointer at pixel position (px, py). While a button
// is held the cell underneath is painted alive (primary) or dead (secondary).
func (s *Session) PointerMove(px, py int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if px < 0 || py < 0 {
		return
	}
	x, y := px/s.opts.CellW, py/s.opts.CellH
	idx := s.index(x, y)
	if idx < 0 {
		return
	}
	s.cursor = idx
	switch s.held {
	case ButtonPrimary:
		s.ls.SetCurrent(x, y, 1)
	case ButtonSecondary:
		s.ls.SetCurrent(x, y, 0)
	}
}

// PointerButton records a press or release. Releasing the primary button
// stamps the active brush at the cursor. Releasing any other button stamps
// nothing, so a secondary drag only erases.
func (s *Session) PointerButton(b Button, pressed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pressed {
		s.held = b
		return
	}
	s.held = ButtonNone
	if b != ButtonPrimary {
		return
	}
	if x, y, ok := s.cursorXY(); ok {
		s.ls.Paint(s.brush, x, y)
	}
}

// Status summarises the session for a status line or window title.
func (s *Session) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := "running"
	if s.paused {
		state = "paused"
	}
	return fmt.Sprintf("%s %s %s | gen %d | %s | brush %s",
		s.ls.RuleString(), s.ls.Family(), s.ls.Topology(), s.ls.Generation(), state, s.brush)
}

// reportRule logs the rule in the notation of the active family.
func (s *Session) reportRule() {
	rule := s.ls.Rule()
	if s.ls.Family() == landscape.Elementary {
		logger.Infof("wolfram number: %s", landscape.FormatElementary(rule))
		return
	}
	logger.Infof("rule %s", landscape.FormatLifeLike(rule))
}

func (s *Session) logNeighbourhood() {
	x, y, ok := s.cursorXY()
	if !ok {
		return
	}
	n := s.ls.Neighbourhood(x, y)
	logger.Infof("neighbourhood of (%d, %d):\n%d %d %d\n%d %d %d\n%d %d %d", x, y,
		n[0][0], n[0][1], n[0][2],
		n[1][0], n[1][1], n[1][2],
		n[2][0], n[2][1], n[2][2])
}
