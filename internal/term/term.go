// Package term runs a session in a terminal with tcell. Each cell is drawn
// two columns wide so the grid keeps a roughly square aspect; the row below
// the grid is a status line.
package term

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/juju/loggo"
	"gopkg.in/errgo.v1"

	"landscapes/internal/config"
	"landscapes/internal/render"
	"landscapes/internal/session"
)

var logger = loggo.GetLogger("landscapes.term")

// CellColumns is the number of terminal columns per cell.
const CellColumns = 2

const frameInterval = 30 * time.Millisecond

var (
	styleDead   = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleAlive  = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	styleCursor = tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

var keyCommands = map[tcell.Key]session.Command{
	tcell.KeyLeft:   session.CmdCursorLeft,
	tcell.KeyRight:  session.CmdCursorRight,
	tcell.KeyUp:     session.CmdCursorUp,
	tcell.KeyDown:   session.CmdCursorDown,
	tcell.KeyEscape: session.CmdQuit,
	tcell.KeyCtrlC:  session.CmdQuit,
}

var mouseButtons = []struct {
	mask   tcell.ButtonMask
	button session.Button
}{
	{tcell.ButtonPrimary, session.ButtonPrimary},
	{tcell.ButtonSecondary, session.ButtonSecondary},
}

// Terminal draws a session on a tcell screen and feeds it input events.
type Terminal struct {
	screen  tcell.Screen
	s       *session.Session
	status  *statusWriter
	buttons tcell.ButtonMask
}

// New binds s to an initialised screen.
func New(screen tcell.Screen, s *session.Session) *Terminal {
	s.SetCellSize(CellColumns, 1)
	return &Terminal{screen: screen, s: s, status: &statusWriter{}}
}

// HandleEvent applies one input event to the session.
func (t *Terminal) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			if cmd, ok := session.CommandForRune(ev.Rune()); ok {
				t.s.Dispatch(cmd)
			}
			return
		}
		if cmd, ok := keyCommands[ev.Key()]; ok {
			t.s.Dispatch(cmd)
		}
	case *tcell.EventMouse:
		t.handleMouse(ev)
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

func (t *Terminal) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	mask := ev.Buttons()
	for _, b := range mouseButtons {
		was, is := t.buttons&b.mask != 0, mask&b.mask != 0
		switch {
		case is && !was:
			if !t.onGrid(x, y) {
				mask &^= b.mask
				continue
			}
			t.s.PointerButton(b.button, true)
		case was && !is:
			t.s.PointerMove(x, y)
			t.s.PointerButton(b.button, false)
		}
	}
	t.buttons = mask
	t.s.PointerMove(x, y)
}

func (t *Terminal) onGrid(x, y int) bool {
	size := t.s.Landscape().Size()
	return x >= 0 && y >= 0 && size.Contains(x/CellColumns, y)
}

// Draw renders the current generation and the status line.
func (t *Terminal) Draw() {
	frame := t.s.Snapshot()
	sw, sh := t.screen.Size()
	t.screen.Clear()

	size := frame.Size
	for y := 0; y < size.H && y < sh; y++ {
		for x := 0; x < size.W && x*CellColumns < sw; x++ {
			i := y*size.W + x
			style := styleDead
			switch {
			case i == frame.Cursor:
				style = styleCursor
			case frame.Cells[i] != 0:
				style = styleAlive
			}
			for c := 0; c < CellColumns; c++ {
				t.screen.SetContent(x*CellColumns+c, y, ' ', nil, style)
			}
		}
	}
	if frame.Debug {
		t.drawNeighbourhood(frame, sw, sh)
	}

	statusY := size.H
	if statusY >= sh {
		statusY = sh - 1
	}
	line := t.s.Status()
	if msg := t.status.Last(); msg != "" {
		line += " | " + msg
	}
	t.drawText(0, statusY, sw, line)
	t.screen.Show()
}

// drawNeighbourhood brackets the 3x3 block around the cursor.
func (t *Terminal) drawNeighbourhood(frame session.Frame, sw, sh int) {
	r, ok := render.NeighbourhoodRect(frame.Size, frame.Cursor, CellColumns, 1)
	if !ok {
		return
	}
	for y := r.Min.Y; y < r.Max.Y && y < sh; y++ {
		for x := r.Min.X; x < r.Max.X && x < sw; x += CellColumns {
			_, _, style, _ := t.screen.GetContent(x, y)
			t.screen.SetContent(x, y, '[', nil, style.Foreground(tcell.ColorRed))
			t.screen.SetContent(x+1, y, ']', nil, style.Foreground(tcell.ColorRed))
		}
	}
}

func (t *Terminal) drawText(x, y, maxX int, s string) {
	for _, r := range s {
		if x >= maxX {
			return
		}
		t.screen.SetContent(x, y, r, nil, styleStatus)
		x++
	}
}

// Loop processes events and steps the session until it is done.
func (t *Terminal) Loop() error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go t.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	t.Draw()
	for !t.s.Done() {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			t.HandleEvent(ev)
		case <-ticker.C:
			t.s.Advance()
		}
		t.Draw()
	}
	return nil
}

// Start runs the loop on an initialised screen with log output routed to
// the status line.
func Start(screen tcell.Screen, s *session.Session) error {
	t := New(screen, s)
	screen.EnableMouse()
	old, err := loggo.ReplaceDefaultWriter(t.status)
	if err != nil {
		return errgo.Notef(err, "cannot route logs to the status line")
	}
	defer loggo.ReplaceDefaultWriter(old)
	logger.Debugf("terminal %v", s.Landscape().Size())
	return t.Loop()
}

// Run opens the controlling terminal and blocks until the user quits.
func Run(s *session.Session) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errgo.Notef(err, "cannot open terminal")
	}
	if err := screen.Init(); err != nil {
		return errgo.Notef(err, "cannot initialise terminal")
	}
	defer screen.Fini()
	return Start(screen, s)
}

func init() {
	session.Register(config.UITerm, Run)
}
