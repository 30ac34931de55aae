package term

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/juju/loggo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landscapes/internal/landscape"
	"landscapes/internal/session"
)

func newTerminal(t *testing.T, w, h int) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(20, 10)

	cfg := landscape.DefaultConfig()
	cfg.Width, cfg.Height = w, h
	ls, err := landscape.New(cfg)
	require.NoError(t, err)
	s := session.New(ls, session.Options{CellW: 10, CellH: 10, Interval: time.Hour})
	return New(screen, s), screen
}

func background(screen tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func rowText(screen tcell.Screen, y, n int) string {
	var rs []rune
	for x := 0; x < n; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		rs = append(rs, r)
	}
	return string(rs)
}

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestNewUsesTerminalCells(t *testing.T) {
	term, _ := newTerminal(t, 4, 3)
	w, h := term.s.CellSize()
	assert.Equal(t, CellColumns, w)
	assert.Equal(t, 1, h)
}

func TestDrawCellsAndStatus(t *testing.T) {
	term, screen := newTerminal(t, 4, 3)
	term.s.Landscape().PaintSingle(1, 0)
	term.s.SetCursor(2, 1)
	term.Draw()

	assert.Equal(t, tcell.ColorBlack, background(screen, 0, 0))
	assert.Equal(t, tcell.ColorWhite, background(screen, 2, 0))
	assert.Equal(t, tcell.ColorWhite, background(screen, 3, 0))
	assert.Equal(t, tcell.ColorYellow, background(screen, 4, 1))
	assert.Equal(t, tcell.ColorYellow, background(screen, 5, 1))
	assert.Equal(t, "B3/S23 life-lik", rowText(screen, 3, 15))
}

func TestDrawDebugNeighbourhood(t *testing.T) {
	term, screen := newTerminal(t, 4, 3)
	term.s.SetCursor(1, 1)
	term.s.Dispatch(session.CmdDebug)
	term.Draw()

	assert.Equal(t, "[][][]", rowText(screen, 0, 6))
	assert.Equal(t, "[][][]", rowText(screen, 2, 6))
	assert.Equal(t, ' ', []rune(rowText(screen, 0, 7))[6])
}

func TestKeyEvents(t *testing.T) {
	term, _ := newTerminal(t, 4, 3)
	s := term.s

	term.HandleEvent(key(tcell.KeyRune, 'l'))
	assert.Equal(t, 0, s.Cursor())
	term.HandleEvent(key(tcell.KeyRight, 0))
	assert.Equal(t, 1, s.Cursor())
	term.HandleEvent(key(tcell.KeyDown, 0))
	assert.Equal(t, 5, s.Cursor())

	term.HandleEvent(key(tcell.KeyRune, 'p'))
	assert.Equal(t, uint8(1), s.Landscape().Get(1, 1))

	term.HandleEvent(key(tcell.KeyRune, ' '))
	assert.False(t, s.Paused())
	term.HandleEvent(key(tcell.KeyRune, 'Z'))
	term.HandleEvent(key(tcell.KeyEscape, 0))
	assert.True(t, s.Done())
}

func TestMouseEvents(t *testing.T) {
	term, _ := newTerminal(t, 4, 3)
	ls := term.s.Landscape()

	term.HandleEvent(tcell.NewEventMouse(4, 1, tcell.ButtonPrimary, tcell.ModNone))
	assert.Equal(t, uint8(1), ls.Get(2, 1))
	term.HandleEvent(tcell.NewEventMouse(6, 1, tcell.ButtonPrimary, tcell.ModNone))
	assert.Equal(t, uint8(1), ls.Get(3, 1))
	term.HandleEvent(tcell.NewEventMouse(6, 1, tcell.ButtonNone, tcell.ModNone))
	assert.Equal(t, 1*4+3, term.s.Cursor())

	term.HandleEvent(tcell.NewEventMouse(5, 1, tcell.ButtonSecondary, tcell.ModNone))
	assert.Equal(t, uint8(0), ls.Get(2, 1))
	term.HandleEvent(tcell.NewEventMouse(5, 1, tcell.ButtonNone, tcell.ModNone))
	assert.Equal(t, uint8(0), ls.Get(2, 1))

	term.HandleEvent(tcell.NewEventMouse(1, 7, tcell.ButtonPrimary, tcell.ModNone))
	term.HandleEvent(tcell.NewEventMouse(1, 7, tcell.ButtonNone, tcell.ModNone))
	assert.Equal(t, []uint8{
		0, 0, 0, 0,
		0, 0, 0, 1,
		0, 0, 0, 0,
	}, ls.Cells(), "clicks below the grid are ignored")
}

func TestLoopStopsOnQuit(t *testing.T) {
	term, screen := newTerminal(t, 4, 3)
	screen.InjectKey(tcell.KeyRune, 'n', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	require.NoError(t, term.Loop())
	assert.True(t, term.s.Done())
	assert.Equal(t, uint64(1), term.s.Landscape().Generation())
}

func TestStatusWriter(t *testing.T) {
	w := &statusWriter{}
	assert.Equal(t, "", w.Last())
	w.Write(loggo.Entry{Level: loggo.INFO, Message: "rule B3/S23"})
	assert.Equal(t, "rule B3/S23", w.Last())
	w.Write(loggo.Entry{Level: loggo.INFO, Message: "a\nb"})
	assert.Equal(t, "a / b", w.Last())
	w.Write(loggo.Entry{Level: loggo.ERROR, Message: "boom"})
	assert.Equal(t, "ERROR boom", w.Last())
}
