//go:build ebiten

// Package app runs a session in an ebiten window.
package app

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/juju/loggo"
	"gopkg.in/errgo.v1"

	"landscapes/internal/config"
	"landscapes/internal/render"
	"landscapes/internal/session"
	"landscapes/internal/ui"
)

var logger = loggo.GetLogger("landscapes.app")

// keyCommands binds the keys that have no printable character.
var keyCommands = map[ebiten.Key]session.Command{
	ebiten.KeyArrowLeft:  session.CmdCursorLeft,
	ebiten.KeyArrowRight: session.CmdCursorRight,
	ebiten.KeyArrowUp:    session.CmdCursorUp,
	ebiten.KeyArrowDown:  session.CmdCursorDown,
	ebiten.KeyEscape:     session.CmdQuit,
}

var mouseButtons = map[ebiten.MouseButton]session.Button{
	ebiten.MouseButtonLeft:  session.ButtonPrimary,
	ebiten.MouseButtonRight: session.ButtonSecondary,
}

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	s       *session.Session
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	cellW, cellH int
	gridW, gridH int
	lastX, lastY int
	title        string
	chars        []rune
	buttons      pointerButtons
}

// New constructs a Game for the provided session.
func New(s *session.Session) *Game {
	size := s.Landscape().Size()
	cellW, cellH := s.CellSize()
	return &Game{
		s:       s,
		painter: render.NewGridPainter(size.W, size.H, render.DefaultPalette()),
		overlay: ui.NewOverlay(cellW, cellH),
		hud:     ui.NewHUD(s, "landscapes", ui.DefaultPanelWidth),
		cellW:   cellW,
		cellH:   cellH,
		gridW:   size.W * cellW,
		gridH:   size.H * cellH,
		lastX:   -1,
		lastY:   -1,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if g.s.Done() {
		return ebiten.Termination
	}
	onPanel := g.hud.Update(g.gridW)

	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		if cmd, ok := session.CommandForRune(r); ok {
			g.s.Dispatch(cmd)
		}
	}
	for key, cmd := range keyCommands {
		if inpututil.IsKeyJustPressed(key) {
			g.s.Dispatch(cmd)
		}
	}
	g.updatePointer(onPanel)

	g.s.Advance()
	if status := g.s.Status(); status != g.title {
		g.title = status
		ebiten.SetWindowTitle("landscapes - " + status)
	}
	if g.s.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) updatePointer(onPanel bool) {
	mx, my := ebiten.CursorPosition()
	inGrid := !onPanel && mx >= 0 && my >= 0 && mx < g.gridW && my < g.gridH
	if inGrid && (mx != g.lastX || my != g.lastY) {
		g.lastX, g.lastY = mx, my
		g.s.PointerMove(mx, my)
	}
	for eb, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(eb) {
			g.buttons.press(g.s, b, mx, my, inGrid)
		}
		if inpututil.IsMouseButtonJustReleased(eb) {
			g.buttons.release(g.s, b)
		}
	}
}

// Draw renders the current generation, the debug overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	frame := g.s.Snapshot()
	g.painter.Blit(screen, frame.Cells, frame.Cursor, g.cellW, g.cellH)
	g.overlay.Draw(screen, frame.Size, frame.Cursor, frame.Debug)
	g.hud.Draw(screen, g.gridW, g.gridH)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.gridW + g.hud.Width(), g.gridH
}

// Run opens the window and blocks until the user quits.
func Run(s *session.Session) error {
	g := New(s)
	w, h := g.Layout(0, 0)
	ebiten.SetWindowTitle("landscapes")
	ebiten.SetWindowSize(w, h)
	logger.Infof("window %dx%d", w, h)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return errgo.Notef(err, "window frontend")
	}
	return nil
}

func init() {
	session.Register(config.UIGUI, Run)
}
