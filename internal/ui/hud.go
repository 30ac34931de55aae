//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"landscapes/internal/core"
)

// Source is what the HUD displays and adjusts.
type Source interface {
	core.ParameterProvider
	core.ParameterControlsProvider
	core.IntParameterAdjuster
}

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	headerColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	buttonBG    = color.RGBA{R: 54, G: 56, B: 64, A: 255}
)

// HUD renders the parameter panel to the right of the landscape view.
type HUD struct {
	src   Source
	width int
	title string

	panel    *ebiten.Image
	pixel    *ebiten.Image
	lines    []string
	controls []controlLayout

	panelOffsetX int
}

// NewHUD constructs a HUD for src with the given panel width.
func NewHUD(src Source, title string, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{src: src, width: width, title: title}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached snapshot and handles clicks on the panel. It
// reports whether the click landed on the panel.
func (h *HUD) Update(panelOffsetX int) bool {
	if h == nil || h.width <= 0 {
		return false
	}
	h.panelOffsetX = panelOffsetX
	h.lines = panelLines(h.src.Parameters())
	h.controls = layoutControls(h.src.ParameterControls(), h.width, controlsTop(len(h.lines)))

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return false
	}
	if key, delta, ok := hitControl(h.controls, mx-h.panelOffsetX, my); ok {
		h.src.AdjustIntParameter(key, delta)
	}
	return true
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, headerColor)
	for _, line := range h.lines {
		y += textLineHeight
		text.Draw(h.panel, line, face, panelPadding, y, textColor)
	}
	for _, c := range h.controls {
		text.Draw(h.panel, c.control.Label, face, panelPadding, c.top+labelBaseline, textColor)
		h.drawButton(c.minus, "-")
		h.drawButton(c.plus, "+")
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(buttonBG)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, textColor)
}
