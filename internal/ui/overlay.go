//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"landscapes/internal/core"
	"landscapes/internal/render"
)

var outlineColor = color.RGBA{R: 255, G: 80, B: 80, A: 255}

// Overlay outlines the 3x3 neighbourhood of the cursor while debugging.
type Overlay struct {
	cellW, cellH int
	pixel        *ebiten.Image
}

// NewOverlay constructs an overlay for the given cell size in pixels.
func NewOverlay(cellW, cellH int) *Overlay {
	o := &Overlay{cellW: cellW, cellH: cellH}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Draw renders the outline when enabled and a cursor is set.
func (o *Overlay) Draw(screen *ebiten.Image, size core.Size, cursor int, enabled bool) {
	if !enabled {
		return
	}
	r, ok := render.NeighbourhoodRect(size, cursor, o.cellW, o.cellH)
	if !ok {
		return
	}
	o.fill(screen, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1))
	o.fill(screen, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y))
	o.fill(screen, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y))
	o.fill(screen, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y))
}

func (o *Overlay) fill(screen *ebiten.Image, r image.Rectangle) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(outlineColor)
	screen.DrawImage(o.pixel, op)
}
