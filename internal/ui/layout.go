// Package ui draws the side panel and debug overlay of the window frontend.
// Layout and hit testing live here untagged; drawing needs the ebiten tag.
package ui

import (
	"image"

	"landscapes/internal/core"
)

const (
	panelPadding   = 12
	lineHeight     = 36
	textLineHeight = 16
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
)

// DefaultPanelWidth is the width of the side panel in pixels.
const DefaultPanelWidth = 220

type controlLayout struct {
	control core.ParameterControl
	top     int
	minus   image.Rectangle
	plus    image.Rectangle
}

// layoutControls places one row of -/+ buttons per control, starting at top,
// right-aligned in a panel of the given width.
func layoutControls(controls []core.ParameterControl, width, top int) []controlLayout {
	if width <= 0 {
		return nil
	}
	out := make([]controlLayout, len(controls))
	for i, ctrl := range controls {
		rowTop := top + i*lineHeight
		buttonY := rowTop + (lineHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		out[i] = controlLayout{control: ctrl, top: rowTop, minus: minus, plus: plus}
	}
	return out
}

// hitControl reports which control button, if any, contains the panel-local
// point (px, py) and the signed delta it applies.
func hitControl(layouts []controlLayout, px, py int) (string, int, bool) {
	p := image.Pt(px, py)
	for _, l := range layouts {
		step := l.control.Step
		if step <= 0 {
			step = 1
		}
		if p.In(l.minus) {
			return l.control.Key, -step, true
		}
		if p.In(l.plus) {
			return l.control.Key, step, true
		}
	}
	return "", 0, false
}

// panelLines flattens a snapshot into "Label: value" lines, one header line
// per group.
func panelLines(s core.ParameterSnapshot) []string {
	var lines []string
	for _, g := range s.Groups {
		lines = append(lines, g.Name)
		for _, p := range g.Params {
			lines = append(lines, "  "+p.Label+": "+p.Value)
		}
	}
	return lines
}

// controlsTop is where the button rows start below the text lines.
func controlsTop(lines int) int {
	return panelPadding + headerBaseline + lines*textLineHeight + panelPadding
}
