package app

import "landscapes/internal/session"

// pointerButtons forwards mouse buttons to a session. A release is only
// forwarded for a button whose press was, so presses that start off the grid
// (on the side panel, say) never stamp the brush.
type pointerButtons struct {
	held map[session.Button]bool
}

// press forwards a press at pixel (x, y) when it lands on the grid.
func (p *pointerButtons) press(s *session.Session, b session.Button, x, y int, onGrid bool) {
	if !onGrid {
		return
	}
	if p.held == nil {
		p.held = make(map[session.Button]bool)
	}
	p.held[b] = true
	s.PointerButton(b, true)
	s.PointerMove(x, y)
}

// release forwards a release for a previously forwarded press.
func (p *pointerButtons) release(s *session.Session, b session.Button) {
	if !p.held[b] {
		return
	}
	delete(p.held, b)
	s.PointerButton(b, false)
}
