package session

import "landscapes/internal/landscape"

// Command is a discrete user action, independent of the input device.
type Command int

const (
	CmdNone Command = iota
	CmdReset
	CmdToggleCell
	CmdToggleBrush
	CmdCursorLeft
	CmdCursorRight
	CmdCursorUp
	CmdCursorDown
	CmdTogglePause
	CmdStep
	CmdDebug
	CmdConway
	CmdLifeLike
	CmdElementary
	CmdRuleUp
	CmdRuleDown
	CmdRandomize
	CmdQuit
)

var commandNames = map[Command]string{
	CmdNone:        "none",
	CmdReset:       "reset",
	CmdToggleCell:  "toggle-cell",
	CmdToggleBrush: "toggle-brush",
	CmdCursorLeft:  "cursor-left",
	CmdCursorRight: "cursor-right",
	CmdCursorUp:    "cursor-up",
	CmdCursorDown:  "cursor-down",
	CmdTogglePause: "toggle-pause",
	CmdStep:        "step",
	CmdDebug:       "debug",
	CmdConway:      "conway",
	CmdLifeLike:    "life-like",
	CmdElementary:  "elementary",
	CmdRuleUp:      "rule-up",
	CmdRuleDown:    "rule-down",
	CmdRandomize:   "randomize",
	CmdQuit:        "quit",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// keyMap binds printable keys. Frontends map arrows and Escape themselves.
var keyMap = map[rune]Command{
	'r': CmdReset,
	'p': CmdToggleCell,
	'g': CmdToggleBrush,
	'h': CmdCursorLeft,
	'l': CmdCursorRight,
	'k': CmdCursorUp,
	'j': CmdCursorDown,
	' ': CmdTogglePause,
	'n': CmdStep,
	'd': CmdDebug,
	'c': CmdConway,
	'2': CmdLifeLike,
	'1': CmdElementary,
	'=': CmdRuleUp,
	'+': CmdRuleUp,
	'-': CmdRuleDown,
	'x': CmdRandomize,
	'q': CmdQuit,
}

// CommandForRune looks up the command bound to a printable key.
func CommandForRune(r rune) (Command, bool) {
	c, ok := keyMap[r]
	return c, ok
}

// Dispatch applies cmd.
func (s *Session) Dispatch(cmd Command) {
	s.mu.Lock()
	defer s.mu.Unlock()
	logger.Debugf("command %s", cmd)
	switch cmd {
	case CmdReset:
		s.ls.Reset()
		s.paused = true
	case CmdToggleCell:
		if x, y, ok := s.cursorXY(); ok {
			s.ls.Toggle(x, y)
		}
	case CmdToggleBrush:
		s.brush = s.brush.Next()
		logger.Infof("brush %s", s.brush)
	case CmdCursorLeft:
		s.moveCursor(-1)
	case CmdCursorRight:
		s.moveCursor(1)
	case CmdCursorUp:
		s.moveCursor(-s.ls.Size().W)
	case CmdCursorDown:
		s.moveCursor(s.ls.Size().W)
	case CmdTogglePause:
		s.paused = !s.paused
		if !s.paused {
			s.clock.Restart()
		}
	case CmdStep:
		if s.paused {
			s.ls.Step()
		}
	case CmdDebug:
		s.debug = !s.debug
		s.logNeighbourhood()
	case CmdConway:
		s.ls.SetRule(landscape.Conway)
		s.reportRule()
	case CmdLifeLike:
		s.ls.SetFamily(landscape.LifeLike)
		s.reportRule()
	case CmdElementary:
		s.paused = true
		s.ls.Apply(landscape.Rule110Preset())
		s.reportRule()
	case CmdRuleUp:
		s.adjustRule(1)
	case CmdRuleDown:
		s.adjustRule(-1)
	case CmdRandomize:
		s.ls.Randomize(s.seed)
		s.seed++
	case CmdQuit:
		s.quit = true
	}
}

// moveCursor shifts the cursor by delta cells in row-major order, wrapping
// over the whole grid. The first move from no cursor lands on cell 0.
func (s *Session) moveCursor(delta int) {
	if s.cursor < 0 {
		s.cursor = 0
		return
	}
	area := s.ls.Size().Area()
	s.cursor = ((s.cursor+delta)%area + area) % area
}

func (s *Session) adjustRule(delta int) {
	s.ls.AdjustRule(delta)
	s.reportRule()
}
