package session

import (
	"landscapes/internal/core"
)

// Parameters exposes the session and landscape state for the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	size := s.ls.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Landscape",
			Params: []core.Parameter{
				core.IntParam("w", "Width", int64(size.W)),
				core.IntParam("h", "Height", int64(size.H)),
				core.TextParam("topology", "Topology", s.ls.Topology().String()),
				core.IntParam("generation", "Generation", int64(s.ls.Generation())),
			},
		},
		{
			Name: "Rule",
			Params: []core.Parameter{
				core.TextParam("family", "Family", s.ls.Family().String()),
				core.TextParam("rule", "Rule", s.ls.RuleString()),
			},
		},
		{
			Name: "Session",
			Params: []core.Parameter{
				core.BoolParam("paused", "Paused", s.paused),
				core.TextParam("brush", "Brush", s.brush.String()),
				core.IntParam("cursor", "Cursor", int64(s.cursor)),
			},
		},
	}}
}

// ParameterControls lists the HUD buttons.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{Key: "rule", Label: "Rule", Step: 1}}
}

// AdjustIntParameter nudges a HUD-controlled value.
func (s *Session) AdjustIntParameter(key string, delta int) bool {
	if key != "rule" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adjustRule(delta)
	return true
}
