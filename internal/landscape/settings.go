package landscape

// Rule returns the raw rule value.
func (l *Landscape) Rule() uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rule
}

// SetRule replaces the rule. Bits beyond the active family's width are kept
// but never consulted.
func (l *Landscape) SetRule(rule uint32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rule = rule
}

// AdjustRule adds delta to the raw rule, wrapping as unsigned arithmetic, and
// returns the new value.
func (l *Landscape) AdjustRule(delta int) uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rule += uint32(delta)
	return l.rule
}

// RuleString renders the rule the way the active family interprets it.
func (l *Landscape) RuleString() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.family.FormatRule(l.rule)
}

// Family returns the active rule family.
func (l *Landscape) Family() Family {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.family
}

// SetFamily switches the rule evaluator without touching the rule or cells.
func (l *Landscape) SetFamily(f Family) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.family = f
}

// Topology returns the active boundary behaviour.
func (l *Landscape) Topology() Topology {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.topology
}

// SetTopology switches the boundary behaviour.
func (l *Landscape) SetTopology(t Topology) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.topology = t
}

// Apply switches family, rule, and topology together so that no step runs
// under a half-applied preset.
func (l *Landscape) Apply(p Preset) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.family = p.Family
	l.rule = p.Rule
	l.topology = p.Topology
}
