package landscape

import (
	"strings"

	"gopkg.in/errgo.v1"

	"landscapes/internal/core"
)

// Topology selects how coordinates outside the grid resolve to cells inside it.
type Topology uint8

const (
	// Torus wraps both axes, giving a borderless periodic universe.
	Torus Topology = iota
	// Clamped pins coordinates to the nearest edge cell.
	Clamped
)

// ErrUnknownTopology is the cause of ParseTopology failures.
var ErrUnknownTopology = errgo.New("unknown topology")

func (t Topology) String() string {
	switch t {
	case Clamped:
		return "clamped"
	default:
		return "torus"
	}
}

// ParseTopology converts a topology name to its value.
func ParseTopology(s string) (Topology, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "torus", "wrap":
		return Torus, nil
	case "clamped", "clamp", "wall":
		return Clamped, nil
	}
	return Torus, errgo.WithCausef(nil, ErrUnknownTopology, "unknown topology %q", s)
}

// Resolve maps (x, y) onto the grid g. The result is always in range.
func (t Topology) Resolve(g *core.ByteGrid, x, y int) (int, int) {
	if t == Clamped {
		return g.Clamp(x, y)
	}
	return g.Wrap(x, y)
}
