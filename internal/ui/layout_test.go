package ui

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landscapes/internal/core"
)

func TestLayoutControls(t *testing.T) {
	layouts := layoutControls([]core.ParameterControl{
		{Key: "rule", Label: "Rule", Step: 1},
		{Key: "other", Label: "Other", Step: 5},
	}, 200, 100)
	require.Len(t, layouts, 2)
	assert.Equal(t, image.Rect(164, 106, 188, 130), layouts[0].plus)
	assert.Equal(t, image.Rect(134, 106, 158, 130), layouts[0].minus)
	assert.Equal(t, 136, layouts[1].top)

	assert.Nil(t, layoutControls([]core.ParameterControl{{Key: "rule"}}, 0, 0))
}

func TestHitControl(t *testing.T) {
	layouts := layoutControls([]core.ParameterControl{
		{Key: "rule", Label: "Rule", Step: 1},
		{Key: "other", Label: "Other", Step: 5},
	}, 200, 100)

	key, delta, ok := hitControl(layouts, 170, 110)
	assert.True(t, ok)
	assert.Equal(t, "rule", key)
	assert.Equal(t, 1, delta)

	key, delta, ok = hitControl(layouts, 140, 110)
	assert.True(t, ok)
	assert.Equal(t, -1, delta)

	key, delta, ok = hitControl(layouts, 170, 150)
	assert.True(t, ok)
	assert.Equal(t, "other", key)
	assert.Equal(t, 5, delta)

	_, _, ok = hitControl(layouts, 10, 110)
	assert.False(t, ok)
}

func TestPanelLines(t *testing.T) {
	lines := panelLines(core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Rule", Params: []core.Parameter{
			core.TextParam("family", "Family", "life-like"),
			core.TextParam("rule", "Rule", "B3/S23"),
		}},
	}})
	assert.Equal(t, []string{"Rule", "  Family: life-like", "  Rule: B3/S23"}, lines)
	assert.Equal(t, panelPadding+headerBaseline+3*textLineHeight+panelPadding, controlsTop(len(lines)))
}
