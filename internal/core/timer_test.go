package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFixedStepFiresOncePerInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedStep(150 * time.Millisecond)
	fs.SetClock(clock.now)

	assert.False(t, fs.ShouldStep(), "first poll only records the start time")

	clock.advance(100 * time.Millisecond)
	assert.False(t, fs.ShouldStep())

	clock.advance(50 * time.Millisecond)
	assert.True(t, fs.ShouldStep())
	assert.False(t, fs.ShouldStep())

	clock.advance(150 * time.Millisecond)
	assert.True(t, fs.ShouldStep())
}

func TestFixedStepDropsBacklog(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	fs := NewFixedStep(10 * time.Millisecond)
	fs.SetClock(clock.now)
	fs.ShouldStep()

	clock.advance(time.Second)
	assert.True(t, fs.ShouldStep())
	assert.False(t, fs.ShouldStep(), "a long stall must not replay missed ticks")
}

func TestFixedStepDefaultsAndRestart(t *testing.T) {
	fs := NewFixedStep(0)
	assert.Equal(t, DefaultStepInterval, fs.Interval())

	clock := &fakeClock{t: time.Unix(0, 0)}
	fs.SetClock(clock.now)
	fs.ShouldStep()
	clock.advance(140 * time.Millisecond)
	assert.False(t, fs.ShouldStep())

	fs.Restart()
	fs.ShouldStep()
	clock.advance(140 * time.Millisecond)
	assert.False(t, fs.ShouldStep(), "restart discards time accumulated before it")
	clock.advance(10 * time.Millisecond)
	assert.True(t, fs.ShouldStep())
}
