// Package sim gates how a life.Grid may change. While the simulation is
// stopped, individual cells can be edited; while it is running, the grid
// only advances whole generations on timer ticks. The two mutation paths
// are never legal at the same time.
package sim

import (
	"time"

	"lifesim/internal/core"
	"lifesim/internal/life"
)

// Mode is the run/stop state of a simulation.
type Mode int

const (
	// Stopped accepts cell edits and ignores ticks.
	Stopped Mode = iota
	// Running advances one generation per tick and ignores cell edits.
	Running
)

// String returns the mode name for status lines.
func (m Mode) String() string {
	switch m {
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}

// Controller owns a grid and drives it through the run/stop state
// machine. It has no internal goroutines or locks: callers deliver
// events one at a time, and every operation completes before the next
// is accepted.
type Controller struct {
	grid       *life.Grid
	mode       Mode
	interval   time.Duration
	generation int
}

// New returns a stopped controller owning the provided grid. A nil grid
// gets a minimal board; a non-positive interval falls back to
// core.DefaultTickInterval. The interval is fixed for the lifetime of
// the controller.
func New(grid *life.Grid, interval time.Duration) *Controller {
	if grid == nil {
		grid = life.New(1, 1)
	}
	if interval <= 0 {
		interval = core.DefaultTickInterval
	}
	return &Controller{grid: grid, mode: Stopped, interval: interval}
}

// Mode returns the current run/stop state.
func (c *Controller) Mode() Mode { return c.mode }

// Interval returns the tick interval chosen at construction.
func (c *Controller) Interval() time.Duration { return c.interval }

// Generation returns how many generations have been committed since
// construction.
func (c *Controller) Generation() int { return c.generation }

// Size returns the owned grid's dimensions.
func (c *Controller) Size() core.Size { return c.grid.Size() }

// ToggleCell flips the cell at (x, y) and reports whether the edit was
// applied. While running the edit is ignored and the grid is untouched.
func (c *Controller) ToggleCell(x, y int) bool {
	if c.mode == Running {
		return false
	}
	c.grid.Set(x, y, !c.grid.Get(x, y))
	return true
}

// SetCell writes the cell at (x, y) and reports whether the edit was
// applied. Same gating as ToggleCell.
func (c *Controller) SetCell(x, y int, alive bool) bool {
	if c.mode == Running {
		return false
	}
	c.grid.Set(x, y, alive)
	return true
}

// PressButton toggles between Stopped and Running. The grid itself is
// never touched by this call.
func (c *Controller) PressButton() {
	if c.mode == Running {
		c.mode = Stopped
	} else {
		c.mode = Running
	}
}

// OnTick is called by the external timer at the configured cadence. It
// commits the next generation and reports true when running, and does
// nothing when stopped.
func (c *Controller) OnTick() bool {
	if c.mode != Running {
		return false
	}
	c.grid.Step()
	c.generation++
	return true
}

// Snapshot returns a read-only copy of the current generation for the
// presentation layer. It never mutates the simulation.
func (c *Controller) Snapshot() *life.Grid {
	return c.grid.Snapshot()
}
