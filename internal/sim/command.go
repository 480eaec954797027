package sim

// Command is an input event for a Controller. The presentation layer
// translates raw input (pointer clicks, the start/stop button, its
// timer) into commands and applies them one at a time.
type Command interface {
	apply(c *Controller)
}

// ToggleCell flips the cell at (X, Y); ignored while running.
type ToggleCell struct {
	X, Y int
}

func (cmd ToggleCell) apply(c *Controller) { c.ToggleCell(cmd.X, cmd.Y) }

// PressButton toggles the run/stop state.
type PressButton struct{}

func (PressButton) apply(c *Controller) { c.PressButton() }

// Tick advances one generation; ignored while stopped.
type Tick struct{}

func (Tick) apply(c *Controller) { c.OnTick() }

// Apply processes a single command synchronously. A nil command is a
// no-op.
func (c *Controller) Apply(cmd Command) {
	if cmd == nil {
		return
	}
	cmd.apply(c)
}
