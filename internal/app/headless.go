package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"lifesim/internal/core"
	"lifesim/internal/life"
	"lifesim/internal/sim"
)

const (
	cellAlive = "██"
	cellDead  = "  "

	// ANSI: clear screen, cursor home.
	clearScreen = "\033[2J\033[H"
)

// RunHeadless drives a randomly seeded simulation in the terminal until
// SIGINT/SIGTERM. The timer goroutine plays the external timer
// collaborator: it produces Tick commands at the configured interval,
// and the event loop applies them to the controller strictly one at a
// time.
func RunHeadless(cfg *Config, out io.Writer) error {
	grid := life.New(cfg.Width, cfg.Height)
	grid.Randomize(core.NewRNG(cfg.Seed), cfg.Density)

	ctrl := sim.New(grid, cfg.TickInterval)
	ctrl.Apply(sim.PressButton{})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(ctrl.Interval())
	defer ticker.Stop()

	commands := make(chan sim.Command)
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer close(commands)
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				select {
				case commands <- sim.Tick{}:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		}
	})

	eg.Go(func() error {
		printFrame(out, ctrl)
		for cmd := range commands {
			ctrl.Apply(cmd)
			printFrame(out, ctrl)
		}
		return nil
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return errors.Wrap(err, "[RunHeadless] simulation loop failed")
	}

	fmt.Fprintf(out, "\nstopped after %d generations\n", ctrl.Generation())
	return nil
}

// printFrame renders one generation plus a status line.
func printFrame(out io.Writer, ctrl *sim.Controller) {
	snapshot := ctrl.Snapshot()
	size := snapshot.Size()

	var b strings.Builder
	b.WriteString(clearScreen)
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if snapshot.Get(x, y) {
				b.WriteString(cellAlive)
			} else {
				b.WriteString(cellDead)
			}
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "gen %d | %s | population %d | Ctrl+C to quit\n",
		ctrl.Generation(), ctrl.Mode(), snapshot.Population())
	fmt.Fprint(out, b.String())
}
