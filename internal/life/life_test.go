package life

import (
	"testing"

	"lifesim/internal/core"
)

func TestSetGetRoundTrip(t *testing.T) {
	g := New(4, 3)
	g.Set(2, 1, true)

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			want := x == 2 && y == 1
			if g.Get(x, y) != want {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, g.Get(x, y), want)
			}
		}
	}

	g.Set(2, 1, false)
	if g.Get(2, 1) {
		t.Fatalf("cell (2,1) still alive after clearing")
	}
}

func TestOutOfRangePanics(t *testing.T) {
	g := New(4, 3)
	cases := [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {-1, 1}}
	for _, c := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("Get(%d,%d) did not panic", c[0], c[1])
				}
			}()
			g.Get(c[0], c[1])
		}()
	}
}

func TestWrapNeighborsAtCorner(t *testing.T) {
	const w, h = 5, 4
	g := New(w, h)

	// Only cells adjacent to (0,0) through wraparound are alive.
	g.Set(w-1, h-1, true)
	g.Set(0, h-1, true)
	g.Set(w-1, 0, true)

	if n := g.NeighborCount(0, 0); n != 3 {
		t.Fatalf("corner neighbor count = %d, expected 3", n)
	}
	if n := g.NeighborCount(2, 2); n != 0 {
		t.Fatalf("interior neighbor count = %d, expected 0", n)
	}
}

func TestWrapCoordinates(t *testing.T) {
	g := New(5, 4)
	cases := []struct {
		x, y   int
		wx, wy int
	}{
		{-1, -1, 4, 3},
		{5, 4, 0, 0},
		{7, -2, 2, 2},
		{3, 1, 3, 1},
	}
	for _, c := range cases {
		wx, wy := g.Wrap(c.x, c.y)
		if wx != c.wx || wy != c.wy {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), expected (%d,%d)", c.x, c.y, wx, wy, c.wx, c.wy)
		}
	}
}

func TestAllDeadStaysDead(t *testing.T) {
	g := New(3, 3)
	g.Step()
	if g.Population() != 0 {
		t.Fatalf("all-dead grid produced %d live cells after step", g.Population())
	}
}

func TestLoneCellDies(t *testing.T) {
	g := New(3, 3)
	g.Set(1, 1, true)
	g.Step()
	if g.Population() != 0 {
		t.Fatalf("isolated cell survived, population %d", g.Population())
	}
}

func TestBlockStillLife(t *testing.T) {
	g := New(4, 4)
	g.Set(1, 1, true)
	g.Set(2, 1, true)
	g.Set(1, 2, true)
	g.Set(2, 2, true)

	want := g.Snapshot()
	g.Step()
	if !g.Equal(want) {
		t.Fatalf("2x2 block changed after step")
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := New(5, 5)
	g.Set(2, 1, true)
	g.Set(2, 2, true)
	g.Set(2, 3, true)

	g.Step()

	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			_, shouldBeAlive := expects[[2]int{x, y}]
			if g.Get(x, y) != shouldBeAlive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, g.Get(x, y), shouldBeAlive)
			}
		}
	}

	g.Step()

	expects = map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			_, shouldBeAlive := expects[[2]int{x, y}]
			if g.Get(x, y) != shouldBeAlive {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", x, y, g.Get(x, y), shouldBeAlive)
			}
		}
	}
}

func TestStepParallelMatchesStep(t *testing.T) {
	a := New(16, 16)
	a.Randomize(core.NewRNG(7), 0.4)
	b := a.Snapshot()

	for i := 0; i < 5; i++ {
		a.Step()
		b.StepParallel(4)
		if !a.Equal(b) {
			t.Fatalf("parallel step diverged from sequential step at generation %d", i+1)
		}
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	g := New(3, 3)
	g.Set(0, 0, true)

	snap := g.Snapshot()
	if !snap.Equal(g) {
		t.Fatalf("snapshot differs from source")
	}

	g.Set(1, 1, true)
	if snap.Get(1, 1) {
		t.Fatalf("mutating the source changed the snapshot")
	}

	snap.Set(2, 2, true)
	if g.Get(2, 2) {
		t.Fatalf("mutating the snapshot changed the source")
	}
}

func TestNewFromCells(t *testing.T) {
	g := NewFromCells(3, 2, []uint8{0, 1, 0, 2, 0, 1})
	if g.Population() != 3 {
		t.Fatalf("population = %d, expected 3 (non-zero values are alive)", g.Population())
	}
	if !g.Get(1, 0) || !g.Get(0, 1) || !g.Get(2, 1) {
		t.Fatalf("seeded cells not alive")
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("NewFromCells with wrong length did not panic")
		}
	}()
	NewFromCells(3, 2, []uint8{1, 0})
}

func TestClearAndPopulation(t *testing.T) {
	g := New(4, 4)
	g.Randomize(core.NewRNG(1), 1.0)
	if g.Population() != 16 {
		t.Fatalf("density 1.0 fill left population %d, expected 16", g.Population())
	}
	g.Clear()
	if g.Population() != 0 {
		t.Fatalf("population %d after Clear, expected 0", g.Population())
	}
}
