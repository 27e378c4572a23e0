package core

import "testing"

func TestCenterSeed(t *testing.T) {
	g := Build(SeedCenter, 5, 5, NewRNG(1))
	for i, c := range g.Cells() {
		want := i == 12
		if c.Filled != want {
			t.Fatalf("cell %d filled=%v, want %v", i, c.Filled, want)
		}
		if c.ID != 0 {
			t.Fatalf("seed cell %d has id %d, want 0", i, c.ID)
		}
	}
}

func TestBottomEdgeSeed(t *testing.T) {
	g := Build(SeedBottomEdge, 4, 3, NewRNG(1))
	filled := 0
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if !g.Filled(g.Index(x, y)) {
				continue
			}
			filled++
			if y != 2 {
				t.Fatalf("filled cell at (%d,%d), want bottom row only", x, y)
			}
		}
	}
	if filled != 4 {
		t.Fatalf("filled %d cells, want 4", filled)
	}
}

func TestAllEdgesSeed(t *testing.T) {
	g := Build(SeedAllEdges, 6, 4, NewRNG(1))
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			border := x == 0 || x == 5 || y == 0 || y == 3
			if g.Filled(g.Index(x, y)) != border {
				t.Fatalf("cell (%d,%d) filled=%v, want %v", x, y, !border, border)
			}
		}
	}
	if got, want := g.StuckCount(), 2*6+2*4-4; got != want {
		t.Fatalf("stuck count %d, want %d", got, want)
	}
}

func TestFourDotsSeed(t *testing.T) {
	g := Build(SeedFourDots, 9, 9, NewRNG(1))
	dots := map[[2]int]bool{{3, 3}: true, {6, 3}: true, {3, 6}: true, {6, 6}: true}
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			if g.Filled(g.Index(x, y)) != dots[[2]int{x, y}] {
				t.Fatalf("cell (%d,%d) filled=%v", x, y, g.Filled(g.Index(x, y)))
			}
		}
	}
}

func TestRandomFiveSeed(t *testing.T) {
	g1 := Build(SeedRandomFive, 20, 20, NewRNG(99))
	g2 := Build(SeedRandomFive, 20, 20, NewRNG(99))
	if n := g1.StuckCount(); n < 1 || n > 5 {
		t.Fatalf("random five filled %d cells", n)
	}
	for i := range g1.Cells() {
		if g1.Filled(i) != g2.Filled(i) {
			t.Fatalf("same seed produced different grids at cell %d", i)
		}
	}
}

func TestCircleSeed(t *testing.T) {
	g := Build(SeedCircle, 41, 41, NewRNG(1))
	radius := 4 // min(41,41)/10
	if g.StuckCount() == 0 {
		t.Fatal("circle seed filled no cells")
	}
	for y := 0; y < 41; y++ {
		for x := 0; x < 41; x++ {
			if g.Filled(g.Index(x, y)) && Distance(x, y, 20, 20) != radius {
				t.Fatalf("filled cell (%d,%d) at distance %d, want %d", x, y, Distance(x, y, 20, 20), radius)
			}
		}
	}
	if !g.Filled(g.Index(24, 20)) {
		t.Fatal("cell on the ring axis is not filled")
	}
}

func TestDistanceTruncates(t *testing.T) {
	cases := []struct {
		x1, y1, x2, y2, want int
	}{
		{0, 0, 0, 0, 0},
		{0, 0, 1, 1, 1}, // sqrt(2) truncates
		{0, 0, 2, 2, 2}, // sqrt(8) truncates
		{0, 0, 3, 4, 5},
		{10, 10, 7, 6, 5},
	}
	for _, c := range cases {
		if got := Distance(c.x1, c.y1, c.x2, c.y2); got != c.want {
			t.Errorf("Distance(%d,%d,%d,%d) = %d, want %d", c.x1, c.y1, c.x2, c.y2, got, c.want)
		}
	}
}

func TestInBounds(t *testing.T) {
	g := NewGrid(3, 2)
	if !g.InBounds(0, 0) || !g.InBounds(2, 1) {
		t.Fatal("corner positions reported out of bounds")
	}
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}} {
		if g.InBounds(p[0], p[1]) {
			t.Fatalf("position (%d,%d) reported in bounds", p[0], p[1])
		}
	}
}

func TestNewGridRejectsBadDimensions(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewGrid accepted zero width")
		}
	}()
	NewGrid(0, 5)
}
