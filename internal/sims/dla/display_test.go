package dla

import (
	"testing"

	"dla-ca/internal/core"
)

func TestDisplayCellsBucketByStickOrder(t *testing.T) {
	s := newTestSim(core.SeedCenter, 5, 5, 10)
	g := s.grid
	g.SetFilled(g.Index(0, 0), true)
	g.SetID(g.Index(0, 0), 100)
	g.SetFilled(g.Index(1, 0), true)
	g.SetID(g.Index(1, 0), 55)
	s.stuck = 100

	cells := s.Cells()
	if got := cells[g.Index(0, 0)]; got != 10 {
		t.Fatalf("last-stuck cell displays bucket %d, want 10", got)
	}
	if got := cells[g.Index(1, 0)]; got != 6 {
		t.Fatalf("mid-stuck cell displays bucket %d, want 6", got)
	}
	if got := cells[g.Index(2, 2)]; got != 1 {
		t.Fatalf("seed cell displays bucket %d, want 1", got)
	}
	if got := cells[g.Index(4, 4)]; got != 0 {
		t.Fatalf("empty cell displays %d, want 0", got)
	}
}

func TestDisplayCellsWithFewStuck(t *testing.T) {
	// Below ThemeBuckets stuck particles everything lands in the first
	// bucket, avoiding a divide by zero.
	s := newTestSim(core.SeedCenter, 5, 5, 10)
	cells := s.Cells()
	if got := cells[s.grid.Index(2, 2)]; got != 1 {
		t.Fatalf("seed cell displays %d, want 1", got)
	}
}

func TestPaletteFlat(t *testing.T) {
	s := newTestSim(core.SeedCenter, 5, 5, 10)
	s.SetTheme(ThemeSeafoam, false)
	s.SetParticleColor(ColorRed)
	s.SetBackgroundColor(ColorWhite)

	palette := s.Palette()
	if len(palette) != ThemeBuckets+1 {
		t.Fatalf("palette has %d entries, want %d", len(palette), ThemeBuckets+1)
	}
	if palette[0] != ColorWhite.RGBA() {
		t.Fatalf("background entry is %v", palette[0])
	}
	for i := 1; i < len(palette); i++ {
		if palette[i] != ColorRed.RGBA() {
			t.Fatalf("flat palette entry %d is %v", i, palette[i])
		}
	}
}

func TestPaletteThemed(t *testing.T) {
	s := newTestSim(core.SeedCenter, 5, 5, 10)
	s.SetTheme(ThemeChristmas, true)

	palette := s.Palette()
	grad := ThemeChristmas.Gradient()
	for i := 0; i < ThemeBuckets; i++ {
		if palette[i+1] != grad[i] {
			t.Fatalf("palette entry %d is %v, want %v", i+1, palette[i+1], grad[i])
		}
	}
}

func TestThemeGradients(t *testing.T) {
	for _, theme := range Themes {
		grad := theme.Gradient()
		if grad[0] == grad[ThemeBuckets-1] {
			t.Errorf("theme %v has a flat gradient", theme)
		}
		for i, c := range grad {
			if c.A != 0xff {
				t.Errorf("theme %v bucket %d is not opaque: %v", theme, i, c)
			}
		}
	}
}
