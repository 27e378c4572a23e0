// Package dla implements diffusion-limited aggregation: particles random-walk
// across the grid until they touch a stuck particle, then freeze in place.
package dla

import (
	"fmt"
	"image/color"
	"log"

	"dla-ca/internal/codec"
	"dla-ca/internal/core"
)

// Button labels the GUI shows for the pause toggle. TogglePause cross-checks
// the label a caller passes against the engine's own pause state.
const (
	PauseButtonText   = "Pause"
	UnpauseButtonText = "Run"
)

// spawnRetries bounds how many random draws the spawn policy makes before it
// declares the grid saturated.
const spawnRetries = 1000

type particle struct {
	exists bool
	x, y   int
}

// Sim runs one DLA simulation. At most one particle is in motion at a time;
// everything else on the grid is permanently stuck.
type Sim struct {
	grid *core.Grid
	cur  particle

	// stuck counts permanently frozen particles; the active particle's
	// occupancy is transient and not included.
	stuck    int
	target   int
	updates  uint64
	complete bool
	paused   bool

	seedKind core.SeedKind

	spawnRadius    int
	spawnRadiusSet bool

	// resizePending tells the display side that grid dimensions changed and
	// its surfaces need rebuilding. The display clears it once handled.
	resizePending bool

	fillColor color.RGBA
	backColor color.RGBA
	theme     Theme
	themeSet  bool

	rng     *core.RNG
	display []uint8
}

// New constructs a paused simulation seeded according to cfg.
func New(cfg Config) *Sim {
	s := &Sim{
		target:    cfg.Particles,
		fillColor: DefaultParticleColor.RGBA(),
		backColor: DefaultBackgroundColor.RGBA(),
		theme:     DefaultTheme,
		themeSet:  true,
		rng:       core.NewRNG(cfg.Seed),
	}
	s.reseed(cfg.SeedKind, cfg.Width, cfg.Height)
	return s
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "dla" }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.grid.W, H: s.grid.H} }

// Grid exposes the underlying grid.
func (s *Sim) Grid() *core.Grid { return s.grid }

// Complete reports whether the simulation has finished.
func (s *Sim) Complete() bool { return s.complete }

// Paused reports whether the simulation is paused. Paused and complete are
// never both true.
func (s *Sim) Paused() bool { return s.paused }

// Stuck returns the number of permanently stuck particles.
func (s *Sim) Stuck() int { return s.stuck }

// Target returns the stuck-particle count at which the simulation stops.
func (s *Sim) Target() int { return s.target }

// Updates returns the total number of steps taken since the last reseed.
func (s *Sim) Updates() uint64 { return s.updates }

// SeedKind returns the pattern the current grid was seeded with.
func (s *Sim) SeedKind() core.SeedKind { return s.seedKind }

// ResizePending reports whether a grid dimension change is waiting for the
// display side to react.
func (s *Sim) ResizePending() bool { return s.resizePending }

// ClearResizePending acknowledges a handled resize.
func (s *Sim) ClearResizePending() { s.resizePending = false }

// Reset re-seeds the RNG and rebuilds the grid with the current seed kind
// and dimensions.
func (s *Sim) Reset(seed int64) {
	s.rng = core.NewRNG(seed)
	s.reseed(s.seedKind, s.grid.W, s.grid.H)
}

// Run steps the simulation to completion. Used by headless runs; interactive
// callers drive Step through the shared worker instead.
func (s *Sim) Run() {
	for !s.complete {
		s.Step()
	}
}

// Step advances the simulation once: move the active particle one walk step,
// or spawn a new one if none exists, then freeze it if it touched the
// cluster. A no-op once the simulation is complete.
func (s *Sim) Step() {
	if s.complete {
		return
	}
	s.updates++

	if s.cur.exists {
		nx, ny := s.randomWalk(s.cur.x, s.cur.y)
		// The particle leaves its old cell behind.
		s.grid.SetFilled(s.grid.Index(s.cur.x, s.cur.y), false)
		s.cur.x, s.cur.y = nx, ny
	} else {
		x, y := s.spawnLoc()
		s.cur = particle{exists: true, x: x, y: y}
	}

	if s.shouldStick(s.cur.x, s.cur.y) {
		s.cur.exists = false
		s.stuck++
		s.grid.SetID(s.grid.Index(s.cur.x, s.cur.y), s.stuck)
	}

	// Whether it moved, spawned, or stuck, the particle occupies its cell.
	s.grid.SetFilled(s.grid.Index(s.cur.x, s.cur.y), true)

	if s.stuck >= s.target {
		s.complete = true
	}
	if s.complete {
		s.cur.exists = false
	}
}

// neighbors returns the Moore neighborhood of (x, y). Entries may lie
// outside the grid.
func neighbors(x, y int) [8][2]int {
	return [8][2]int{
		{x - 1, y - 1}, {x, y - 1}, {x + 1, y - 1},
		{x - 1, y}, {x + 1, y},
		{x - 1, y + 1}, {x, y + 1}, {x + 1, y + 1},
	}
}

// shouldStick reports whether a particle at (x, y) touches the cluster,
// i.e. whether any in-bounds neighbor cell is filled.
func (s *Sim) shouldStick(x, y int) bool {
	for _, nb := range neighbors(x, y) {
		if s.grid.InBounds(nb[0], nb[1]) && s.grid.Filled(s.grid.Index(nb[0], nb[1])) {
			return true
		}
	}
	return false
}

// randomWalk picks a uniformly random in-bounds, unfilled neighbor of
// (x, y). Stick detection runs before the next walk, so a particle with no
// open neighbor cannot occur; hitting that state means the geometry logic is
// broken and the walk panics.
func (s *Sim) randomWalk(x, y int) (int, int) {
	var open [8][2]int
	n := 0
	for _, nb := range neighbors(x, y) {
		if s.grid.InBounds(nb[0], nb[1]) && !s.grid.Filled(s.grid.Index(nb[0], nb[1])) {
			open[n] = nb
			n++
		}
	}
	if n == 0 {
		panic(fmt.Sprintf("random walk from (%d,%d) found no open neighbor on a %dx%d grid", x, y, s.grid.W, s.grid.H))
	}
	pick := open[s.rng.IntN(n)]
	return pick[0], pick[1]
}

// spawnLoc draws random positions until it finds an unfilled cell outside
// the exclusion radius. After spawnRetries failed draws the grid is treated
// as saturated: the simulation is marked complete and the last draw is
// returned even though it was invalid.
func (s *Sim) spawnLoc() (int, int) {
	var x, y int
	for attempt := 1; ; attempt++ {
		x = s.rng.IntN(s.grid.W)
		y = s.rng.IntN(s.grid.H)

		outside := true
		if s.spawnRadiusSet {
			outside = s.grid.DistToCenter(x, y) > s.spawnRadius
		}
		if outside && !s.grid.Filled(s.grid.Index(x, y)) {
			return x, y
		}
		if attempt >= spawnRetries {
			log.Printf("no spawn location found in %d tries, the grid is nearly full; marking the simulation complete", spawnRetries)
			s.complete = true
			return x, y
		}
	}
}

// reseed rebuilds the grid from scratch and resets progress state. The
// target count, colors, theme, and spawn radius all survive a reseed.
func (s *Sim) reseed(kind core.SeedKind, w, h int) {
	s.grid = core.Build(kind, w, h, s.rng)
	s.cur = particle{}
	s.stuck = s.grid.StuckCount()
	s.complete = false
	s.updates = 0
	s.paused = true
	s.seedKind = kind
	s.display = nil
}

// SetParticleColor changes the color used for filled cells when no theme is
// active. Display-only.
func (s *Sim) SetParticleColor(name ColorName) {
	s.fillColor = name.RGBA()
}

// SetBackgroundColor changes the color used for empty cells. Display-only.
func (s *Sim) SetBackgroundColor(name ColorName) {
	s.backColor = name.RGBA()
}

// SetTheme switches time-based gradient coloring on or off. Display-only.
func (s *Sim) SetTheme(theme Theme, enabled bool) {
	s.theme = theme
	s.themeSet = enabled
}

// SetTargetParticles changes how many stuck particles the simulation runs
// for. Only legal while paused or complete; a completed simulation given a
// larger target becomes paused-but-incomplete again, and a target equal to
// the current stuck count completes it immediately.
func (s *Sim) SetTargetParticles(n int) {
	if !s.paused && !s.complete {
		panic("target particle count changed while the simulation is running")
	}
	if n == s.target {
		return
	}
	if s.complete && s.target < n {
		s.complete = false
		s.paused = true
	} else if s.stuck == n {
		s.complete = true
	}
	s.target = n
}

// SelectSeedKind reseeds the grid with a new pattern at the current
// dimensions.
func (s *Sim) SelectSeedKind(kind core.SeedKind) {
	s.reseed(kind, s.grid.W, s.grid.H)
}

// TogglePause flips the pause flag. The caller passes the pause-button label
// it is currently displaying; a label that disagrees with the engine state
// means the UI has desynchronized, which is fatal.
func (s *Sim) TogglePause(label string) {
	want := UnpauseButtonText
	if !s.paused {
		want = PauseButtonText
	}
	if label != want {
		panic(fmt.Sprintf("pause button label %q is out of sync with the engine (want %q)", label, want))
	}
	s.paused = !s.paused
}

// SaveToFile writes the grid to path as a compressed blob. Failures,
// including an existing file at the target name, are logged and absorbed.
func (s *Sim) SaveToFile(path string) {
	log.Printf("writing grid out to %s%s", path, codec.Suffix)
	if err := codec.Save(s.grid, path); err != nil {
		log.Printf("save grid: %v", err)
	}
}

// LoadFromFile replaces the grid with one read from path and marks the
// simulation complete at the loaded particle count. On failure the current
// state is left untouched.
func (s *Sim) LoadFromFile(path string) {
	log.Printf("reading grid in from %s", path)
	g, err := codec.Load(path)
	if err != nil {
		log.Printf("load grid: %v", err)
		return
	}
	oldWidth := s.grid.W
	s.grid = g
	s.cur = particle{}
	s.stuck = g.StuckCount()
	s.target = s.stuck
	s.complete = true
	s.display = nil
	if oldWidth != g.W {
		s.resizePending = true
	}
}

// SetSpawnRadius constrains new particles to spawn farther than radius from
// the grid center. Disabled spawns anywhere.
func (s *Sim) SetSpawnRadius(radius int, enabled bool) {
	s.spawnRadius = radius
	s.spawnRadiusSet = enabled
}

// ResetGrid reseeds with the current seed kind at the given dimensions,
// flagging a pending resize when they differ from the current grid.
func (s *Sim) ResetGrid(width, height int) {
	if width != s.grid.W || height != s.grid.H {
		s.resizePending = true
	}
	s.reseed(s.seedKind, width, height)
}

var _ core.Sim = (*Sim)(nil)
