//go:build ebiten

package app

import (
	"dla-ca/internal/codec"
	"dla-ca/internal/core"
	"dla-ca/internal/render"
	"dla-ca/internal/sims/dla"
	"dla-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a shared DLA simulation to the ebiten.Game interface. The
// background worker advances the simulation; the game only reads state and
// forwards input to the engine handlers, always through the shared lock.
type Game struct {
	shared  *dla.Shared
	painter *render.GridPainter
	hud     *ui.HUD
	meter   *core.RateMeter

	scale    int
	saveFile string

	seedIdx  int
	themeIdx int
	themeOn  bool
	colorIdx int
	backIdx  int
	radiusOn bool

	w, h int
}

// New constructs a Game for the provided shared simulation.
func New(shared *dla.Shared, scale int, saveFile string) *Game {
	g := &Game{
		shared:   shared,
		hud:      ui.NewHUD(),
		meter:    core.NewRateMeter(),
		scale:    scale,
		saveFile: saveFile,
		themeOn:  true,
	}
	shared.With(func(s *dla.Sim) {
		size := s.Size()
		g.w, g.h = size.W, size.H
		for i, k := range core.SeedKinds {
			if k == s.SeedKind() {
				g.seedIdx = i
			}
		}
	})
	g.painter = render.NewGridPainter(g.w, g.h)
	return g
}

// Update handles per-frame input and reacts to pending resizes.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.shared.With(func(s *dla.Sim) {
			if s.Complete() {
				return
			}
			// Pass the label the button would be showing right now.
			label := dla.PauseButtonText
			if s.Paused() {
				label = dla.UnpauseButtonText
			}
			s.TogglePause(label)
		})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.shared.With(func(s *dla.Sim) {
			size := s.Size()
			s.ResetGrid(size.W, size.H)
		})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.seedIdx = (g.seedIdx + 1) % len(core.SeedKinds)
		kind := core.SeedKinds[g.seedIdx]
		g.shared.With(func(s *dla.Sim) { s.SelectSeedKind(kind) })
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.cycleTheme()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.colorIdx = (g.colorIdx + 1) % len(dla.ColorNames)
		name := dla.ColorNames[g.colorIdx]
		g.shared.With(func(s *dla.Sim) { s.SetParticleColor(name) })
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.backIdx = (g.backIdx + 1) % len(dla.ColorNames)
		name := dla.ColorNames[g.backIdx]
		g.shared.With(func(s *dla.Sim) { s.SetBackgroundColor(name) })
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		delta := 1000
		if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
			delta = -1000
		}
		g.shared.With(func(s *dla.Sim) {
			if !s.Paused() && !s.Complete() {
				return
			}
			// Clamp between what has already stuck and what the grid holds.
			size := s.Size()
			n := s.Target() + delta
			if n < s.Stuck() {
				n = s.Stuck()
			}
			if capacity := size.W * size.H; n > capacity {
				n = capacity
			}
			s.SetTargetParticles(n)
		})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.radiusOn = !g.radiusOn
		on := g.radiusOn
		g.shared.With(func(s *dla.Sim) {
			size := s.Size()
			r := size.W
			if size.H < r {
				r = size.H
			}
			s.SetSpawnRadius(r/4, on)
		})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.shared.With(func(s *dla.Sim) { s.SaveToFile(g.saveFile) })
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.shared.With(func(s *dla.Sim) { s.LoadFromFile(g.saveFile + codec.Suffix) })
	}

	g.hud.Update()
	g.applyPendingResize()
	return nil
}

// cycleTheme steps through every theme and then a no-theme state that uses
// the flat particle color.
func (g *Game) cycleTheme() {
	if !g.themeOn {
		g.themeOn = true
		g.themeIdx = 0
	} else {
		g.themeIdx++
		if g.themeIdx >= len(dla.Themes) {
			g.themeIdx = 0
			g.themeOn = false
		}
	}
	theme := dla.Themes[g.themeIdx]
	on := g.themeOn
	g.shared.With(func(s *dla.Sim) { s.SetTheme(theme, on) })
}

// applyPendingResize rebuilds the painter and window when the engine
// reports changed grid dimensions.
func (g *Game) applyPendingResize() {
	resized := false
	g.shared.With(func(s *dla.Sim) {
		if !s.ResizePending() {
			return
		}
		size := s.Size()
		g.w, g.h = size.W, size.H
		s.ClearResizePending()
		resized = true
	})
	if resized {
		g.painter.Resize(g.w, g.h)
		ebiten.SetWindowSize(g.w*g.scale, g.h*g.scale)
	}
}

// Draw renders the current simulation state and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	var st ui.Stats
	g.shared.With(func(s *dla.Sim) {
		g.painter.Blit(screen, s.Cells(), s.Palette(), g.scale)
		st = ui.Stats{
			Stuck:    s.Stuck(),
			Target:   s.Target(),
			Updates:  s.Updates(),
			Rate:     g.meter.Rate(s.Updates()),
			Paused:   s.Paused(),
			Complete: s.Complete(),
			SeedKind: s.SeedKind().String(),
		}
	})
	if g.themeOn {
		st.Theme = dla.Themes[g.themeIdx].String()
	} else {
		st.Theme = "off"
	}
	g.hud.Draw(screen, st)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w * g.scale, g.h * g.scale
}
