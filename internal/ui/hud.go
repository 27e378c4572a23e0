//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD draws a small stats readout in the top-left corner of the screen.
type HUD struct {
	visible bool
}

// NewHUD constructs a visible HUD.
func NewHUD() *HUD {
	return &HUD{visible: true}
}

// Update processes HUD input. H toggles visibility.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw renders the stats readout.
func (h *HUD) Draw(screen *ebiten.Image, st Stats) {
	if !h.visible {
		return
	}
	state := "running"
	if st.Complete {
		state = "complete"
	} else if st.Paused {
		state = "paused"
	}
	lines := []string{
		fmt.Sprintf("%d / %d stuck (%s)", st.Stuck, st.Target, state),
		fmt.Sprintf("%.0f updates/s, %d total", st.Rate, st.Updates),
		fmt.Sprintf("seed: %s  theme: %s", st.SeedKind, st.Theme),
	}
	face := basicfont.Face7x13
	y := 16
	for _, line := range lines {
		text.Draw(screen, line, face, 8, y, color.White)
		y += face.Height + 2
	}
}
