//go:build ebiten

package ui

import (
	"life-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUD prints the generation, population and key bindings over the grid.
type HUD struct {
	sim     core.Sim
	visible bool
}

// NewHUD returns a visible HUD for sim.
func NewHUD(sim core.Sim) *HUD {
	return &HUD{sim: sim, visible: true}
}

// Update toggles visibility with H.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw renders the HUD text in the top-left corner.
func (h *HUD) Draw(screen *ebiten.Image, paused bool) {
	if !h.visible {
		return
	}
	ebitenutil.DebugPrint(screen, Status(h.sim, paused))
}
