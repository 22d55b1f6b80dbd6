package ui

import (
	"fmt"

	"life-ca/internal/core"
)

// Status formats the HUD text for sim.
func Status(sim core.Sim, paused bool) string {
	gen := 0
	if s, ok := sim.(core.Stepper); ok {
		gen = s.Generation()
	}
	state := "running"
	if paused {
		state = "paused"
	}
	return fmt.Sprintf("%s  gen %d  pop %d  [%s]\nspace pause  n step  r reset  s reseed  h hud  q quit",
		sim.Name(), gen, population(sim.Cells()), state)
}

func population(cells []uint8) int {
	total := 0
	for _, c := range cells {
		if c != 0 {
			total++
		}
	}
	return total
}
