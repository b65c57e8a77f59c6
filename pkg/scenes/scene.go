package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a screen of the game driven by the ebiten loop.
type Scene interface {
	// Update advances the scene by one tick.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}
