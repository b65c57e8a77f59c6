package components

import "image/color"

// ParticleComponent represents a single debris particle spawned by a hit.
// Position lives in PositionComponent, remaining life in LifetimeComponent.
//
// This is a pure data component following ECS principles.
type ParticleComponent struct {
	// Velocity (像素/帧)
	VelocityX float64
	VelocityY float64

	// Color is picked once at spawn time (warm HSL hues).
	Color color.RGBA
}
