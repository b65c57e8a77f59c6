package systems

import (
	"github.com/decker502/whackamole/pkg/components"
	"github.com/decker502/whackamole/pkg/ecs"
)

// ParticleSystem integrates debris particles once per tick:
// position += velocity, then velocity.Y += gravity (screen Y grows downward).
// Particles are destroyed when their lifetime expires.
type ParticleSystem struct {
	EntityManager *ecs.EntityManager
	Gravity       float64
}

// NewParticleSystem creates a new ParticleSystem instance.
func NewParticleSystem(em *ecs.EntityManager, gravity float64) *ParticleSystem {
	return &ParticleSystem{
		EntityManager: em,
		Gravity:       gravity,
	}
}

// Update advances every particle by one tick.
func (ps *ParticleSystem) Update() {
	particles := ecs.GetEntitiesWith3[
		*components.ParticleComponent,
		*components.PositionComponent,
		*components.LifetimeComponent,
	](ps.EntityManager)

	for _, id := range particles {
		p, _ := ecs.GetComponent[*components.ParticleComponent](ps.EntityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](ps.EntityManager, id)
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](ps.EntityManager, id)

		pos.X += p.VelocityX
		pos.Y += p.VelocityY
		p.VelocityY += ps.Gravity

		if lifetime.IsExpired {
			ps.EntityManager.DestroyEntity(id)
		}
	}
}
