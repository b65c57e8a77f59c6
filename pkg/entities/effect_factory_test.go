package entities

import (
	"math/rand"
	"testing"

	"github.com/decker502/whackamole/pkg/components"
	"github.com/decker502/whackamole/pkg/config"
	"github.com/decker502/whackamole/pkg/ecs"
)

func TestNewExplosionEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig().Effects

	id := NewExplosionEntity(em, 350, 300, cfg)

	exp, ok := ecs.GetComponent[*components.ExplosionComponent](em, id)
	if !ok {
		t.Fatal("explosion entity should have ExplosionComponent")
	}
	if exp.Radius != 0 || exp.MaxRadius != 100 {
		t.Errorf("expected radius 0 / max 100, got %v / %v", exp.Radius, exp.MaxRadius)
	}
	life, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if life.Remaining != 30 || life.Total != 30 {
		t.Errorf("expected life 30/30, got %v/%v", life.Remaining, life.Total)
	}
}

func TestNewParticleBurst(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig().Effects
	rng := rand.New(rand.NewSource(7))

	ids := NewParticleBurst(em, rng, 150, 150, cfg)
	if len(ids) != 15 {
		t.Fatalf("expected 15 particles, got %d", len(ids))
	}

	for _, id := range ids {
		p, ok := ecs.GetComponent[*components.ParticleComponent](em, id)
		if !ok {
			t.Fatalf("entity %d has no ParticleComponent", id)
		}
		if p.VelocityX < -5 || p.VelocityX >= 5 || p.VelocityY < -5 || p.VelocityY >= 5 {
			t.Errorf("velocity (%v, %v) outside [-5, 5)", p.VelocityX, p.VelocityY)
		}
		// 暖色: 色相 15°..75°，饱和度 100%，亮度 50%，蓝色通道为 0，红/绿至少一个饱满
		if p.Color.B != 0 || p.Color.A != 255 || (p.Color.R != 255 && p.Color.G != 255) {
			t.Errorf("unexpected particle color %+v", p.Color)
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if pos.X != 150 || pos.Y != 150 {
			t.Errorf("particle should start at the hit position, got (%v, %v)", pos.X, pos.Y)
		}
	}
}

func TestNewHoleEntityLayout(t *testing.T) {
	em := ecs.NewEntityManager()
	board := config.DefaultGameConfig().Board

	id := NewHoleEntity(em, board, 2, 1)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 350 || pos.Y != 450 {
		t.Errorf("hole (row 2, col 1) expected at (350, 450), got (%v, %v)", pos.X, pos.Y)
	}
	hole, _ := ecs.GetComponent[*components.HoleComponent](em, id)
	if hole.Index != 7 || hole.Radius != 60 || hole.Occupant != 0 {
		t.Errorf("unexpected hole component %+v", hole)
	}
}
