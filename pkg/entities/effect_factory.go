package entities

import (
	"image/color"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/whackamole/pkg/components"
	"github.com/decker502/whackamole/pkg/config"
	"github.com/decker502/whackamole/pkg/ecs"
)

// NewExplosionEntity 在 (x, y) 创建一个爆炸效果，半径从 0 开始扩张
func NewExplosionEntity(em *ecs.EntityManager, x, y float64, cfg config.EffectsConfig) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.ExplosionComponent{
		Radius:    0,
		MaxRadius: cfg.ExplosionMaxRadius,
	})
	em.AddComponent(id, &components.LifetimeComponent{
		Remaining: cfg.ExplosionLife,
		Total:     cfg.ExplosionLife,
	})

	return id
}

// NewParticleBurst 在 (x, y) 生成一批碎屑粒子
// 速度分量均匀分布在 [-speed/2, speed/2)，颜色为暖色调 HSL(hueMin..hueMin+hueRange, 100%, 50%)
//
// 返回: 创建的粒子实体ID列表
func NewParticleBurst(em *ecs.EntityManager, rng *rand.Rand, x, y float64, cfg config.EffectsConfig) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, cfg.ParticleCount)

	for i := 0; i < cfg.ParticleCount; i++ {
		id := em.CreateEntity()

		em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
		em.AddComponent(id, &components.ParticleComponent{
			VelocityX: (rng.Float64() - 0.5) * cfg.ParticleSpeed,
			VelocityY: (rng.Float64() - 0.5) * cfg.ParticleSpeed,
			Color:     particleColor(rng, cfg),
		})
		em.AddComponent(id, &components.LifetimeComponent{
			Remaining: cfg.ParticleLife,
			Total:     cfg.ParticleLife,
		})

		ids = append(ids, id)
	}

	return ids
}

func particleColor(rng *rand.Rand, cfg config.EffectsConfig) color.RGBA {
	hue := cfg.ParticleHueMin + rng.Float64()*cfg.ParticleHueRange
	r, g, b := colorful.Hsl(hue, 1.0, 0.5).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
