package systems

import (
	"github.com/decker502/whackamole/pkg/components"
	"github.com/decker502/whackamole/pkg/ecs"
)

// ExplosionSystem 推进爆炸效果
// 半径 = 已消耗生命比例 * 最大半径，生命耗尽后删除
type ExplosionSystem struct {
	entityManager *ecs.EntityManager
}

// NewExplosionSystem 创建爆炸系统
func NewExplosionSystem(em *ecs.EntityManager) *ExplosionSystem {
	return &ExplosionSystem{entityManager: em}
}

// Update 更新所有爆炸
func (s *ExplosionSystem) Update() {
	explosions := ecs.GetEntitiesWith2[*components.ExplosionComponent, *components.LifetimeComponent](s.entityManager)

	for _, id := range explosions {
		exp, _ := ecs.GetComponent[*components.ExplosionComponent](s.entityManager, id)
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)

		exp.Radius = lifetime.ElapsedFraction() * exp.MaxRadius

		if lifetime.IsExpired {
			s.entityManager.DestroyEntity(id)
		}
	}
}
