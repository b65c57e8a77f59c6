package systems

import (
	"github.com/decker502/whackamole/pkg/components"
	"github.com/decker502/whackamole/pkg/ecs"
)

// LifetimeSystem 管理实体的生命周期
// 只负责倒数和标记过期，过期后的处理（释放洞穴、重置连击、删除实体）由各自的系统完成
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
}

// NewLifetimeSystem 创建一个新的生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
	}
}

// Update 所有拥有生命周期组件的实体剩余寿命减一帧
func (s *LifetimeSystem) Update() {
	entities := ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager)

	for _, id := range entities {
		if s.entityManager.IsMarkedForDestruction(id) {
			continue
		}
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok {
			continue
		}

		lifetime.Remaining--
		if lifetime.Remaining <= 0 {
			lifetime.IsExpired = true
		}
	}
}
