package entities

import (
	"github.com/decker502/whackamole/pkg/components"
	"github.com/decker502/whackamole/pkg/ecs"
)

// NewHammerEntity 创建锤子单例实体，初始位于原点
func NewHammerEntity(em *ecs.EntityManager, size float64) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{})
	em.AddComponent(id, &components.HammerComponent{Size: size})
	return id
}
