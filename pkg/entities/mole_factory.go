package entities

import (
	"github.com/decker502/whackamole/pkg/components"
	"github.com/decker502/whackamole/pkg/ecs"
)

// NewMoleEntity 在洞穴位置创建一只地鼠
// 参数:
//   - em: EntityManager 实例
//   - hole: 所在洞穴实体ID（调用方负责标记占用）
//   - x, y: 洞穴中心坐标
//   - life: 生命周期（帧）
//
// 返回: 创建的实体ID
func NewMoleEntity(em *ecs.EntityManager, hole ecs.EntityID, x, y, life float64) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.MoleComponent{
		Hole:          hole,
		Visible:       true,
		PopupProgress: 0,
	})
	em.AddComponent(id, &components.LifetimeComponent{
		Remaining: life,
		Total:     life,
	})

	return id
}
