package entities

import (
	"github.com/decker502/whackamole/pkg/components"
	"github.com/decker502/whackamole/pkg/ecs"
)

// NewButtonEntity 创建屏幕按钮实体
// 参数:
//   - x, y: 左上角坐标
//   - width, height: 按钮尺寸
//   - onClick: 点击回调（鼠标释放时触发）
func NewButtonEntity(em *ecs.EntityManager, label string, x, y, width, height float64, onClick func()) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.ButtonComponent{
		Label:   label,
		Width:   width,
		Height:  height,
		State:   components.UINormal,
		Enabled: true,
		OnClick: onClick,
	})

	return id
}
