package systems

import (
	"github.com/decker502/whackamole/pkg/components"
	"github.com/decker502/whackamole/pkg/ecs"
)

// ButtonSystem 按钮交互系统
// 负责按钮的悬停、按下状态以及在指针释放时触发 OnClick
//
// 输入由调用方传入（ebiten 场景读取鼠标/触摸），系统本身不依赖输入设备
type ButtonSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
	}
}

// Update 更新按钮状态
//
// 参数：
//   - x, y: 指针位置
//   - pressed: 指针是否按住
//   - released: 指针是否在本帧释放
//
// 返回：指针是否位于某个可用按钮上（调用方据此不把这次点击当作挥锤）
func (s *ButtonSystem) Update(x, y float64, pressed, released bool) bool {
	over := false

	buttons := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)
	for _, id := range buttons {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		if !pointInRect(x, y, pos.X, pos.Y, button.Width, button.Height) {
			button.State = components.UINormal
			continue
		}

		over = true
		switch {
		case pressed:
			button.State = components.UIClicked
		case released:
			if button.OnClick != nil {
				button.OnClick()
			}
			button.State = components.UIHovered
		default:
			button.State = components.UIHovered
		}
	}

	return over
}

// SetEnabled 按标签启用/禁用按钮
func (s *ButtonSystem) SetEnabled(label string, enabled bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.ButtonComponent](s.entityManager) {
		if button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id); ok && button.Label == label {
			button.Enabled = enabled
		}
	}
}

func pointInRect(px, py, x, y, w, h float64) bool {
	return px >= x && px <= x+w && py >= y && py <= y+h
}
