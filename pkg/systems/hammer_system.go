package systems

import (
	"math"

	"github.com/decker502/whackamole/pkg/components"
	"github.com/decker502/whackamole/pkg/config"
	"github.com/decker502/whackamole/pkg/ecs"
	"github.com/decker502/whackamole/pkg/entities"
)

// HammerSystem 管理锤子单例：跟随光标、挥动动画
//
// 挥动: 进度每帧增加 SwingStep（弧度），旋转角 = sin(进度) * MaxRotationDeg，
// 进度达到 π 时挥动结束、旋转归零。
type HammerSystem struct {
	entityManager *ecs.EntityManager
	hammer        ecs.EntityID
	cfg           config.HammerConfig
}

// NewHammerSystem 创建锤子系统及其单例实体
func NewHammerSystem(em *ecs.EntityManager, cfg config.HammerConfig) *HammerSystem {
	return &HammerSystem{
		entityManager: em,
		hammer:        entities.NewHammerEntity(em, cfg.Size),
		cfg:           cfg,
	}
}

// Entity 返回锤子实体ID
func (s *HammerSystem) Entity() ecs.EntityID {
	return s.hammer
}

// MoveTo 更新锤子位置（光标位置）
func (s *HammerSystem) MoveTo(x, y float64) {
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.hammer); ok {
		pos.X = x
		pos.Y = y
	}
}

// Position 返回锤子当前位置
func (s *HammerSystem) Position() (float64, float64) {
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.hammer); ok {
		return pos.X, pos.Y
	}
	return 0, 0
}

// State 返回锤子组件（只读使用）
func (s *HammerSystem) State() *components.HammerComponent {
	h, _ := ecs.GetComponent[*components.HammerComponent](s.entityManager, s.hammer)
	return h
}

// StartSwing 开始挥动；正在挥动时不重新开始
// 返回是否开始了新的挥动
func (s *HammerSystem) StartSwing() bool {
	h := s.State()
	if h == nil || h.IsSwinging {
		return false
	}
	h.IsSwinging = true
	h.SwingProgress = 0
	return true
}

// Update 推进挥动动画
func (s *HammerSystem) Update() {
	h := s.State()
	if h == nil || !h.IsSwinging {
		return
	}

	h.SwingProgress += s.cfg.SwingStep
	h.Rotation = math.Sin(h.SwingProgress) * s.cfg.MaxRotationDeg

	if h.SwingProgress >= math.Pi {
		h.IsSwinging = false
		h.SwingProgress = 0
		h.Rotation = 0
	}
}

// Reset 停止挥动并恢复中立姿态（位置保持不变）
func (s *HammerSystem) Reset() {
	if h := s.State(); h != nil {
		h.IsSwinging = false
		h.SwingProgress = 0
		h.Rotation = 0
	}
}
