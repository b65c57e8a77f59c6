package systems

import (
	"log"

	"github.com/decker502/whackamole/pkg/components"
	"github.com/decker502/whackamole/pkg/config"
	"github.com/decker502/whackamole/pkg/ecs"
)

// MoleSystem 推进地鼠弹出动画并处理逃走的地鼠
// 逃走（寿命耗尽未被击中）与挥空同等处罚：连击归零
type MoleSystem struct {
	entityManager *ecs.EntityManager
	board         *BoardSystem
	score         *ScoreSystem
	popupStep     float64
}

// NewMoleSystem 创建地鼠更新系统
func NewMoleSystem(em *ecs.EntityManager, board *BoardSystem, score *ScoreSystem, cfg config.SpawnConfig) *MoleSystem {
	return &MoleSystem{
		entityManager: em,
		board:         board,
		score:         score,
		popupStep:     cfg.PopupStep,
	}
}

// Update 更新所有地鼠，返回本帧逃走的地鼠数量
func (s *MoleSystem) Update() int {
	escaped := 0
	moles := ecs.GetEntitiesWith2[*components.MoleComponent, *components.LifetimeComponent](s.entityManager)

	for _, id := range moles {
		if s.entityManager.IsMarkedForDestruction(id) {
			continue
		}
		mole, _ := ecs.GetComponent[*components.MoleComponent](s.entityManager, id)
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)

		if mole.PopupProgress < 1 {
			mole.PopupProgress += s.popupStep
			if mole.PopupProgress > 1 {
				mole.PopupProgress = 1
			}
		}

		if lifetime.IsExpired {
			mole.Visible = false
			s.entityManager.DestroyEntity(id)
			s.board.Release(mole.Hole, id)
			s.score.ResetCombo()
			escaped++
			log.Printf("[MoleSystem] Mole %d escaped, combo reset", id)
		}
	}

	return escaped
}
