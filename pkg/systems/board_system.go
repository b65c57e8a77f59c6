package systems

import (
	"fmt"

	"github.com/decker502/whackamole/pkg/components"
	"github.com/decker502/whackamole/pkg/config"
	"github.com/decker502/whackamole/pkg/ecs"
	"github.com/decker502/whackamole/pkg/entities"
)

// BoardSystem 管理洞穴网格的占用状态
// 负责跟踪哪些洞穴已有地鼠，并提供查询和更新方法
type BoardSystem struct {
	entityManager *ecs.EntityManager
	holes         []ecs.EntityID // 行优先顺序
}

// NewBoardSystem 创建洞穴网格并生成全部洞穴实体
func NewBoardSystem(em *ecs.EntityManager, board config.BoardConfig) *BoardSystem {
	s := &BoardSystem{
		entityManager: em,
		holes:         make([]ecs.EntityID, 0, board.Rows*board.Cols),
	}
	for row := 0; row < board.Rows; row++ {
		for col := 0; col < board.Cols; col++ {
			s.holes = append(s.holes, entities.NewHoleEntity(em, board, row, col))
		}
	}
	return s
}

// Holes 返回全部洞穴实体（行优先）
func (s *BoardSystem) Holes() []ecs.EntityID {
	return s.holes
}

// HoleAt 按行优先序号返回洞穴实体
func (s *BoardSystem) HoleAt(index int) (ecs.EntityID, error) {
	if index < 0 || index >= len(s.holes) {
		return 0, fmt.Errorf("invalid hole index %d (valid range: 0-%d)", index, len(s.holes)-1)
	}
	return s.holes[index], nil
}

// IsOccupied 检查洞穴是否已有地鼠
// 无法获取组件的实体视为"已占用"，防止在非洞穴上生成
func (s *BoardSystem) IsOccupied(hole ecs.EntityID) bool {
	comp, ok := ecs.GetComponent[*components.HoleComponent](s.entityManager, hole)
	if !ok {
		return true
	}
	return comp.Occupant != 0
}

// Occupy 标记洞穴被指定地鼠占用
// 返回:
//   - error: 如果实体不是洞穴或洞穴已被占用
func (s *BoardSystem) Occupy(hole, mole ecs.EntityID) error {
	comp, ok := ecs.GetComponent[*components.HoleComponent](s.entityManager, hole)
	if !ok {
		return fmt.Errorf("entity %d is not a hole", hole)
	}
	if comp.Occupant != 0 {
		return fmt.Errorf("hole %d is already occupied by entity %d", comp.Index, comp.Occupant)
	}
	comp.Occupant = mole
	return nil
}

// Release 清空洞穴占用状态
// 只有当前占用者才能释放，避免迟到的释放误清新地鼠
func (s *BoardSystem) Release(hole, mole ecs.EntityID) {
	comp, ok := ecs.GetComponent[*components.HoleComponent](s.entityManager, hole)
	if !ok {
		return
	}
	if comp.Occupant == mole {
		comp.Occupant = 0
	}
}

// FreeHoles 返回当前所有空洞穴（行优先）
func (s *BoardSystem) FreeHoles() []ecs.EntityID {
	free := make([]ecs.EntityID, 0, len(s.holes))
	for _, id := range s.holes {
		if !s.IsOccupied(id) {
			free = append(free, id)
		}
	}
	return free
}

// ClearAll 清空所有洞穴的占用状态（开始/重置游戏时调用）
func (s *BoardSystem) ClearAll() {
	for _, id := range s.holes {
		if comp, ok := ecs.GetComponent[*components.HoleComponent](s.entityManager, id); ok {
			comp.Occupant = 0
		}
	}
}
