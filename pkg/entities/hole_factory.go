package entities

import (
	"github.com/decker502/whackamole/pkg/components"
	"github.com/decker502/whackamole/pkg/config"
	"github.com/decker502/whackamole/pkg/ecs"
)

// NewHoleEntity 创建一个洞穴实体
// 洞穴中心: x = OriginX + col*SpacingX, y = OriginY + row*SpacingY
func NewHoleEntity(em *ecs.EntityManager, board config.BoardConfig, row, col int) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{
		X: board.OriginX + float64(col)*board.SpacingX,
		Y: board.OriginY + float64(row)*board.SpacingY,
	})
	em.AddComponent(id, &components.HoleComponent{
		Index:  row*board.Cols + col,
		Row:    row,
		Col:    col,
		Radius: board.HoleRadius,
	})

	return id
}
