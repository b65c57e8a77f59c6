package components

import "github.com/decker502/whackamole/pkg/ecs"

// HoleComponent 标识一个洞穴实体
// 洞穴在控制器创建时生成，整局游戏内只修改不销毁
//
// Occupant 为占用该洞穴的地鼠实体ID，0 表示空洞
// 不变量: 任意时刻每个洞穴最多一只地鼠
type HoleComponent struct {
	Index    int // 行优先序号 (row*cols + col)
	Row      int
	Col      int
	Radius   float64
	Occupant ecs.EntityID
}
