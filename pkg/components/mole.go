package components

import "github.com/decker502/whackamole/pkg/ecs"

// MoleComponent 地鼠数据
// 生命周期由同一实体上的 LifetimeComponent 负责
type MoleComponent struct {
	Hole          ecs.EntityID // 所在洞穴
	Visible       bool         // 是否可被击中
	PopupProgress float64      // 弹出动画进度 [0, 1]，单调不减
}
