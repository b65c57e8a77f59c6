package components

// LifetimeComponent 管理实体的生命周期（单位: tick）
// 用于自动清理存在时间有限的实体(如地鼠、爆炸、粒子)
type LifetimeComponent struct {
	Remaining float64 // 剩余帧数
	Total     float64 // 初始帧数
	IsExpired bool    // 是否已过期
}

// ElapsedFraction 返回已消耗的生命比例 [0, 1]
func (l *LifetimeComponent) ElapsedFraction() float64 {
	if l.Total <= 0 {
		return 1
	}
	f := 1 - l.Remaining/l.Total
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
