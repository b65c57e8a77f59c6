package components

// HammerComponent 锤子状态（单例实体）
// 位置跟随光标，保存在同一实体的 PositionComponent 中
type HammerComponent struct {
	Size          float64
	Rotation      float64 // 当前旋转角度（度）
	IsSwinging    bool
	SwingProgress float64 // 挥动进度（弧度），超过 π 时结束
}
