package components

// ExplosionComponent 击中地鼠时的爆炸效果
// 半径随已消耗生命比例线性增长: Radius = f * MaxRadius
type ExplosionComponent struct {
	Radius    float64
	MaxRadius float64
}
