package scenes

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/whackamole/pkg/components"
	"github.com/decker502/whackamole/pkg/ecs"
)

var (
	colorDirt        = color.RGBA{R: 0x8B, G: 0x45, B: 0x13, A: 0xFF}
	colorGrass       = color.RGBA{R: 0x22, G: 0x8B, B: 0x22, A: 0xFF}
	colorHoleRim     = color.RGBA{R: 0x65, G: 0x43, B: 0x21, A: 0xFF}
	colorMoleBody    = color.RGBA{R: 0x8B, G: 0x45, B: 0x13, A: 0xFF}
	colorMoleNose    = color.RGBA{R: 0xFF, G: 0x69, B: 0xB4, A: 0xFF}
	colorMoleEar     = color.RGBA{R: 0x65, G: 0x43, B: 0x21, A: 0xFF}
	colorExplosion   = color.RGBA{R: 0xFF, G: 0x45, B: 0x00, A: 0xFF}
	colorExplosionIn = color.RGBA{R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF}
	colorHandle      = color.RGBA{R: 0x8B, G: 0x45, B: 0x13, A: 0xFF}
	colorHead        = color.RGBA{R: 0xC0, G: 0xC0, B: 0xC0, A: 0xFF}
	colorHighlight   = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
)

const (
	moleRise       = 40.0 // 完全弹出时上升的像素
	moleBodyRadius = 30.0
	particleRadius = 3.0

	// 锤子图片内 (0,0) 局部原点的位置
	hammerPivotX = 25.0
	hammerPivotY = 30.0
)

// drawHoles 洞穴：黑色圆 + 5px 棕色边
func drawHoles(screen *ebiten.Image, em *ecs.EntityManager) {
	for _, id := range ecs.GetEntitiesWith2[*components.HoleComponent, *components.PositionComponent](em) {
		hole, _ := ecs.GetComponent[*components.HoleComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

		x, y, r := float32(pos.X), float32(pos.Y), float32(hole.Radius)
		vector.DrawFilledCircle(screen, x, y, r, color.Black, true)
		vector.StrokeCircle(screen, x, y, r, 5, colorHoleRim, true)
	}
}

// drawMoles 地鼠随弹出进度从洞口升起
func drawMoles(screen *ebiten.Image, em *ecs.EntityManager) {
	for _, id := range ecs.GetEntitiesWith2[*components.MoleComponent, *components.PositionComponent](em) {
		mole, _ := ecs.GetComponent[*components.MoleComponent](em, id)
		if !mole.Visible || em.IsMarkedForDestruction(id) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

		x := float32(pos.X)
		y := float32(pos.Y - math.Min(mole.PopupProgress, 1)*moleRise)

		vector.DrawFilledCircle(screen, x, y, moleBodyRadius, colorMoleBody, true)
		vector.DrawFilledCircle(screen, x-10, y-10, 5, color.Black, true)
		vector.DrawFilledCircle(screen, x+10, y-10, 5, color.Black, true)
		vector.DrawFilledCircle(screen, x, y, 3, colorMoleNose, true)
		vector.DrawFilledCircle(screen, x-20, y-20, 8, colorMoleEar, true)
		vector.DrawFilledCircle(screen, x+20, y-20, 8, colorMoleEar, true)
	}
}

// drawExplosions 外圈橙红、内圈金色，随剩余寿命淡出
func drawExplosions(screen *ebiten.Image, em *ecs.EntityManager) {
	for _, id := range ecs.GetEntitiesWith3[*components.ExplosionComponent, *components.PositionComponent, *components.LifetimeComponent](em) {
		exp, _ := ecs.GetComponent[*components.ExplosionComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		life, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)

		alpha := (1 - life.ElapsedFraction()) * 0.5
		x, y := float32(pos.X), float32(pos.Y)
		vector.DrawFilledCircle(screen, x, y, float32(exp.Radius), withAlpha(colorExplosion, alpha), true)
		vector.DrawFilledCircle(screen, x, y, float32(exp.Radius*0.6), withAlpha(colorExplosionIn, alpha), true)
	}
}

// drawParticles 碎屑粒子，随剩余寿命淡出
func drawParticles(screen *ebiten.Image, em *ecs.EntityManager) {
	for _, id := range ecs.GetEntitiesWith3[*components.ParticleComponent, *components.PositionComponent, *components.LifetimeComponent](em) {
		p, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		life, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)

		alpha := 1 - life.ElapsedFraction()
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), particleRadius, withAlpha(p.Color, alpha), true)
	}
}

// drawHammer 以光标为原点、按挥动角度旋转绘制锤子
func (s *GameScene) drawHammer(screen *ebiten.Image) {
	hammer := s.controller.Hammer()
	x, y := hammer.Position()
	state := hammer.State()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-hammerPivotX, -hammerPivotY)
	if state != nil {
		op.GeoM.Rotate(state.Rotation * math.Pi / 180)
	}
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(s.hammerImg, op)
}

// newHammerImage 预渲染锤子：柄、锤头、高光
// 局部坐标 (-25..25, -30..60)，图片原点偏移 (hammerPivotX, hammerPivotY)
func newHammerImage() *ebiten.Image {
	img := ebiten.NewImage(50, 90)
	px, py := float32(hammerPivotX), float32(hammerPivotY)

	vector.DrawFilledRect(img, px-5, py, 10, 60, colorHandle, false)
	vector.DrawFilledRect(img, px-25, py-30, 50, 25, colorHead, false)
	vector.DrawFilledRect(img, px-20, py-25, 15, 5, colorHighlight, false)
	return img
}

// withAlpha 按比例缩放颜色透明度（预乘 alpha）
func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
