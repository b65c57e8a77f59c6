package scenes

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// grassBlades 草叶数量
const grassBlades = 100

// newBackground 生成泥土底色 + 随机草叶纹理
// 只在创建场景时生成一次，避免每帧重新随机造成闪烁
func newBackground(width, height int, rng *rand.Rand) *ebiten.Image {
	img := ebiten.NewImage(width, height)
	img.Fill(colorDirt)

	for i := 0; i < grassBlades; i++ {
		x := float32(rng.Float64() * float64(width))
		y := float32(rng.Float64() * float64(height))
		vector.DrawFilledRect(img, x, y, 2, 8, colorGrass, false)
	}
	return img
}
