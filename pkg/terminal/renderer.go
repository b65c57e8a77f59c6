// Package terminal 在终端中运行打地鼠（tcell 绘制 + 鼠标输入）
//
// 世界坐标（默认 800x600）按比例映射到终端字符格，第一行留给状态栏。
package terminal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/whackamole/pkg/components"
	"github.com/decker502/whackamole/pkg/ecs"
	"github.com/decker502/whackamole/pkg/game"
	"github.com/decker502/whackamole/pkg/utils"
)

// hudRows 顶部状态栏占用的行数
const hudRows = 1

var (
	styleDirt      = tcell.StyleDefault.Background(tcell.NewRGBColor(0x8B, 0x45, 0x13))
	styleGrass     = styleDirt.Foreground(tcell.NewRGBColor(0x22, 0x8B, 0x22))
	styleHole      = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleHoleRim   = styleDirt.Foreground(tcell.NewRGBColor(0x65, 0x43, 0x21))
	styleMole      = tcell.StyleDefault.Background(tcell.NewRGBColor(0x8B, 0x45, 0x13)).Foreground(tcell.ColorBlack)
	styleMoleNose  = styleMole.Foreground(tcell.NewRGBColor(0xFF, 0x69, 0xB4))
	styleExplosion = tcell.StyleDefault.Background(tcell.NewRGBColor(0xFF, 0x45, 0x00)).Foreground(tcell.NewRGBColor(0xFF, 0xD7, 0x00))
	styleCore      = tcell.StyleDefault.Background(tcell.NewRGBColor(0xFF, 0xD7, 0x00)).Foreground(tcell.NewRGBColor(0xFF, 0x45, 0x00))
	styleHammer    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xE0, 0xE0, 0xE0)).Bold(true)
	styleHUD       = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	stylePanel     = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorYellow)
)

// Renderer 把 Controller 的世界画到 tcell 屏幕上
type Renderer struct {
	screen      tcell.Screen
	worldWidth  float64
	worldHeight float64
	grassSeed   int64
}

// NewRenderer 创建终端渲染器
func NewRenderer(screen tcell.Screen, worldWidth, worldHeight float64, grassSeed int64) *Renderer {
	return &Renderer{
		screen:      screen,
		worldWidth:  worldWidth,
		worldHeight: worldHeight,
		grassSeed:   grassSeed,
	}
}

// Grid 当前终端尺寸下的世界网格（不含状态栏）
func (r *Renderer) Grid() utils.Grid {
	cols, rows := r.screen.Size()
	return utils.NewScreenGrid(r.worldWidth, r.worldHeight, cols, rows-hudRows)
}

// ToWorld 将终端格子坐标转换为世界坐标（格子中心）
// 状态栏上的坐标返回 ok=false
func (r *Renderer) ToWorld(col, row int) (x, y float64, ok bool) {
	if row < hudRows {
		return 0, 0, false
	}
	g := r.Grid()
	x, y = g.CellCenter(col, row-hudRows)
	return x, y, true
}

// Draw 绘制一帧
func (r *Renderer) Draw(c *game.Controller) {
	r.screen.Clear()
	g := r.Grid()
	em := c.Entities()

	r.drawBackground(g)
	r.drawHoles(g, em)
	r.drawMoles(g, em)
	r.drawExplosions(g, em)
	r.drawParticles(g, em)
	r.drawHammer(g, c)
	r.drawHUD(c)
	r.drawGameOver(c)

	r.screen.Show()
}

// drawBackground 泥土底色 + 固定种子的草叶
func (r *Renderer) drawBackground(g utils.Grid) {
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Columns; col++ {
			r.screen.SetContent(col, row+hudRows, ' ', nil, styleDirt)
		}
	}

	rng := rand.New(rand.NewSource(r.grassSeed))
	blades := g.Columns * g.Rows / 20
	for i := 0; i < blades; i++ {
		r.screen.SetContent(rng.Intn(g.Columns), rng.Intn(g.Rows)+hudRows, '"', nil, styleGrass)
	}
}

func (r *Renderer) drawHoles(g utils.Grid, em *ecs.EntityManager) {
	for _, id := range ecs.GetEntitiesWith2[*components.HoleComponent, *components.PositionComponent](em) {
		hole, _ := ecs.GetComponent[*components.HoleComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

		r.fillDisc(g, pos.X, pos.Y, hole.Radius+g.CellWidth/2, '░', styleHoleRim)
		r.fillDisc(g, pos.X, pos.Y, hole.Radius, ' ', styleHole)
	}
}

func (r *Renderer) drawMoles(g utils.Grid, em *ecs.EntityManager) {
	for _, id := range ecs.GetEntitiesWith2[*components.MoleComponent, *components.PositionComponent](em) {
		mole, _ := ecs.GetComponent[*components.MoleComponent](em, id)
		if !mole.Visible || em.IsMarkedForDestruction(id) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		y := pos.Y - math.Min(mole.PopupProgress, 1)*40

		r.fillDisc(g, pos.X, y, 30, ' ', styleMole)
		r.setWorld(g, pos.X-10, y-10, 'o', styleMole)
		r.setWorld(g, pos.X+10, y-10, 'o', styleMole)
		r.setWorld(g, pos.X, y, '*', styleMoleNose)
	}
}

func (r *Renderer) drawExplosions(g utils.Grid, em *ecs.EntityManager) {
	for _, id := range ecs.GetEntitiesWith2[*components.ExplosionComponent, *components.PositionComponent](em) {
		exp, _ := ecs.GetComponent[*components.ExplosionComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

		r.fillDisc(g, pos.X, pos.Y, exp.Radius, '#', styleExplosion)
		r.fillDisc(g, pos.X, pos.Y, exp.Radius*0.6, '@', styleCore)
	}
}

func (r *Renderer) drawParticles(g utils.Grid, em *ecs.EntityManager) {
	for _, id := range ecs.GetEntitiesWith2[*components.ParticleComponent, *components.PositionComponent](em) {
		p, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

		style := styleDirt.Foreground(tcell.NewRGBColor(int32(p.Color.R), int32(p.Color.G), int32(p.Color.B)))
		r.setWorld(g, pos.X, pos.Y, '•', style)
	}
}

// drawHammer 锤子用字符表示挥动方向
func (r *Renderer) drawHammer(g utils.Grid, c *game.Controller) {
	hammer := c.Hammer()
	x, y := hammer.Position()

	glyph := 'T'
	if state := hammer.State(); state != nil && state.IsSwinging {
		switch {
		case state.Rotation > 30:
			glyph = '\\'
		case state.Rotation > 10:
			glyph = '>'
		}
	}
	r.setWorld(g, x, y, glyph, styleHammer)
}

func (r *Renderer) drawHUD(c *game.Controller) {
	stats := c.Stats()
	cols, _ := r.screen.Size()
	for col := 0; col < cols; col++ {
		r.screen.SetContent(col, 0, ' ', nil, styleHUD)
	}

	text := fmt.Sprintf("Score: %d  Time: %d  Combo: %d  [%s]  S:start P:pause R:reset M:mute Q:quit",
		stats.Score, stats.SecondsLeft, stats.Combo, stats.State)
	r.drawText(0, 0, text, styleHUD)
}

func (r *Renderer) drawGameOver(c *game.Controller) {
	result, ended := c.Result()
	if !ended {
		return
	}

	lines := []string{
		"  GAME OVER  ",
		fmt.Sprintf("  Final score: %d  ", result.FinalScore),
		fmt.Sprintf("  Max combo: %d  ", result.MaxCombo),
		"  R to reset  ",
	}
	cols, rows := r.screen.Size()
	top := rows/2 - len(lines)/2
	for i, line := range lines {
		r.drawText(cols/2-len(line)/2, top+i, line, stylePanel)
	}
}

// fillDisc 填充圆心 (cx, cy)、半径 radius（世界坐标）内的所有格子
func (r *Renderer) fillDisc(g utils.Grid, cx, cy, radius float64, ch rune, style tcell.Style) {
	if radius <= 0 {
		return
	}
	minCol, minRow := clampCell(g, cx-radius, cy-radius)
	maxCol, maxRow := clampCell(g, cx+radius, cy+radius)

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			x, y := g.CellCenter(col, row)
			if math.Hypot(x-cx, y-cy) < radius {
				r.screen.SetContent(col, row+hudRows, ch, nil, style)
			}
		}
	}
}

// setWorld 在世界坐标所在格子放置一个字符
func (r *Renderer) setWorld(g utils.Grid, x, y float64, ch rune, style tcell.Style) {
	if col, row, ok := g.ScreenToCell(x, y); ok {
		r.screen.SetContent(col, row+hudRows, ch, nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// clampCell 世界坐标对应的格子，超出范围时夹到边界
func clampCell(g utils.Grid, x, y float64) (int, int) {
	col := int(math.Floor((x - g.OriginX) / g.CellWidth))
	row := int(math.Floor((y - g.OriginY) / g.CellHeight))
	col = max(0, min(col, g.Columns-1))
	row = max(0, min(row, g.Rows-1))
	return col, row
}
