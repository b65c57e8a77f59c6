package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/whackamole/pkg/components"
	"github.com/decker502/whackamole/pkg/ecs"
	"github.com/decker502/whackamole/pkg/game"
)

var (
	colorButtonNormal   = color.RGBA{R: 0x4C, G: 0xAF, B: 0x50, A: 0xFF}
	colorButtonHovered  = color.RGBA{R: 0x66, G: 0xBB, B: 0x6A, A: 0xFF}
	colorButtonClicked  = color.RGBA{R: 0x38, G: 0x8E, B: 0x3C, A: 0xFF}
	colorButtonDisabled = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
	colorPanel          = color.RGBA{R: 0, G: 0, B: 0, A: 0xB0}
	colorPanelBorder    = color.RGBA{R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF}
)

// drawHUD 左上角显示分数、时间、连击
func (s *GameScene) drawHUD(screen *ebiten.Image) {
	stats := s.controller.Stats()

	lines := []string{
		fmt.Sprintf("Score: %d", stats.Score),
		fmt.Sprintf("Time:  %d", stats.SecondsLeft),
		fmt.Sprintf("Combo: %d", stats.Combo),
	}
	switch stats.State {
	case game.StateIdle:
		lines = append(lines, "Press Start (S) to play")
	case game.StatePaused:
		lines = append(lines, "Paused (P to resume)")
	}
	if s.audio != nil && !s.audio.SoundEnabled() {
		lines = append(lines, "Muted (M)")
	}

	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 10, 10+i*16)
	}
}

// drawButtons 绘制屏幕按钮
func (s *GameScene) drawButtons(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.uiEntities) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.uiEntities, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.uiEntities, id)

		label := button.Label
		if label == ButtonPause && s.controller.State() == game.StatePaused {
			label = "Resume"
		}

		x, y := float32(pos.X), float32(pos.Y)
		w, h := float32(button.Width), float32(button.Height)
		vector.DrawFilledRect(screen, x, y, w, h, buttonColor(button.State), false)
		vector.StrokeRect(screen, x, y, w, h, 1, color.White, false)

		// DebugPrint 字符宽 6px、高 16px
		tx := int(pos.X + button.Width/2 - float64(len(label)*6)/2)
		ty := int(pos.Y + button.Height/2 - 8)
		ebitenutil.DebugPrintAt(screen, label, tx, ty)
	}
}

func buttonColor(state components.UIState) color.RGBA {
	switch state {
	case components.UIHovered:
		return colorButtonHovered
	case components.UIClicked:
		return colorButtonClicked
	case components.UIDisabled:
		return colorButtonDisabled
	default:
		return colorButtonNormal
	}
}

// drawGameOver 一局结束后的结算面板
func (s *GameScene) drawGameOver(screen *ebiten.Image) {
	result, ended := s.controller.Result()
	if !ended {
		return
	}

	cfg := s.controller.Config()
	const w, h = 320.0, 150.0
	x := (float64(cfg.Screen.Width) - w) / 2
	y := (float64(cfg.Screen.Height) - h) / 2

	vector.DrawFilledRect(screen, float32(x), float32(y), w, h, colorPanel, false)
	vector.StrokeRect(screen, float32(x), float32(y), w, h, 3, colorPanelBorder, false)

	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("Final score: %d", result.FinalScore),
		fmt.Sprintf("Max combo:   %d", result.MaxCombo),
		"",
		"Press Reset (R) to play again",
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, int(x)+20, int(y)+15+i*20)
	}
}
