package scenes

import (
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/whackamole/pkg/ecs"
	"github.com/decker502/whackamole/pkg/entities"
	"github.com/decker502/whackamole/pkg/game"
	"github.com/decker502/whackamole/pkg/systems"
)

// 按钮标签
const (
	ButtonStart = "Start"
	ButtonPause = "Pause"
	ButtonReset = "Reset"
)

// 按钮布局（右上角一排）
const (
	buttonWidth   = 90.0
	buttonHeight  = 30.0
	buttonGap     = 10.0
	buttonTop     = 10.0
	buttonRightX  = 790.0
	buttonsInARow = 3
)

// GameScene 打地鼠主场景
// 负责把 ebiten 的输入转交给 Controller，并把 Controller 的世界画到屏幕上
type GameScene struct {
	controller *game.Controller
	audio      *game.AudioManager

	// UI 实体与世界实体分开管理，重开一局不会影响按钮
	uiEntities   *ecs.EntityManager
	buttonSystem *systems.ButtonSystem

	background *ebiten.Image // 泥土 + 草地，只生成一次
	hammerImg  *ebiten.Image

	pointer Pointer
}

// NewGameScene 创建游戏场景
//
// 参数：
//   - controller: 游戏控制器
//   - audio: 音效管理器，用于 M 键静音，可为 nil
//   - seed: 草地纹理随机种子
func NewGameScene(controller *game.Controller, audio *game.AudioManager, seed int64) *GameScene {
	s := &GameScene{
		controller: controller,
		audio:      audio,
		uiEntities: ecs.NewEntityManager(),
	}
	s.buttonSystem = systems.NewButtonSystem(s.uiEntities)

	cfg := controller.Config()
	s.background = newBackground(cfg.Screen.Width, cfg.Screen.Height, rand.New(rand.NewSource(seed)))
	s.hammerImg = newHammerImage()

	s.initButtons()
	s.syncButtons()

	controller.OnStateChange(func(from, to game.State) {
		s.syncButtons()
	})

	return s
}

// initButtons 创建开始/暂停/重置按钮
func (s *GameScene) initButtons() {
	labels := []string{ButtonStart, ButtonPause, ButtonReset}
	actions := []func(){s.onStart, s.onPause, s.onReset}

	x := buttonRightX - buttonsInARow*buttonWidth - (buttonsInARow-1)*buttonGap
	for i, label := range labels {
		entities.NewButtonEntity(s.uiEntities, label, x, buttonTop, buttonWidth, buttonHeight, actions[i])
		x += buttonWidth + buttonGap
	}
}

// syncButtons 按当前状态启用/禁用按钮
func (s *GameScene) syncButtons() {
	state := s.controller.State()
	s.buttonSystem.SetEnabled(ButtonStart, state != game.StateEnded)
	s.buttonSystem.SetEnabled(ButtonPause, state == game.StateRunning || state == game.StatePaused)
	s.buttonSystem.SetEnabled(ButtonReset, true)
}

func (s *GameScene) onStart() {
	if err := s.controller.Start(); err != nil {
		log.Printf("[GameScene] Start rejected: %v", err)
	}
}

func (s *GameScene) onPause() {
	if err := s.controller.Pause(); err != nil {
		log.Printf("[GameScene] Pause rejected: %v", err)
	}
}

func (s *GameScene) onReset() {
	s.controller.Reset()
}

// Update 处理输入并推进一帧
func (s *GameScene) Update(deltaTime float64) {
	s.handleKeys()

	p := s.pointer.Poll()
	overButton := s.buttonSystem.Update(p.X, p.Y, p.Pressed, p.JustReleased)

	s.controller.MoveCursor(p.X, p.Y)
	if p.JustPressed && !overButton {
		s.controller.Click(p.X, p.Y)
	}

	s.controller.Update(deltaTime)
}

// handleKeys 键盘快捷键
func (s *GameScene) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyS), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		s.onStart()
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		s.onPause()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		s.onReset()
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		if s.audio != nil {
			s.audio.ToggleMute()
		}
	}
}

// Draw 绘制整个场景
// 层次：背景 → 洞穴 → 地鼠 → 爆炸 → 粒子 → 锤子 → UI
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.DrawImage(s.background, nil)

	em := s.controller.Entities()
	drawHoles(screen, em)
	drawMoles(screen, em)
	drawExplosions(screen, em)
	drawParticles(screen, em)
	s.drawHammer(screen)

	s.drawHUD(screen)
	s.drawButtons(screen)
	s.drawGameOver(screen)
}
