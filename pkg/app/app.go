// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/whackamole/internal/audio"
	"github.com/decker502/whackamole/pkg/config"
	"github.com/decker502/whackamole/pkg/game"
	"github.com/decker502/whackamole/pkg/scenes"
	"github.com/decker502/whackamole/pkg/utils"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 游戏配置文件路径，为空则使用嵌入的 data/game.yaml
	ConfigPath string
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	scene      scenes.Scene
	settings   *game.SettingsManager
	gameConfig *config.GameConfig
	verbose    bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
// 设置存储和音频不可用时降级运行，只有配置错误会返回 error。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := config.LoadGameConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Seed: %d", seed)

	settings := game.NewSettingsManager(openStorage())

	var sink audio.Sink
	if synth, err := audio.NewSynth(gameConfig.Audio, seed); err != nil {
		log.Printf("[App] Warning: audio disabled: %v", err)
	} else {
		sink = newEbitenSink(synth)
	}
	audioManager := game.NewAudioManager(sink, settings)
	log.Printf("[App] AudioManager initialized")

	controller := game.NewController(gameConfig, rand.New(rand.NewSource(seed)), audioManager)
	scene := scenes.NewGameScene(controller, audioManager, seed)

	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}
	// 锤子就是光标
	if !utils.IsMobile() {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}

	return &App{
		scene:      scene,
		settings:   settings,
		gameConfig: gameConfig,
		verbose:    cfg.Verbose,
	}, nil
}

// openStorage 打开 gdata 存储，失败时返回 nil（设置只保存在内存中）
func openStorage() *gdata.Manager {
	if err := utils.EnsureStorageDir("settings"); err != nil {
		log.Printf("[App] Warning: %v", err)
	}

	manager, err := gdata.Open(gdata.Config{AppName: game.AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, settings will not persist: %v", err)
		return nil
	}
	return manager
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.gameConfig.Screen.Width, a.gameConfig.Screen.Height)
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / float64(a.gameConfig.Round.TicksPerSecond)
	a.scene.Update(deltaTime)
	return nil
}

// toggleFullscreen F11 切换全屏并保存设置
func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)

	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	}

	a.settings.SetFullscreen(fullscreen)
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.scene.Draw(screen)
}

// DrawFinalScreen 控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回固定的逻辑屏幕尺寸，Ebitengine 自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.gameConfig.Screen.Width, a.gameConfig.Screen.Height
}

// WindowSize 窗口初始尺寸
func (a *App) WindowSize() (int, int) {
	return a.gameConfig.Screen.Width, a.gameConfig.Screen.Height
}

// Title 窗口标题
func (a *App) Title() string {
	return a.gameConfig.Screen.Title
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
