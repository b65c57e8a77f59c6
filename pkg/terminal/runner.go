package terminal

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/whackamole/pkg/game"
)

// Runner 终端版主循环
//
// 只有 Run 所在的 goroutine 访问 Controller：
// PollEvent 在单独的 goroutine 中阻塞读取，通过 channel 把事件交给主循环，
// 主循环同时按固定频率推进逻辑帧并重绘。
type Runner struct {
	screen     tcell.Screen
	controller *game.Controller
	renderer   *Renderer
	audio      *game.AudioManager // 可为 nil
	tickRate   int

	leftDown bool // 上一次鼠标事件时左键是否按住
}

// NewRunner 创建终端主循环
func NewRunner(screen tcell.Screen, controller *game.Controller, audio *game.AudioManager, grassSeed int64) *Runner {
	cfg := controller.Config()
	return &Runner{
		screen:     screen,
		controller: controller,
		renderer:   NewRenderer(screen, float64(cfg.Screen.Width), float64(cfg.Screen.Height), grassSeed),
		audio:      audio,
		tickRate:   cfg.Round.TicksPerSecond,
	}
}

// Renderer 返回渲染器
func (r *Runner) Renderer() *Renderer {
	return r.renderer
}

// Run 运行直到用户退出或 ctx 取消
// 调用方负责在返回后调用 screen.Fini()
func (r *Runner) Run(ctx context.Context) error {
	r.screen.EnableMouse()
	r.screen.HideCursor()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)

	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return // screen 已 Fini
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	dt := 1.0 / float64(r.tickRate)
	ticker := time.NewTicker(time.Second / time.Duration(r.tickRate))
	defer ticker.Stop()

	r.renderer.Draw(r.controller)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if r.HandleEvent(ev) {
				log.Printf("[Terminal] Quit requested")
				return nil
			}
		case <-ticker.C:
			r.controller.Update(dt)
			r.renderer.Draw(r.controller)
		}
	}
}

// HandleEvent 处理一个终端事件，返回是否请求退出
func (r *Runner) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return r.handleKey(ev)
	case *tcell.EventMouse:
		r.handleMouse(ev)
	case *tcell.EventResize:
		r.screen.Sync()
	}
	return false
}

func (r *Runner) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return true
	case 's', 'S', ' ':
		if err := r.controller.Start(); err != nil {
			log.Printf("[Terminal] Start rejected: %v", err)
		}
	case 'p', 'P':
		if err := r.controller.Pause(); err != nil {
			log.Printf("[Terminal] Pause rejected: %v", err)
		}
	case 'r', 'R':
		r.controller.Reset()
	case 'm', 'M':
		if r.audio != nil {
			r.audio.ToggleMute()
		}
	}
	return false
}

// handleMouse 移动光标；左键从松开变为按下时挥锤
func (r *Runner) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0
	justPressed := down && !r.leftDown
	r.leftDown = down

	x, y, ok := r.renderer.ToWorld(col, row)
	if !ok {
		return
	}

	r.controller.MoveCursor(x, y)
	if justPressed {
		r.controller.Click(x, y)
	}
}
