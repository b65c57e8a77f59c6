package terminal

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/whackamole/pkg/config"
	"github.com/decker502/whackamole/pkg/game"
)

func newTestRunner(t *testing.T) (*Runner, tcell.SimulationScreen) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init() error: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 25)

	cfg := config.DefaultGameConfig()
	cfg.Spawn.Probability = 0
	controller := game.NewController(cfg, rand.New(rand.NewSource(1)), nil)
	return NewRunner(screen, controller, nil, 1), screen
}

func rowText(screen tcell.SimulationScreen, row int) string {
	cols, _ := screen.Size()
	var b strings.Builder
	for col := 0; col < cols; col++ {
		ch, _, _, _ := screen.GetContent(col, row)
		b.WriteRune(ch)
	}
	return b.String()
}

func TestToWorldMapping(t *testing.T) {
	r, _ := newTestRunner(t)

	if _, _, ok := r.Renderer().ToWorld(5, 0); ok {
		t.Error("the status bar row must not map to the world")
	}

	// 80x24 世界区域：每格 10x25
	x, y, ok := r.Renderer().ToWorld(14, 6)
	if !ok || x != 145 || y != 137.5 {
		t.Errorf("ToWorld(14, 6) = (%v, %v, %v), want (145, 137.5, true)", x, y, ok)
	}
}

func TestKeysDriveController(t *testing.T) {
	r, _ := newTestRunner(t)

	tests := []struct {
		name string
		key  tcell.Key
		ch   rune
		want game.State
		quit bool
	}{
		{"start", tcell.KeyRune, 's', game.StateRunning, false},
		{"pause", tcell.KeyRune, 'p', game.StatePaused, false},
		{"resume", tcell.KeyRune, 'P', game.StateRunning, false},
		{"reset", tcell.KeyRune, 'r', game.StateIdle, false},
		{"start with space", tcell.KeyRune, ' ', game.StateRunning, false},
		{"quit", tcell.KeyRune, 'q', game.StateRunning, true},
		{"escape", tcell.KeyEscape, 0, game.StateRunning, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quit := r.HandleEvent(tcell.NewEventKey(tt.key, tt.ch, tcell.ModNone))
			if quit != tt.quit {
				t.Errorf("quit = %v, want %v", quit, tt.quit)
			}
			if got := r.controller.State(); got != tt.want {
				t.Errorf("state = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestMouseClickHitsMole(t *testing.T) {
	r, _ := newTestRunner(t)
	if err := r.controller.Start(); err != nil {
		t.Fatal(err)
	}
	if _, err := r.controller.SpawnAt(0); err != nil {
		t.Fatal(err)
	}

	// 移动不挥锤
	r.HandleEvent(tcell.NewEventMouse(14, 6, tcell.ButtonNone, tcell.ModNone))
	if r.controller.Hammer().State().IsSwinging {
		t.Fatal("mouse motion must not swing the hammer")
	}

	r.HandleEvent(tcell.NewEventMouse(14, 6, tcell.Button1, tcell.ModNone))
	if got := r.controller.Stats().Score; got != 12 {
		t.Fatalf("score = %d after clicking the mole, want 12", got)
	}

	// 按住拖动不会重复挥锤
	r.HandleEvent(tcell.NewEventMouse(60, 20, tcell.Button1, tcell.ModNone))
	if got := r.controller.Stats().Combo; got != 1 {
		t.Errorf("held button should not click again, combo = %d", got)
	}
}

func TestDrawHUDAndGameOver(t *testing.T) {
	r, screen := newTestRunner(t)
	if err := r.controller.Start(); err != nil {
		t.Fatal(err)
	}

	r.renderer.Draw(r.controller)
	if hud := rowText(screen, 0); !strings.Contains(hud, "Score: 0") || !strings.Contains(hud, "Time: 60") {
		t.Errorf("unexpected HUD: %q", hud)
	}

	for i := 0; i < 60*60; i++ {
		r.controller.Update(1.0 / 60)
	}
	r.renderer.Draw(r.controller)

	_, rows := screen.Size()
	found := false
	for row := 0; row < rows; row++ {
		if strings.Contains(rowText(screen, row), "GAME OVER") {
			found = true
			break
		}
	}
	if !found {
		t.Error("game over panel should be drawn once the round ends")
	}
}

func TestDrawHoleCenterIsBlack(t *testing.T) {
	r, screen := newTestRunner(t)
	r.renderer.Draw(r.controller)

	// 洞穴 0 中心 (150, 150) 位于格子 (15, 6) + 状态栏
	_, _, style, _ := screen.GetContent(15, 6+hudRows)
	_, bg, _ := style.Decompose()
	if bg != tcell.ColorBlack {
		t.Errorf("hole center background = %v, want black", bg)
	}
}
