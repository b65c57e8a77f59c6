package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerState 一帧内的指针（鼠标或触摸）状态
type PointerState struct {
	X, Y         float64
	Pressed      bool // 当前是否按住
	JustPressed  bool // 本帧刚按下，锤子在这一帧挥出
	JustReleased bool // 本帧刚松开，按钮在松开时触发
	Touch        bool
}

// Pointer 把鼠标和触摸统一成一个指针
// 触摸优先；记住最后一次触摸位置，手指抬起的那一帧仍能报告释放坐标
type Pointer struct {
	wasPressed bool
	lastX      float64
	lastY      float64
}

// Poll 读取当前帧的指针状态，每帧只调用一次
func (p *Pointer) Poll() PointerState {
	var st PointerState

	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		st.X, st.Y = float64(x), float64(y)
		st.Pressed = true
		st.Touch = true
		st.JustPressed = len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
	} else if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		st.X, st.Y = p.lastX, p.lastY
		st.Touch = true
	} else {
		x, y := ebiten.CursorPosition()
		st.X, st.Y = float64(x), float64(y)
		st.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		st.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	}

	st.JustReleased = p.wasPressed && !st.Pressed
	p.wasPressed = st.Pressed
	p.lastX, p.lastY = st.X, st.Y
	return st
}
