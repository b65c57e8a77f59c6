package components

// UIState represents the current state of a UI element (e.g., button).
type UIState int

const (
	// UINormal indicates the UI element is in its default state.
	UINormal UIState = iota
	// UIHovered indicates the mouse cursor is hovering over the UI element.
	UIHovered
	// UIClicked indicates the UI element is being clicked.
	UIClicked
	// UIDisabled indicates the UI element is disabled and cannot be interacted with.
	UIDisabled
)

// ButtonComponent 屏幕按钮（开始 / 暂停 / 重置）
// 位置保存在同一实体的 PositionComponent 中（左上角）
type ButtonComponent struct {
	Label   string
	Width   float64
	Height  float64
	State   UIState
	Enabled bool
	OnClick func()
}
