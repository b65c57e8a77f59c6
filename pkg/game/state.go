package game

import "errors"

// State 游戏状态
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateEnded
)

// String 返回状态名称（用于日志和错误信息）
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// ErrInvalidTransition 当前状态不允许该操作
var ErrInvalidTransition = errors.New("invalid state transition")

// Stats 当前局面的显示数据
type Stats struct {
	State       State
	Score       int
	Combo       int
	MaxCombo    int
	TimeLeft    float64 // 秒
	SecondsLeft int     // 显示用整数秒
}

// Result 一局结束时冻结的结果
type Result struct {
	FinalScore int
	MaxCombo   int
}
