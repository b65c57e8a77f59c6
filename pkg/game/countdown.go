package game

import "math"

// epsilon 吸收逐帧累加 1/60 秒产生的浮点误差
const epsilon = 1e-9

// Countdown 回合倒计时
//
// 由运行中的帧时间累加驱动（Advance），不依赖独立的定时器协程，
// 暂停期间不调用 Advance 即不会计时。
type Countdown struct {
	duration float64 // 秒
	elapsed  float64
	running  bool
}

// NewCountdown 创建一个 seconds 秒的倒计时（未启动）
func NewCountdown(seconds float64) *Countdown {
	return &Countdown{duration: seconds}
}

// Start 从头开始计时
func (c *Countdown) Start() {
	c.elapsed = 0
	c.running = true
}

// Stop 停止计时，保留已用时间
func (c *Countdown) Stop() {
	c.running = false
}

// Resume 继续计时；已到时则保持停止
func (c *Countdown) Resume() {
	if !c.Expired() {
		c.running = true
	}
}

// Reset 停止并恢复到满时长
func (c *Countdown) Reset() {
	c.elapsed = 0
	c.running = false
}

// Advance 推进 dt 秒，返回本次调用是否恰好到时
func (c *Countdown) Advance(dt float64) bool {
	if !c.running || dt <= 0 {
		return false
	}

	c.elapsed += dt
	if c.elapsed >= c.duration-epsilon {
		c.elapsed = c.duration
		c.running = false
		return true
	}
	return false
}

// Running 是否正在计时
func (c *Countdown) Running() bool {
	return c.running
}

// Expired 是否已到时
func (c *Countdown) Expired() bool {
	return c.elapsed >= c.duration-epsilon
}

// TimeLeft 剩余秒数（浮点）
func (c *Countdown) TimeLeft() float64 {
	left := c.duration - c.elapsed
	if left < 0 {
		return 0
	}
	return left
}

// SecondsLeft 用于显示的整数秒（向上取整，开局显示满时长）
func (c *Countdown) SecondsLeft() int {
	return int(math.Ceil(c.TimeLeft() - epsilon))
}
