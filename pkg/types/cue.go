// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// Cue 标识一个合成音效提示
type Cue int

const (
	// CueHit 击中地鼠
	CueHit Cue = iota
	// CueMiss 挥空
	CueMiss
	// CuePopup 地鼠冒头
	CuePopup
	// CueExplosion 击中后的爆炸
	CueExplosion
)

// AllCues 返回全部音效，按定义顺序
func AllCues() []Cue {
	return []Cue{CueHit, CueMiss, CuePopup, CueExplosion}
}

// String 返回音效在配置文件（audio.cues）中的名称
func (c Cue) String() string {
	switch c {
	case CueHit:
		return "hit"
	case CueMiss:
		return "miss"
	case CuePopup:
		return "popup"
	case CueExplosion:
		return "explosion"
	}
	return "unknown"
}
