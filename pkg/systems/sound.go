package systems

import "github.com/decker502/whackamole/pkg/types"

// SoundPlayer 音效播放接口
// 实现必须是即发即忘的：不阻塞、不返回错误（失败由实现方记录日志）
type SoundPlayer interface {
	PlayCue(cue types.Cue)
}

// nopSound 静音实现，用于未注入音频的场景（如测试、无头模拟）
type nopSound struct{}

func (nopSound) PlayCue(types.Cue) {}

func soundOrNop(s SoundPlayer) SoundPlayer {
	if s == nil {
		return nopSound{}
	}
	return s
}
