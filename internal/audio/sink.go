package audio

import "github.com/decker502/whackamole/pkg/types"

// Sink 音效输出端
//
// 具体实现依赖音频设备（ebiten 音频上下文或 beep speaker），
// 放在各自前端的包里，本包只负责合成，无头环境也能编译。
type Sink interface {
	Play(cue types.Cue, volume float64) error
}
