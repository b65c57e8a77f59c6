package app

import (
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/decker502/whackamole/internal/audio"
	"github.com/decker502/whackamole/pkg/types"
)

// ebitenSink 通过 ebiten 音频上下文播放合成音效
type ebitenSink struct {
	ctx   *ebaudio.Context
	synth *audio.Synth
}

// newEbitenSink 创建 ebiten 音频输出
// 注意: ebiten 每个进程只允许一个音频上下文
func newEbitenSink(synth *audio.Synth) *ebitenSink {
	return &ebitenSink{
		ctx:   ebaudio.NewContext(int(synth.SampleRate())),
		synth: synth,
	}
}

// Play 渲染并播放音效（即发即弃）
func (s *ebitenSink) Play(cue types.Cue, volume float64) error {
	pcm, err := s.synth.RenderF32(cue)
	if err != nil {
		return err
	}
	player := s.ctx.NewPlayerF32FromBytes(pcm)
	player.SetVolume(volume)
	player.Play()
	return nil
}
