// Package speakersink 通过 beep speaker 播放合成音效（终端版使用）
package speakersink

import (
	"fmt"
	"time"

	"github.com/gopxl/beep/speaker"

	"github.com/decker502/whackamole/internal/audio"
	"github.com/decker502/whackamole/pkg/types"
)

// Sink beep speaker 输出端，实现 audio.Sink
type Sink struct {
	synth *audio.Synth
}

// New 初始化 speaker 并创建输出
func New(synth *audio.Synth) (*Sink, error) {
	rate := synth.SampleRate()
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	return &Sink{synth: synth}, nil
}

// Play 将音效流交给 speaker 混音播放
func (s *Sink) Play(cue types.Cue, volume float64) error {
	streamer, err := s.synth.Streamer(cue, volume)
	if err != nil {
		return err
	}
	speaker.Play(streamer)
	return nil
}

// Close 关闭 speaker
func (s *Sink) Close() {
	speaker.Close()
}
