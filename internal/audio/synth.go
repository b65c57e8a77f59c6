package audio

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/decker502/whackamole/pkg/config"
	"github.com/decker502/whackamole/pkg/types"
)

// ReleaseGain 每个音效结束时的增益
const ReleaseGain = 0.01

// BytesPerFrame 立体声 float32 每帧字节数
const BytesPerFrame = 8

// Synth 根据配置合成四种游戏音效
//
// 音效为"即发即弃"的短音，每次播放都是独立的一段 PCM。
// 非噪声音效的渲染结果会被缓存。
type Synth struct {
	rate  beep.SampleRate
	cues  map[types.Cue]config.CueSpec
	waves map[types.Cue]Wave

	mu    sync.Mutex
	rng   *rand.Rand
	cache map[types.Cue][]byte
}

// NewSynth 从音频配置创建合成器
// 返回:
//   - error: 如果缺少音效定义或波形未知
func NewSynth(cfg config.AudioConfig, seed int64) (*Synth, error) {
	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate %d", cfg.SampleRate)
	}

	s := &Synth{
		rate:  beep.SampleRate(cfg.SampleRate),
		cues:  make(map[types.Cue]config.CueSpec),
		waves: make(map[types.Cue]Wave),
		rng:   rand.New(rand.NewSource(seed)),
		cache: make(map[types.Cue][]byte),
	}

	for _, cue := range types.AllCues() {
		spec, ok := cfg.Cues[cue.String()]
		if !ok {
			return nil, fmt.Errorf("missing audio cue %q", cue)
		}
		wave, err := ParseWave(spec.Wave)
		if err != nil {
			return nil, fmt.Errorf("cue %q: %w", cue, err)
		}
		s.cues[cue] = spec
		s.waves[cue] = wave
	}

	return s, nil
}

// SampleRate 返回采样率
func (s *Synth) SampleRate() beep.SampleRate {
	return s.rate
}

// Duration 返回音效时长
func (s *Synth) Duration(cue types.Cue) time.Duration {
	return time.Duration(s.cues[cue].DurationMs) * time.Millisecond
}

// Streamer 创建一个新的音效流，volume 为整体音量 [0, 1]
func (s *Synth) Streamer(cue types.Cue, volume float64) (beep.Streamer, error) {
	spec, ok := s.cues[cue]
	if !ok {
		return nil, fmt.Errorf("unknown cue %v", cue)
	}

	s.mu.Lock()
	rng := rand.New(rand.NewSource(s.rng.Int63()))
	s.mu.Unlock()

	duration := s.Duration(cue)
	osc := NewOscillator(spec.Frequency, duration, s.waves[cue], s.rate, rng)
	shaped := NewDecay(osc, duration, spec.Gain, ReleaseGain, s.rate)
	return newVolume(shaped, volume), nil
}

// RenderF32 渲染音效为 little-endian float32 立体声 PCM（音量为 1）
// 结果可直接交给 ebiten audio 的 NewPlayerF32FromBytes
func (s *Synth) RenderF32(cue types.Cue) ([]byte, error) {
	if s.waves[cue] != WaveNoise {
		s.mu.Lock()
		cached, ok := s.cache[cue]
		s.mu.Unlock()
		if ok {
			return cached, nil
		}
	}

	streamer, err := s.Streamer(cue, 1)
	if err != nil {
		return nil, err
	}

	frames := s.rate.N(s.Duration(cue))
	buf := make([]byte, frames*BytesPerFrame)
	chunk := make([][2]float64, 512)
	written := 0
	for written < frames {
		n, ok := streamer.Stream(chunk)
		for i := 0; i < n && written < frames; i++ {
			putStereoF32(buf, written, chunk[i][0], chunk[i][1])
			written++
		}
		if !ok {
			break
		}
	}
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("render cue %q: %w", cue, err)
	}
	buf = buf[:written*BytesPerFrame]

	if s.waves[cue] != WaveNoise {
		s.mu.Lock()
		s.cache[cue] = buf
		s.mu.Unlock()
	}
	return buf, nil
}

func putStereoF32(buf []byte, i int, left, right float64) {
	binary.LittleEndian.PutUint32(buf[i*BytesPerFrame:], math.Float32bits(float32(left)))
	binary.LittleEndian.PutUint32(buf[i*BytesPerFrame+4:], math.Float32bits(float32(right)))
}

// newVolume 以 2 为底的音量效果，vol<=0 时静音
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol >= 1 {
		return s
	}
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
