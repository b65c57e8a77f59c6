package audio

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"

	"github.com/decker502/whackamole/pkg/config"
)

// Wave 振荡器波形
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSawtooth
	WaveNoise
)

// ParseWave 将配置中的波形名称转换为 Wave
func ParseWave(name string) (Wave, error) {
	switch name {
	case config.WaveSine:
		return WaveSine, nil
	case config.WaveSquare:
		return WaveSquare, nil
	case config.WaveSawtooth:
		return WaveSawtooth, nil
	case config.WaveNoise:
		return WaveNoise, nil
	default:
		return 0, fmt.Errorf("unknown wave %q", name)
	}
}

// oscillator 生成固定时长的原始波形，左右声道相同
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     Wave
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator 创建一个振荡器
// rng 仅用于噪声波形，为 nil 时使用固定种子
func NewOscillator(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rng,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSawtooth:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay 指数衰减包络: 增益从 start 指数下降到 end
// g(t) = start * (end/start)^(t/T)
type decay struct {
	streamer beep.Streamer
	start    float64
	end      float64
	total    int
	position int
}

// NewDecay 创建指数衰减包络
func NewDecay(s beep.Streamer, duration time.Duration, start, end float64, rate beep.SampleRate) beep.Streamer {
	return &decay{
		streamer: s,
		start:    start,
		end:      end,
		total:    rate.N(duration),
	}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := d.Gain(d.position)
		samples[i][0] *= g
		samples[i][1] *= g
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// Gain 返回第 pos 个采样点的增益
func (d *decay) Gain(pos int) float64 {
	if d.total <= 0 || d.start <= 0 {
		return 0
	}
	t := float64(pos) / float64(d.total)
	if t > 1 {
		t = 1
	}
	return d.start * math.Pow(d.end/d.start, t)
}
