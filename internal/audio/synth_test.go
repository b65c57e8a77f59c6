package audio

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/decker502/whackamole/pkg/config"
	"github.com/decker502/whackamole/pkg/types"
)

func sampleAt(buf []byte, frame int) (float32, float32) {
	l := math.Float32frombits(binary.LittleEndian.Uint32(buf[frame*8:]))
	r := math.Float32frombits(binary.LittleEndian.Uint32(buf[frame*8+4:]))
	return l, r
}

func TestNewSynthDefaults(t *testing.T) {
	s, err := NewSynth(config.DefaultGameConfig().Audio, 1)
	if err != nil {
		t.Fatalf("NewSynth() error: %v", err)
	}

	tests := []struct {
		cue      types.Cue
		duration time.Duration
		wave     Wave
	}{
		{types.CueHit, 100 * time.Millisecond, WaveSquare},
		{types.CueMiss, 100 * time.Millisecond, WaveSawtooth},
		{types.CuePopup, 50 * time.Millisecond, WaveSine},
		{types.CueExplosion, 200 * time.Millisecond, WaveNoise},
	}
	for _, tt := range tests {
		t.Run(tt.cue.String(), func(t *testing.T) {
			if got := s.Duration(tt.cue); got != tt.duration {
				t.Errorf("duration = %v, want %v", got, tt.duration)
			}
			if s.waves[tt.cue] != tt.wave {
				t.Errorf("wave = %v, want %v", s.waves[tt.cue], tt.wave)
			}
		})
	}
}

func TestNewSynthErrors(t *testing.T) {
	cfg := config.DefaultGameConfig().Audio
	cfg.Cues = map[string]config.CueSpec{
		config.CueHit: cfg.Cues[config.CueHit],
	}
	if _, err := NewSynth(cfg, 1); err == nil {
		t.Error("expected error for missing cues")
	}

	cfg = config.DefaultGameConfig().Audio
	bad := make(map[string]config.CueSpec)
	for k, v := range cfg.Cues {
		bad[k] = v
	}
	spec := bad[config.CueMiss]
	spec.Wave = "triangle"
	bad[config.CueMiss] = spec
	cfg.Cues = bad
	if _, err := NewSynth(cfg, 1); err == nil {
		t.Error("expected error for unknown wave")
	}

	cfg = config.DefaultGameConfig().Audio
	cfg.SampleRate = 0
	if _, err := NewSynth(cfg, 1); err == nil {
		t.Error("expected error for zero sample rate")
	}
}

func TestRenderHitEnvelope(t *testing.T) {
	s, _ := NewSynth(config.DefaultGameConfig().Audio, 1)

	pcm, err := s.RenderF32(types.CueHit)
	if err != nil {
		t.Fatalf("RenderF32() error: %v", err)
	}
	frames := s.SampleRate().N(100 * time.Millisecond)
	if len(pcm) != frames*BytesPerFrame {
		t.Fatalf("pcm length = %d, want %d", len(pcm), frames*BytesPerFrame)
	}

	// 方波第一帧 = +1 * 初始增益
	l, r := sampleAt(pcm, 0)
	if math.Abs(float64(l)-0.3) > 1e-6 || l != r {
		t.Errorf("first frame = (%v, %v), want (0.3, 0.3)", l, r)
	}

	// 包络单调衰减，末尾接近 0.01
	last, _ := sampleAt(pcm, frames-1)
	if a := math.Abs(float64(last)); a > 0.0101 || a < 0.0099 {
		t.Errorf("last frame amplitude = %v, want ~0.01", a)
	}
}

func TestRenderCachesTonalCues(t *testing.T) {
	s, _ := NewSynth(config.DefaultGameConfig().Audio, 1)

	a, _ := s.RenderF32(types.CuePopup)
	b, _ := s.RenderF32(types.CuePopup)
	if &a[0] != &b[0] {
		t.Error("tonal cues should be cached")
	}

	n1, _ := s.RenderF32(types.CueExplosion)
	n2, _ := s.RenderF32(types.CueExplosion)
	if bytes.Equal(n1, n2) {
		t.Error("noise cue should differ between renders")
	}
}

func TestDecayGain(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := NewDecay(NewOscillator(0, time.Second, WaveSine, rate, nil), time.Second, 0.3, 0.01, rate).(*decay)

	if g := d.Gain(0); g != 0.3 {
		t.Errorf("Gain(0) = %v, want 0.3", g)
	}
	if g := d.Gain(1000); math.Abs(g-0.01) > 1e-12 {
		t.Errorf("Gain(end) = %v, want 0.01", g)
	}
	mid := d.Gain(500)
	if math.Abs(mid-math.Sqrt(0.3*0.01)) > 1e-12 {
		t.Errorf("Gain(mid) = %v, want geometric mean", mid)
	}
}

func TestStreamerSilentAtZeroVolume(t *testing.T) {
	s, _ := NewSynth(config.DefaultGameConfig().Audio, 1)
	st, err := s.Streamer(types.CueHit, 0)
	if err != nil {
		t.Fatal(err)
	}

	buf := make([][2]float64, 256)
	n, _ := st.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 || buf[i][1] != 0 {
			t.Fatalf("frame %d not silent: %v", i, buf[i])
		}
	}
}

func TestParseWave(t *testing.T) {
	for name, want := range map[string]Wave{
		"sine": WaveSine, "square": WaveSquare, "sawtooth": WaveSawtooth, "noise": WaveNoise,
	} {
		got, err := ParseWave(name)
		if err != nil || got != want {
			t.Errorf("ParseWave(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := ParseWave("pulse"); err == nil {
		t.Error("expected error for unknown wave")
	}
}

func TestPutStereoF32LittleEndian(t *testing.T) {
	buf := make([]byte, 2*BytesPerFrame)
	putStereoF32(buf, 1, 0.5, -1)

	if !bytes.Equal(buf[:BytesPerFrame], make([]byte, BytesPerFrame)) {
		t.Errorf("frame 0 should stay zero, got %v", buf[:BytesPerFrame])
	}
	// 0.5 = 0x3F000000, -1 = 0xBF800000
	want := []byte{0x00, 0x00, 0x00, 0x3F, 0x00, 0x00, 0x80, 0xBF}
	if !bytes.Equal(buf[BytesPerFrame:], want) {
		t.Errorf("frame 1 = % x, want % x", buf[BytesPerFrame:], want)
	}
}
