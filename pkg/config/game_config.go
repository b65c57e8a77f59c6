package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/whackamole/pkg/embedded"
)

// DefaultConfigPath 是嵌入资源中游戏配置文件的路径
const DefaultConfigPath = "data/game.yaml"

// GameConfig 游戏全部可调参数
// 所有"帧"单位均指逻辑 tick（固定 60 TPS）
type GameConfig struct {
	Screen  ScreenConfig  `yaml:"screen"`
	Board   BoardConfig   `yaml:"board"`
	Round   RoundConfig   `yaml:"round"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Hammer  HammerConfig  `yaml:"hammer"`
	Scoring ScoringConfig `yaml:"scoring"`
	Effects EffectsConfig `yaml:"effects"`
	Audio   AudioConfig   `yaml:"audio"`
}

// ScreenConfig 逻辑屏幕尺寸（像素）
type ScreenConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// BoardConfig 洞穴网格布局
// 洞穴中心: x = OriginX + col*SpacingX, y = OriginY + row*SpacingY
type BoardConfig struct {
	Rows       int     `yaml:"rows"`
	Cols       int     `yaml:"cols"`
	OriginX    float64 `yaml:"originX"`
	OriginY    float64 `yaml:"originY"`
	SpacingX   float64 `yaml:"spacingX"`
	SpacingY   float64 `yaml:"spacingY"`
	HoleRadius float64 `yaml:"holeRadius"`
}

// RoundConfig 回合计时
type RoundConfig struct {
	Seconds        int `yaml:"seconds"`        // 倒计时总秒数
	TicksPerSecond int `yaml:"ticksPerSecond"` // 逻辑帧率
}

// SpawnConfig 地鼠生成参数
type SpawnConfig struct {
	Probability  float64 `yaml:"probability"`  // 每帧生成概率
	MinLifeTicks float64 `yaml:"minLifeTicks"` // 生命周期下限（含）
	MaxLifeTicks float64 `yaml:"maxLifeTicks"` // 生命周期上限（不含）
	PopupStep    float64 `yaml:"popupStep"`    // 弹出动画每帧进度
}

// HammerConfig 锤子参数
type HammerConfig struct {
	Size           float64 `yaml:"size"`
	SwingStep      float64 `yaml:"swingStep"`      // 挥动进度每帧增量（弧度）
	MaxRotationDeg float64 `yaml:"maxRotationDeg"` // 挥动最大旋转角度
	HitRadius      float64 `yaml:"hitRadius"`      // 命中判定半径
}

// ScoringConfig 计分规则: points = BasePoints + combo*ComboBonus
type ScoringConfig struct {
	BasePoints int `yaml:"basePoints"`
	ComboBonus int `yaml:"comboBonus"`
}

// EffectsConfig 爆炸与粒子参数
type EffectsConfig struct {
	ExplosionMaxRadius float64 `yaml:"explosionMaxRadius"`
	ExplosionLife      float64 `yaml:"explosionLife"`
	ParticleCount      int     `yaml:"particleCount"`
	ParticleLife       float64 `yaml:"particleLife"`
	ParticleSpeed      float64 `yaml:"particleSpeed"` // 初速度分量范围 [-speed/2, speed/2)
	Gravity            float64 `yaml:"gravity"`
	ParticleHueMin     float64 `yaml:"particleHueMin"`
	ParticleHueRange   float64 `yaml:"particleHueRange"`
}

// AudioConfig 合成音效参数
type AudioConfig struct {
	SampleRate int                `yaml:"sampleRate"`
	Cues       map[string]CueSpec `yaml:"cues"`
}

// CueSpec 单个合成音效: 频率、时长、波形
type CueSpec struct {
	Frequency  float64 `yaml:"frequency"`
	DurationMs int     `yaml:"durationMs"`
	Wave       string  `yaml:"wave"`
	Gain       float64 `yaml:"gain"`
}

// 音效名称
const (
	CueHit       = "hit"
	CueMiss      = "miss"
	CuePopup     = "popup"
	CueExplosion = "explosion"
)

// 支持的波形
const (
	WaveSine     = "sine"
	WaveSquare   = "square"
	WaveSawtooth = "sawtooth"
	WaveNoise    = "noise"
)

// DefaultGameConfig 返回默认配置（与 data/game.yaml 一致）
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Screen: ScreenConfig{Width: 800, Height: 600, Title: "超级打地鼠"},
		Board: BoardConfig{
			Rows: 3, Cols: 3,
			OriginX: 150, OriginY: 150,
			SpacingX: 200, SpacingY: 150,
			HoleRadius: 60,
		},
		Round: RoundConfig{Seconds: 60, TicksPerSecond: 60},
		Spawn: SpawnConfig{
			Probability:  0.02,
			MinLifeTicks: 180,
			MaxLifeTicks: 300,
			PopupStep:    0.05,
		},
		Hammer: HammerConfig{
			Size:           80,
			SwingStep:      0.2,
			MaxRotationDeg: 45,
			HitRadius:      80,
		},
		Scoring: ScoringConfig{BasePoints: 10, ComboBonus: 2},
		Effects: EffectsConfig{
			ExplosionMaxRadius: 100,
			ExplosionLife:      30,
			ParticleCount:      15,
			ParticleLife:       60,
			ParticleSpeed:      10,
			Gravity:            0.2,
			ParticleHueMin:     15,
			ParticleHueRange:   60,
		},
		Audio: AudioConfig{
			SampleRate: 48000,
			Cues: map[string]CueSpec{
				CueHit:       {Frequency: 800, DurationMs: 100, Wave: WaveSquare, Gain: 0.3},
				CueMiss:      {Frequency: 200, DurationMs: 100, Wave: WaveSawtooth, Gain: 0.3},
				CuePopup:     {Frequency: 400, DurationMs: 50, Wave: WaveSine, Gain: 0.3},
				CueExplosion: {Frequency: 150, DurationMs: 200, Wave: WaveNoise, Gain: 0.3},
			},
		},
	}
}

// LoadGameConfig 加载游戏配置
// path 为空时读取嵌入的 data/game.yaml，否则从文件系统读取
// YAML 中缺省的字段保留默认值
func LoadGameConfig(path string) (*GameConfig, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = embedded.ReadFile(DefaultConfigPath)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 解析并校验 YAML 配置
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	return cfg, nil
}

// Validate 验证配置的有效性
func (c *GameConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Board.Rows <= 0 || c.Board.Cols <= 0 {
		return fmt.Errorf("board must have at least one hole, got %dx%d", c.Board.Rows, c.Board.Cols)
	}
	if c.Board.HoleRadius <= 0 {
		return fmt.Errorf("board.holeRadius must be > 0, got %v", c.Board.HoleRadius)
	}
	if c.Round.Seconds <= 0 {
		return fmt.Errorf("round.seconds must be > 0, got %d", c.Round.Seconds)
	}
	if c.Round.TicksPerSecond <= 0 {
		return fmt.Errorf("round.ticksPerSecond must be > 0, got %d", c.Round.TicksPerSecond)
	}
	if c.Spawn.Probability < 0 || c.Spawn.Probability > 1 {
		return fmt.Errorf("spawn.probability must be within [0, 1], got %v", c.Spawn.Probability)
	}
	if c.Spawn.MinLifeTicks <= 0 || c.Spawn.MaxLifeTicks <= c.Spawn.MinLifeTicks {
		return fmt.Errorf("spawn life range must satisfy 0 < min < max, got [%v, %v)", c.Spawn.MinLifeTicks, c.Spawn.MaxLifeTicks)
	}
	if c.Spawn.PopupStep <= 0 {
		return fmt.Errorf("spawn.popupStep must be > 0, got %v", c.Spawn.PopupStep)
	}
	if c.Hammer.SwingStep <= 0 {
		return fmt.Errorf("hammer.swingStep must be > 0, got %v", c.Hammer.SwingStep)
	}
	if c.Hammer.HitRadius <= 0 {
		return fmt.Errorf("hammer.hitRadius must be > 0, got %v", c.Hammer.HitRadius)
	}
	if c.Effects.ExplosionLife <= 0 || c.Effects.ParticleLife <= 0 {
		return fmt.Errorf("effect lifetimes must be > 0, got explosion=%v particle=%v", c.Effects.ExplosionLife, c.Effects.ParticleLife)
	}
	if c.Effects.Gravity <= 0 {
		return fmt.Errorf("effects.gravity must be > 0, got %v", c.Effects.Gravity)
	}
	if c.Effects.ParticleCount < 0 {
		return fmt.Errorf("effects.particleCount must be >= 0, got %d", c.Effects.ParticleCount)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio.sampleRate must be > 0, got %d", c.Audio.SampleRate)
	}
	for name, cue := range c.Audio.Cues {
		if err := cue.validate(); err != nil {
			return fmt.Errorf("audio cue %q: %w", name, err)
		}
	}
	return nil
}

func (s CueSpec) validate() error {
	switch s.Wave {
	case WaveSine, WaveSquare, WaveSawtooth, WaveNoise:
	default:
		return fmt.Errorf("unknown wave %q", s.Wave)
	}
	if s.DurationMs <= 0 {
		return fmt.Errorf("durationMs must be > 0, got %d", s.DurationMs)
	}
	if s.Wave != WaveNoise && s.Frequency <= 0 {
		return fmt.Errorf("frequency must be > 0, got %v", s.Frequency)
	}
	if s.Gain < 0 || s.Gain > 1 {
		return fmt.Errorf("gain must be within [0, 1], got %v", s.Gain)
	}
	return nil
}

// HoleCount 返回洞穴总数
func (c *GameConfig) HoleCount() int {
	return c.Board.Rows * c.Board.Cols
}
