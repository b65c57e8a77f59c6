package systems

import "github.com/decker502/whackamole/pkg/config"

// ScoreSystem 维护分数与连击
// 每次命中: combo+1, 得分 = BasePoints + combo*ComboBonus
// 挥空或地鼠逃走时 combo 归零，MaxCombo 记录本局最高连击
type ScoreSystem struct {
	cfg      config.ScoringConfig
	score    int
	combo    int
	maxCombo int
}

// NewScoreSystem 创建计分系统
func NewScoreSystem(cfg config.ScoringConfig) *ScoreSystem {
	return &ScoreSystem{cfg: cfg}
}

// RegisterHit 记录一次命中并返回本次得分
func (s *ScoreSystem) RegisterHit() int {
	s.combo++
	if s.combo > s.maxCombo {
		s.maxCombo = s.combo
	}
	points := s.cfg.BasePoints + s.combo*s.cfg.ComboBonus
	s.score += points
	return points
}

// ResetCombo 连击归零（分数与最高连击保持不变）
func (s *ScoreSystem) ResetCombo() {
	s.combo = 0
}

// Reset 清空本局全部计分
func (s *ScoreSystem) Reset() {
	s.score = 0
	s.combo = 0
	s.maxCombo = 0
}

// Score 当前分数
func (s *ScoreSystem) Score() int { return s.score }

// Combo 当前连击数
func (s *ScoreSystem) Combo() int { return s.combo }

// MaxCombo 本局最高连击
func (s *ScoreSystem) MaxCombo() int { return s.maxCombo }
