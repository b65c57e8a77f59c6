package systems

import (
	"testing"

	"github.com/decker502/whackamole/pkg/config"
)

func TestScoreComboProgression(t *testing.T) {
	s := NewScoreSystem(config.DefaultGameConfig().Scoring)

	tests := []struct {
		name      string
		wantPts   int
		wantScore int
		wantCombo int
	}{
		{"first hit", 12, 12, 1},
		{"second hit", 14, 26, 2},
		{"third hit", 16, 42, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.RegisterHit(); got != tt.wantPts {
				t.Errorf("points = %d, want %d", got, tt.wantPts)
			}
			if s.Score() != tt.wantScore || s.Combo() != tt.wantCombo {
				t.Errorf("score=%d combo=%d, want %d/%d", s.Score(), s.Combo(), tt.wantScore, tt.wantCombo)
			}
		})
	}
}

func TestScoreResetCombo(t *testing.T) {
	s := NewScoreSystem(config.DefaultGameConfig().Scoring)
	s.RegisterHit()
	s.RegisterHit()
	s.ResetCombo()

	if s.Combo() != 0 || s.Score() != 26 || s.MaxCombo() != 2 {
		t.Errorf("after ResetCombo: score=%d combo=%d max=%d", s.Score(), s.Combo(), s.MaxCombo())
	}
	if got := s.RegisterHit(); got != 12 {
		t.Errorf("first hit after a reset should score 12, got %d", got)
	}

	s.Reset()
	if s.Score() != 0 || s.Combo() != 0 || s.MaxCombo() != 0 {
		t.Error("Reset should clear everything")
	}
}
