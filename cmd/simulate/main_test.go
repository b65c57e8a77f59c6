package main

import (
	"testing"

	"github.com/decker502/whackamole/pkg/config"
)

func TestPerfectPlayerNeverBreaksCombo(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Round.Seconds = 20
	cfg.Spawn.Probability = 0.05

	rep, err := simulate(cfg, 7, 0)
	if err != nil {
		t.Fatalf("simulate() error: %v", err)
	}

	if rep.Ticks != 20*60 {
		t.Errorf("ticks = %d, want %d", rep.Ticks, 20*60)
	}
	if rep.Hits == 0 {
		t.Fatal("the scripted player should whack some moles")
	}
	if rep.Misses != 0 {
		t.Errorf("perfect player missed %d times", rep.Misses)
	}

	h := rep.Hits
	wantScore := 10*h + h*(h+1) // Σ(10 + 2i), i = 1..h
	if rep.Result.FinalScore != wantScore {
		t.Errorf("final score = %d, want %d for %d hits", rep.Result.FinalScore, wantScore, h)
	}
	if rep.Result.MaxCombo != h {
		t.Errorf("max combo = %d, want %d", rep.Result.MaxCombo, h)
	}
}

func TestMissesBreakCombo(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Round.Seconds = 30
	cfg.Spawn.Probability = 0.05

	rep, err := simulate(cfg, 3, 0.5)
	if err != nil {
		t.Fatalf("simulate() error: %v", err)
	}
	if rep.Misses == 0 {
		t.Fatal("expected some deliberate misses")
	}
	if rep.Result.MaxCombo >= rep.Hits {
		t.Errorf("max combo %d should be below total hits %d when misses occur", rep.Result.MaxCombo, rep.Hits)
	}
}
