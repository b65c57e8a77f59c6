package systems

import (
	"testing"

	"github.com/decker502/whackamole/pkg/components"
	"github.com/decker502/whackamole/pkg/config"
	"github.com/decker502/whackamole/pkg/ecs"
	"github.com/decker502/whackamole/pkg/types"
)

func alwaysSpawnConfig() *config.GameConfig {
	cfg := config.DefaultGameConfig()
	cfg.Spawn.Probability = 1
	return cfg
}

func TestSpawnRespectsProbabilityZero(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Spawn.Probability = 0
	w := newTestWorld(cfg, 1)

	for i := 0; i < 1000; i++ {
		if _, spawned := w.spawn.Update(); spawned {
			t.Fatal("no mole should spawn with probability 0")
		}
	}
}

func TestSpawnFillsEveryHoleOnce(t *testing.T) {
	w := newTestWorld(alwaysSpawnConfig(), 42)

	seen := make(map[ecs.EntityID]bool)
	for i := 0; i < 9; i++ {
		id, spawned := w.spawn.Update()
		if !spawned {
			t.Fatalf("spawn %d should succeed while holes are free", i)
		}
		mole, _ := ecs.GetComponent[*components.MoleComponent](w.em, id)
		if seen[mole.Hole] {
			t.Fatalf("hole %d received a second mole", mole.Hole)
		}
		seen[mole.Hole] = true
	}

	// 全部占满后不再生成
	if _, spawned := w.spawn.Update(); spawned {
		t.Error("spawn must not happen when every hole is occupied")
	}
	if got := w.sound.count(types.CuePopup); got != 9 {
		t.Errorf("expected 9 popup cues, got %d", got)
	}
}

func TestSpawnedMoleState(t *testing.T) {
	w := newTestWorld(alwaysSpawnConfig(), 3)

	for i := 0; i < 200; i++ {
		id, spawned := w.spawn.Update()
		if !spawned {
			// 洞满时释放所有洞穴继续采样
			_ = DestroyAll[*components.MoleComponent](w.em)
			w.em.RemoveMarkedEntities()
			w.board.ClearAll()
			continue
		}
		mole, _ := ecs.GetComponent[*components.MoleComponent](w.em, id)
		life, _ := ecs.GetComponent[*components.LifetimeComponent](w.em, id)

		if !mole.Visible || mole.PopupProgress != 0 {
			t.Errorf("new mole should be visible with popup 0, got %+v", mole)
		}
		if life.Total < 180 || life.Total >= 300 || life.Remaining != life.Total {
			t.Errorf("mole life %v/%v outside [180, 300)", life.Remaining, life.Total)
		}
	}
}

func TestSpawnAt(t *testing.T) {
	w := newTestWorld(nil, 1)

	id, err := w.spawn.SpawnAt(0)
	if err != nil {
		t.Fatalf("SpawnAt(0) error: %v", err)
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)
	if pos.X != 150 || pos.Y != 150 {
		t.Errorf("mole in hole 0 expected at (150, 150), got (%v, %v)", pos.X, pos.Y)
	}

	if _, err := w.spawn.SpawnAt(0); err == nil {
		t.Error("SpawnAt on an occupied hole should fail")
	}
	if _, err := w.spawn.SpawnAt(9); err == nil {
		t.Error("SpawnAt with an invalid index should fail")
	}
}
