package systems

import (
	"math/rand"

	"github.com/decker502/whackamole/pkg/config"
	"github.com/decker502/whackamole/pkg/ecs"
	"github.com/decker502/whackamole/pkg/types"
)

// recordingSound 记录播放过的音效
type recordingSound struct {
	cues []types.Cue
}

func (r *recordingSound) PlayCue(c types.Cue) {
	r.cues = append(r.cues, c)
}

func (r *recordingSound) count(c types.Cue) int {
	n := 0
	for _, got := range r.cues {
		if got == c {
			n++
		}
	}
	return n
}

// testWorld 组装全部系统，顺序与控制器一致
type testWorld struct {
	cfg       *config.GameConfig
	em        *ecs.EntityManager
	sound     *recordingSound
	board     *BoardSystem
	score     *ScoreSystem
	hammer    *HammerSystem
	spawn     *MoleSpawnSystem
	lifetime  *LifetimeSystem
	moles     *MoleSystem
	explosion *ExplosionSystem
	particles *ParticleSystem
	hit       *HitSystem
}

func newTestWorld(cfg *config.GameConfig, seed int64) *testWorld {
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}
	rng := rand.New(rand.NewSource(seed))
	em := ecs.NewEntityManager()
	sound := &recordingSound{}

	w := &testWorld{cfg: cfg, em: em, sound: sound}
	w.board = NewBoardSystem(em, cfg.Board)
	w.score = NewScoreSystem(cfg.Scoring)
	w.hammer = NewHammerSystem(em, cfg.Hammer)
	w.spawn = NewMoleSpawnSystem(em, w.board, rng, cfg.Spawn, sound)
	w.lifetime = NewLifetimeSystem(em)
	w.moles = NewMoleSystem(em, w.board, w.score, cfg.Spawn)
	w.explosion = NewExplosionSystem(em)
	w.particles = NewParticleSystem(em, cfg.Effects.Gravity)
	w.hit = NewHitSystem(em, w.board, w.score, w.hammer, rng, cfg, sound)
	return w
}

// tick 执行一帧完整更新
func (w *testWorld) tick() {
	w.spawn.Update()
	w.lifetime.Update()
	w.moles.Update()
	w.hammer.Update()
	w.explosion.Update()
	w.particles.Update()
	w.em.RemoveMarkedEntities()
}

// tickNoSpawn 执行一帧但不生成新地鼠
func (w *testWorld) tickNoSpawn() {
	w.lifetime.Update()
	w.moles.Update()
	w.hammer.Update()
	w.explosion.Update()
	w.particles.Update()
	w.em.RemoveMarkedEntities()
}
