package systems

import (
	"log"
	"math"
	"math/rand"

	"github.com/decker502/whackamole/pkg/components"
	"github.com/decker502/whackamole/pkg/config"
	"github.com/decker502/whackamole/pkg/ecs"
	"github.com/decker502/whackamole/pkg/entities"
	"github.com/decker502/whackamole/pkg/types"
)

// HitResult 一次点击的判定结果
type HitResult struct {
	Swung  bool           // 是否开始了新的挥动（挥动中点击不会重新开始）
	Hits   []ecs.EntityID // 被击中的地鼠，按实体ID升序
	Points int            // 本次点击获得的总分
}

// Missed 本次点击是否挥空
func (r HitResult) Missed() bool {
	return len(r.Hits) == 0
}

// HitSystem 处理玩家点击：挥锤 + 命中判定
//
// 判定规则: 光标与可见地鼠的欧氏距离 < HitRadius 即命中。
// 多只地鼠的判定圈重叠时，一次点击会击中范围内的所有地鼠，
// 按创建顺序逐个结算（每只都使连击+1）。
type HitSystem struct {
	entityManager *ecs.EntityManager
	board         *BoardSystem
	score         *ScoreSystem
	hammer        *HammerSystem
	rng           *rand.Rand
	hitRadius     float64
	effects       config.EffectsConfig
	sound         SoundPlayer
}

// NewHitSystem 创建命中判定系统
func NewHitSystem(em *ecs.EntityManager, board *BoardSystem, score *ScoreSystem, hammer *HammerSystem, rng *rand.Rand, cfg *config.GameConfig, sound SoundPlayer) *HitSystem {
	return &HitSystem{
		entityManager: em,
		board:         board,
		score:         score,
		hammer:        hammer,
		rng:           rng,
		hitRadius:     cfg.Hammer.HitRadius,
		effects:       cfg.Effects,
		sound:         soundOrNop(sound),
	}
}

// Click 在 (x, y) 挥锤并结算命中
func (s *HitSystem) Click(x, y float64) HitResult {
	s.hammer.MoveTo(x, y)
	result := HitResult{Swung: s.hammer.StartSwing()}

	moles := ecs.GetEntitiesWith2[*components.MoleComponent, *components.PositionComponent](s.entityManager)
	for _, id := range moles {
		if s.entityManager.IsMarkedForDestruction(id) {
			continue
		}
		mole, _ := ecs.GetComponent[*components.MoleComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !mole.Visible {
			continue
		}

		if math.Hypot(x-pos.X, y-pos.Y) < s.hitRadius {
			result.Points += s.whack(id, mole, pos)
			result.Hits = append(result.Hits, id)
		}
	}

	if result.Missed() {
		s.score.ResetCombo()
		s.sound.PlayCue(types.CueMiss)
	}
	return result
}

// whack 结算单只地鼠的命中，返回得分
func (s *HitSystem) whack(id ecs.EntityID, mole *components.MoleComponent, pos *components.PositionComponent) int {
	points := s.score.RegisterHit()

	s.sound.PlayCue(types.CueHit)
	s.sound.PlayCue(types.CueExplosion)

	entities.NewExplosionEntity(s.entityManager, pos.X, pos.Y, s.effects)
	entities.NewParticleBurst(s.entityManager, s.rng, pos.X, pos.Y, s.effects)

	mole.Visible = false
	s.entityManager.DestroyEntity(id)
	s.board.Release(mole.Hole, id)

	log.Printf("[HitSystem] Whacked mole %d at (%.0f, %.0f): +%d (combo %d)", id, pos.X, pos.Y, points, s.score.Combo())
	return points
}
