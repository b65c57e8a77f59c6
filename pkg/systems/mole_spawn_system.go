package systems

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/decker502/whackamole/pkg/components"
	"github.com/decker502/whackamole/pkg/config"
	"github.com/decker502/whackamole/pkg/ecs"
	"github.com/decker502/whackamole/pkg/entities"
	"github.com/decker502/whackamole/pkg/types"
)

// MoleSpawnSystem 管理地鼠的随机生成
// 每帧以固定概率在一个随机空洞穴中生成一只地鼠
type MoleSpawnSystem struct {
	entityManager *ecs.EntityManager
	board         *BoardSystem
	rng           *rand.Rand
	cfg           config.SpawnConfig
	sound         SoundPlayer
}

// NewMoleSpawnSystem 创建地鼠生成系统
// 参数:
//   - em: EntityManager 实例
//   - board: 洞穴网格系统（查询/标记占用）
//   - rng: 随机数源（测试中传入固定种子）
//   - cfg: 生成参数
//   - sound: 音效播放器，可为 nil
func NewMoleSpawnSystem(em *ecs.EntityManager, board *BoardSystem, rng *rand.Rand, cfg config.SpawnConfig, sound SoundPlayer) *MoleSpawnSystem {
	return &MoleSpawnSystem{
		entityManager: em,
		board:         board,
		rng:           rng,
		cfg:           cfg,
		sound:         soundOrNop(sound),
	}
}

// Update 尝试生成一只地鼠
// 返回:
//   - ecs.EntityID: 新地鼠实体ID
//   - bool: 本帧是否生成
func (s *MoleSpawnSystem) Update() (ecs.EntityID, bool) {
	free := s.board.FreeHoles()
	if len(free) == 0 {
		return 0, false
	}
	if s.rng.Float64() >= s.cfg.Probability {
		return 0, false
	}

	hole := free[s.rng.Intn(len(free))]
	id, err := s.spawnInHole(hole)
	if err != nil {
		// FreeHoles 刚确认过空闲，这里失败说明状态被破坏
		log.Printf("[MoleSpawnSystem] WARNING: spawn failed: %v", err)
		return 0, false
	}
	return id, true
}

// SpawnAt 在指定序号（行优先）的洞穴强制生成地鼠，不受概率影响
// 返回:
//   - error: 序号无效或洞穴已被占用
func (s *MoleSpawnSystem) SpawnAt(index int) (ecs.EntityID, error) {
	hole, err := s.board.HoleAt(index)
	if err != nil {
		return 0, err
	}
	return s.spawnInHole(hole)
}

func (s *MoleSpawnSystem) spawnInHole(hole ecs.EntityID) (ecs.EntityID, error) {
	if s.board.IsOccupied(hole) {
		return 0, fmt.Errorf("cannot spawn mole: hole entity %d is occupied", hole)
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, hole)
	if !ok {
		return 0, fmt.Errorf("hole entity %d has no position", hole)
	}

	life := s.cfg.MinLifeTicks + s.rng.Float64()*(s.cfg.MaxLifeTicks-s.cfg.MinLifeTicks)
	id := entities.NewMoleEntity(s.entityManager, hole, pos.X, pos.Y, life)
	if err := s.board.Occupy(hole, id); err != nil {
		s.entityManager.DestroyEntity(id)
		return 0, err
	}

	s.sound.PlayCue(types.CuePopup)
	log.Printf("[MoleSpawnSystem] Spawned mole %d at (%.0f, %.0f), life=%.0f ticks", id, pos.X, pos.Y, life)
	return id, nil
}
