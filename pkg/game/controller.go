package game

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/decker502/whackamole/pkg/components"
	"github.com/decker502/whackamole/pkg/config"
	"github.com/decker502/whackamole/pkg/ecs"
	"github.com/decker502/whackamole/pkg/systems"
)

// StateChangeFunc 状态切换回调
type StateChangeFunc func(from, to State)

// Controller 一局打地鼠的全部状态与规则
//
// 持有 EntityManager 和所有系统，只能由一个 goroutine 使用。
// 每次 Update 推进一个逻辑帧，更新顺序：
//
//	倒计时 → 生成 → 生命周期 → 地鼠 → 锤子 → 爆炸 → 粒子 → 清理
type Controller struct {
	cfg           *config.GameConfig
	entityManager *ecs.EntityManager

	board     *systems.BoardSystem
	score     *systems.ScoreSystem
	hammer    *systems.HammerSystem
	spawn     *systems.MoleSpawnSystem
	lifetime  *systems.LifetimeSystem
	moles     *systems.MoleSystem
	explosion *systems.ExplosionSystem
	particles *systems.ParticleSystem
	hit       *systems.HitSystem

	countdown *Countdown
	state     State
	result    Result
	listeners []StateChangeFunc
}

// NewController 创建控制器，初始状态为 Idle
//
// 参数：
//   - cfg: 游戏配置（已校验）
//   - rng: 随机源，决定生成位置、地鼠寿命和粒子
//   - sound: 音效输出，可为 nil
func NewController(cfg *config.GameConfig, rng *rand.Rand, sound systems.SoundPlayer) *Controller {
	em := ecs.NewEntityManager()

	c := &Controller{
		cfg:           cfg,
		entityManager: em,
		countdown:     NewCountdown(float64(cfg.Round.Seconds)),
		state:         StateIdle,
	}

	c.board = systems.NewBoardSystem(em, cfg.Board)
	c.score = systems.NewScoreSystem(cfg.Scoring)
	c.hammer = systems.NewHammerSystem(em, cfg.Hammer)
	c.spawn = systems.NewMoleSpawnSystem(em, c.board, rng, cfg.Spawn, sound)
	c.lifetime = systems.NewLifetimeSystem(em)
	c.moles = systems.NewMoleSystem(em, c.board, c.score, cfg.Spawn)
	c.explosion = systems.NewExplosionSystem(em)
	c.particles = systems.NewParticleSystem(em, cfg.Effects.Gravity)
	c.hit = systems.NewHitSystem(em, c.board, c.score, c.hammer, rng, cfg, sound)

	// 锤子初始在屏幕中央
	c.hammer.MoveTo(float64(cfg.Screen.Width)/2, float64(cfg.Screen.Height)/2)

	return c
}

// OnStateChange 注册状态切换回调
func (c *Controller) OnStateChange(fn StateChangeFunc) {
	c.listeners = append(c.listeners, fn)
}

// Start 开始新的一局
// Idle/Running/Paused 均可开始（清空当前局面）；Ended 必须先 Reset
func (c *Controller) Start() error {
	if c.state == StateEnded {
		return fmt.Errorf("start from %s: %w", c.state, ErrInvalidTransition)
	}

	c.clearWorld()
	c.countdown.Start()
	c.result = Result{}

	log.Printf("[Controller] Round started (%ds)", c.cfg.Round.Seconds)
	c.setState(StateRunning)
	return nil
}

// Pause 在 Running 和 Paused 之间切换
func (c *Controller) Pause() error {
	switch c.state {
	case StateRunning:
		c.countdown.Stop()
		c.setState(StatePaused)
	case StatePaused:
		c.countdown.Resume()
		c.setState(StateRunning)
	default:
		return fmt.Errorf("pause from %s: %w", c.state, ErrInvalidTransition)
	}
	return nil
}

// Reset 回到 Idle，清空局面和计时（任意状态可用）
func (c *Controller) Reset() {
	c.clearWorld()
	c.countdown.Reset()
	c.result = Result{}
	c.setState(StateIdle)
}

// Update 推进一个逻辑帧，dt 为本帧秒数
// 仅 Running 时生效；倒计时在本帧到时则结束本局且不再推进世界
func (c *Controller) Update(dt float64) {
	if c.state != StateRunning {
		return
	}

	if c.countdown.Advance(dt) {
		c.end()
		return
	}

	c.spawn.Update()
	c.lifetime.Update()
	c.moles.Update()
	c.hammer.Update()
	c.explosion.Update()
	c.particles.Update()

	c.entityManager.RemoveMarkedEntities()
}

// MoveCursor 更新锤子位置（任意状态）
func (c *Controller) MoveCursor(x, y float64) {
	c.hammer.MoveTo(x, y)
}

// Click 在 (x, y) 挥锤，非 Running 状态忽略
func (c *Controller) Click(x, y float64) systems.HitResult {
	if c.state != StateRunning {
		c.hammer.MoveTo(x, y)
		return systems.HitResult{}
	}

	result := c.hit.Click(x, y)
	c.entityManager.RemoveMarkedEntities()
	return result
}

// SpawnAt 强制在指定洞穴生成地鼠（测试和模拟器使用）
func (c *Controller) SpawnAt(holeIndex int) (ecs.EntityID, error) {
	return c.spawn.SpawnAt(holeIndex)
}

// State 当前状态
func (c *Controller) State() State {
	return c.state
}

// Stats 当前显示数据
func (c *Controller) Stats() Stats {
	return Stats{
		State:       c.state,
		Score:       c.score.Score(),
		Combo:       c.score.Combo(),
		MaxCombo:    c.score.MaxCombo(),
		TimeLeft:    c.countdown.TimeLeft(),
		SecondsLeft: c.countdown.SecondsLeft(),
	}
}

// Result 上一局的结果，仅在 Ended 时有效
func (c *Controller) Result() (Result, bool) {
	return c.result, c.state == StateEnded
}

// Entities 渲染器使用的实体管理器（只读）
func (c *Controller) Entities() *ecs.EntityManager {
	return c.entityManager
}

// Hammer 锤子系统
func (c *Controller) Hammer() *systems.HammerSystem {
	return c.hammer
}

// Board 洞穴系统
func (c *Controller) Board() *systems.BoardSystem {
	return c.board
}

// Config 游戏配置
func (c *Controller) Config() *config.GameConfig {
	return c.cfg
}

func (c *Controller) end() {
	c.countdown.Stop()
	c.result = Result{
		FinalScore: c.score.Score(),
		MaxCombo:   c.score.MaxCombo(),
	}
	log.Printf("[Controller] Round over: score=%d maxCombo=%d", c.result.FinalScore, c.result.MaxCombo)
	c.setState(StateEnded)
}

// clearWorld 删除所有地鼠和特效，清空洞穴与计分，锤子回到中立姿态
func (c *Controller) clearWorld() {
	removed := systems.DestroyAll[*components.MoleComponent](c.entityManager)
	removed += systems.DestroyAll[*components.ExplosionComponent](c.entityManager)
	removed += systems.DestroyAll[*components.ParticleComponent](c.entityManager)
	c.entityManager.RemoveMarkedEntities()

	c.board.ClearAll()
	c.score.Reset()
	c.hammer.Reset()

	if removed > 0 {
		log.Printf("[Controller] Cleared %d entities", removed)
	}
}

func (c *Controller) setState(to State) {
	from := c.state
	if from == to {
		return
	}
	c.state = to
	log.Printf("[Controller] State %s -> %s", from, to)
	for _, fn := range c.listeners {
		fn(from, to)
	}
}
