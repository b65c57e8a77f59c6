// simulate 无界面地跑完一局，由脚本玩家操作
//
// 脚本玩家在地鼠出现后的下一帧点击它（可用 --miss-rate 让它偶尔点空），
// 用于验证计分、连击和倒计时的整体行为。
//
// 用法:
//
//	go run ./cmd/simulate --seed 42 --miss-rate 0.1
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/decker502/whackamole/pkg/components"
	"github.com/decker502/whackamole/pkg/config"
	"github.com/decker502/whackamole/pkg/ecs"
	"github.com/decker502/whackamole/pkg/game"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	configPath = flag.String("config", "", "游戏配置文件路径（默认使用内置配置）")
	seed       = flag.Int64("seed", 1, "随机种子")
	seconds    = flag.Int("seconds", 0, "覆盖回合时长（秒），0 表示使用配置")
	missRate   = flag.Float64("miss-rate", 0, "脚本玩家故意点空的概率 [0, 1]")
)

// report 模拟结果
type report struct {
	Result  game.Result
	Ticks   int
	Hits    int
	Misses  int
	Spawned int
	Escaped int // 未被打中的地鼠（逃走或局末仍在场）
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultGameConfig()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadGameConfig(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "simulate: %v\n", err)
			os.Exit(1)
		}
	}
	if *seconds > 0 {
		cfg.Round.Seconds = *seconds
	}

	rep, err := simulate(cfg, *seed, *missRate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "simulate: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("ticks:        %d\n", rep.Ticks)
	fmt.Printf("moles:        %d spawned, %d whacked, %d escaped\n", rep.Spawned, rep.Hits, rep.Escaped)
	fmt.Printf("misses:       %d\n", rep.Misses)
	fmt.Printf("final score:  %d\n", rep.Result.FinalScore)
	fmt.Printf("max combo:    %d\n", rep.Result.MaxCombo)
}

func simulate(cfg *config.GameConfig, seed int64, missRate float64) (report, error) {
	controller := game.NewController(cfg, rand.New(rand.NewSource(seed)), nil)
	player := rand.New(rand.NewSource(seed + 1))

	if err := controller.Start(); err != nil {
		return report{}, err
	}

	var rep report
	seen := make(map[ecs.EntityID]bool)
	dt := 1.0 / float64(cfg.Round.TicksPerSecond)
	em := controller.Entities()

	for controller.State() == game.StateRunning {
		controller.Update(dt)
		rep.Ticks++

		alive := make(map[ecs.EntityID]bool)
		for _, id := range ecs.GetEntitiesWith2[*components.MoleComponent, *components.PositionComponent](em) {
			// 同一帧前面的点击可能已经移除了它
			mole, ok := ecs.GetComponent[*components.MoleComponent](em, id)
			if !ok || !mole.Visible {
				continue
			}
			alive[id] = true
			if !seen[id] {
				// 出现的这一帧只记录，下一帧再打
				seen[id] = true
				rep.Spawned++
				continue
			}

			pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
			x, y := pos.X, pos.Y
			if player.Float64() < missRate {
				x, y = missPoint(cfg)
			}
			if res := controller.Click(x, y); res.Missed() {
				rep.Misses++
			} else {
				rep.Hits += len(res.Hits)
			}
		}

		for id := range seen {
			if !alive[id] && !em.Exists(id) {
				delete(seen, id)
			}
		}
	}

	rep.Escaped = rep.Spawned - rep.Hits
	rep.Result, _ = controller.Result()
	return rep, nil
}

// missPoint 屏幕左上角，离所有洞穴都足够远
func missPoint(cfg *config.GameConfig) (float64, float64) {
	return cfg.Board.OriginX - cfg.Hammer.HitRadius - 1, 5
}
