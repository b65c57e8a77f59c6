package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/whackamole/pkg/app"
	"github.com/decker502/whackamole/pkg/embedded"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	configPath = flag.String("config", "", "游戏配置文件路径（默认使用内置 data/game.yaml）")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
	})
	if err != nil {
		// 非 verbose 模式下 log 输出已被丢弃
		fmt.Fprintf(os.Stderr, "游戏初始化失败: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(gameApp.WindowSize())
	ebiten.SetWindowTitle(gameApp.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
