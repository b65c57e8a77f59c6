//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	cp -r data mobile/ && ebitenmobile bind -target android -tags mobile -javapkg com.decker.whackamole -o build/whackamole.aar ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/whackamole/pkg/app"
	"github.com/decker502/whackamole/pkg/embedded"
)

func init() {
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{Verbose: true})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
