//go:build mobile

// embed.go - 移动端资源嵌入声明
// 构建前需要把根目录的 data/ 复制到 mobile/ 下
package mobile

import "embed"

//go:embed data/game.yaml
var dataFS embed.FS
