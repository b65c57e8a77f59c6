// Package utils 提供不依赖图形库的通用工具（网格映射、平台与存储目录）
package utils

// Grid 把逻辑屏幕划分为等大的格子
// 终端版用它在世界坐标（800x600）和字符格之间换算
type Grid struct {
	OriginX    float64 // 网格起始X坐标
	OriginY    float64 // 网格起始Y坐标
	CellWidth  float64 // 每格宽度
	CellHeight float64 // 每格高度
	Columns    int
	Rows       int
}

// NewScreenGrid 创建覆盖 width x height 屏幕的 cols x rows 网格
func NewScreenGrid(width, height float64, cols, rows int) Grid {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return Grid{
		CellWidth:  width / float64(cols),
		CellHeight: height / float64(rows),
		Columns:    cols,
		Rows:       rows,
	}
}

// ScreenToCell 将屏幕坐标转换为格子坐标
// 返回:
//   - col, row: 格子索引
//   - isValid: 是否在网格范围内
func (g Grid) ScreenToCell(x, y float64) (col, row int, isValid bool) {
	endX := g.OriginX + float64(g.Columns)*g.CellWidth
	endY := g.OriginY + float64(g.Rows)*g.CellHeight
	if x < g.OriginX || x >= endX || y < g.OriginY || y >= endY {
		return 0, 0, false
	}

	col = clampIndex(int((x-g.OriginX)/g.CellWidth), g.Columns)
	row = clampIndex(int((y-g.OriginY)/g.CellHeight), g.Rows)
	return col, row, true
}

// CellCenter 返回格子中心的屏幕坐标
func (g Grid) CellCenter(col, row int) (x, y float64) {
	x = g.OriginX + float64(col)*g.CellWidth + g.CellWidth/2
	y = g.OriginY + float64(row)*g.CellHeight + g.CellHeight/2
	return x, y
}

// clampIndex 防止浮点误差导致越界
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
