package bar

import (
	"fmt"
	"strings"
)

// Style 定义百分比条的四个字形：低/中/高三个颜色区的填充字形和未填充字形。
// 样式按名称查找，选定后不可变。
type Style struct {
	FilledLow  rune
	FilledMid  rune
	FilledHigh rune
	Empty      rune
}

// DefaultStyleName 是未指定样式时使用的预设名称。
const DefaultStyleName = "SimpleThin"

// styleNames 保持预设的展示顺序（map 遍历顺序不稳定）。
var styleNames = []string{
	"SimpleThin",
	"SimpleThick1",
	"SimpleThick2",
	"AdvancedThin1",
	"AdvancedThin2",
	"AdvancedThick",
}

// 六种内置样式。Simple 系列三个颜色区共用同一填充字形；
// Advanced 系列的未填充字形与填充字形同形（空心变体）。
var styles = map[string]Style{
	"simplethin":    {FilledLow: '▬', FilledMid: '▬', FilledHigh: '▬', Empty: '-'},
	"simplethick1":  {FilledLow: '█', FilledMid: '█', FilledHigh: '█', Empty: '░'},
	"simplethick2":  {FilledLow: '■', FilledMid: '■', FilledHigh: '■', Empty: '─'},
	"advancedthin1": {FilledLow: '▰', FilledMid: '▰', FilledHigh: '▰', Empty: '▱'},
	"advancedthin2": {FilledLow: '▪', FilledMid: '▪', FilledHigh: '▪', Empty: '▫'},
	"advancedthick": {FilledLow: '▮', FilledMid: '▮', FilledHigh: '▮', Empty: '▯'},
}

// StyleByName 按名称（不区分大小写）查找样式预设。
// 未知名称返回 ErrInvalidArgument。
func StyleByName(name string) (Style, error) {
	s, ok := styles[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Style{}, fmt.Errorf("%w: unknown style %q (supported: %s)",
			ErrInvalidArgument, name, strings.Join(styleNames, ", "))
	}
	return s, nil
}

// StyleNames 返回全部预设名称，顺序固定。
func StyleNames() []string {
	names := make([]string, len(styleNames))
	copy(names, styleNames)
	return names
}

// DefaultStyle 返回默认样式预设。
func DefaultStyle() Style {
	return styles[strings.ToLower(DefaultStyleName)]
}
