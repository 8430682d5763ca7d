// Package bar 实现百分比横条渲染：把一个百分比映射为定长的彩色字形序列。
// 渲染器无状态，相同输入总是产生相同输出，可安全并发调用。
//
// 条分为三个颜色区：绿色（低）、黄色（中）、红色（高），
// 区间边界由 GreenBorder 和 YellowBorder 两个阈值决定。
// 支持两种输出模式：返回纯文本字符串，或带 ANSI 颜色直接写入终端。
package bar

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
)

// ANSI 颜色代码常量，对应三个颜色区。
const (
	colorReset = "\033[0m"

	colorLow  = "\033[38;5;34m"  // 深绿 - 低负载区
	colorMid  = "\033[38;5;220m" // 黄色 - 中负载区
	colorHigh = "\033[38;5;196m" // 红色 - 高负载区
)

// 参数默认值与取值范围。
const (
	DefaultBarLength    = 10
	DefaultGreenBorder  = 60
	DefaultYellowBorder = 80

	minBarLength    = 10
	maxBarLength    = 100
	minGreenBorder  = 50
	maxGreenBorder  = 80
	minYellowBorder = 80
	maxYellowBorder = 90
)

// ErrInvalidArgument 表示渲染参数违反约束。
// 所有校验失败都在产生任何输出之前同步返回，不会出现部分渲染。
var ErrInvalidArgument = errors.New("invalid argument")

// Zone 标记单个字形所属的颜色区。
type Zone int

const (
	ZoneNone Zone = iota // 标签、未填充部分，使用默认前景色
	ZoneLow
	ZoneMid
	ZoneHigh
)

// Options 是一次渲染调用的全部参数。
// 每次调用单独构造、校验、使用后丢弃，调用之间不保留任何状态。
type Options struct {
	Percent      int   // [0,100]
	BarLength    int   // [10,100]，字形格数
	Style        Style // 字形预设
	GreenBorder  int   // [50,80]，绿区上界（百分比）
	YellowBorder int   // [80,90]，黄区上界（百分比），必须严格大于 GreenBorder
	HidePercent  bool  // 隐藏数字标签，仅输出 "[ " 开头
}

// NewOptions 返回带默认值的渲染参数。
func NewOptions(percent int) Options {
	return Options{
		Percent:      percent,
		BarLength:    DefaultBarLength,
		Style:        DefaultStyle(),
		GreenBorder:  DefaultGreenBorder,
		YellowBorder: DefaultYellowBorder,
	}
}

// PercentOf 把 value/max 换算为百分比。
// 换算使用截断（整数强制转换语义）而非四舍五入：
// 填充格数的计算使用四舍五入，这一不对称是有意保留的，
// 因为标题百分比数字依赖截断行为。
func PercentOf(value, max float64) (int, error) {
	if value < 0 {
		return 0, fmt.Errorf("%w: value must be >= 0, got %g", ErrInvalidArgument, value)
	}
	if max < 1 {
		return 0, fmt.Errorf("%w: max must be >= 1, got %g", ErrInvalidArgument, max)
	}
	if value > max {
		return 0, fmt.Errorf("%w: value (%g) exceeds max (%g)", ErrInvalidArgument, value, max)
	}
	return int(value / max * 100), nil
}

// validate 校验全部参数约束，违反时返回指明具体约束的 ErrInvalidArgument。
func (o Options) validate() error {
	if o.Percent < 0 || o.Percent > 100 {
		return fmt.Errorf("%w: percent must be in [0,100], got %d", ErrInvalidArgument, o.Percent)
	}
	if o.BarLength < minBarLength || o.BarLength > maxBarLength {
		return fmt.Errorf("%w: bar length must be in [%d,%d], got %d",
			ErrInvalidArgument, minBarLength, maxBarLength, o.BarLength)
	}
	if o.GreenBorder < minGreenBorder || o.GreenBorder > maxGreenBorder {
		return fmt.Errorf("%w: green border must be in [%d,%d], got %d",
			ErrInvalidArgument, minGreenBorder, maxGreenBorder, o.GreenBorder)
	}
	if o.YellowBorder < minYellowBorder || o.YellowBorder > maxYellowBorder {
		return fmt.Errorf("%w: yellow border must be in [%d,%d], got %d",
			ErrInvalidArgument, minYellowBorder, maxYellowBorder, o.YellowBorder)
	}
	if o.YellowBorder <= o.GreenBorder {
		return fmt.Errorf("%w: yellow border (%d) must be greater than green border (%d)",
			ErrInvalidArgument, o.YellowBorder, o.GreenBorder)
	}
	if o.Style == (Style{}) {
		return fmt.Errorf("%w: style must define all four glyphs", ErrInvalidArgument)
	}
	return nil
}

// sink 抽象输出目标，使字符串模式和终端绘制模式共用同一套字形选择逻辑。
type sink interface {
	emit(text string, zone Zone) error
}

// stringSink 把全部片段累积为纯文本，忽略颜色区标记。
type stringSink struct {
	b strings.Builder
}

func (s *stringSink) emit(text string, _ Zone) error {
	s.b.WriteString(text)
	return nil
}

// termSink 把片段按颜色区着色后顺序写入终端。
type termSink struct {
	w io.Writer
}

func (s *termSink) emit(text string, zone Zone) error {
	color := zoneColor(zone)
	if color == "" {
		_, err := io.WriteString(s.w, text)
		return err
	}
	_, err := io.WriteString(s.w, color+text+colorReset)
	return err
}

func zoneColor(zone Zone) string {
	switch zone {
	case ZoneLow:
		return colorLow
	case ZoneMid:
		return colorMid
	case ZoneHigh:
		return colorHigh
	default:
		return ""
	}
}

// Render 渲染为纯文本字符串，不向任何设备输出。
func Render(o Options) (string, error) {
	var s stringSink
	if err := render(&s, o); err != nil {
		return "", err
	}
	return s.b.String(), nil
}

// Draw 带 ANSI 颜色直接写入 w，字形序列与 Render 的输出逐字符一致（颜色码除外）。
func Draw(w io.Writer, o Options) error {
	return render(&termSink{w: w}, o)
}

// render 是两种模式共用的渲染主体。
func render(s sink, o Options) error {
	if err := o.validate(); err != nil {
		return err
	}

	// 标签固定宽度：百分比右对齐 3 位，保证条的起始列不随数字位数漂移。
	label := "[ "
	if !o.HidePercent {
		label = fmt.Sprintf("%3d%% [ ", o.Percent)
	}
	if err := s.emit(label, ZoneNone); err != nil {
		return err
	}

	filled := filledCells(o.Percent, o.BarLength)

	// 颜色区边界使用未取整的实数乘积与格序号比较，
	// 低区先于中区、中区先于高区判定，恰好整数的边界值不会重复或漏判。
	greenEdge := float64(o.GreenBorder) * float64(o.BarLength) / 100
	yellowEdge := float64(o.YellowBorder) * float64(o.BarLength) / 100

	for i := 1; i <= filled; i++ {
		var glyph rune
		var zone Zone
		switch {
		case float64(i) <= greenEdge:
			glyph, zone = o.Style.FilledLow, ZoneLow
		case float64(i) <= yellowEdge:
			glyph, zone = o.Style.FilledMid, ZoneMid
		default:
			glyph, zone = o.Style.FilledHigh, ZoneHigh
		}
		if err := s.emit(string(glyph), zone); err != nil {
			return err
		}
	}

	// percent=100 时 filled == BarLength，此循环执行零次。
	for i := filled; i < o.BarLength; i++ {
		if err := s.emit(string(o.Style.Empty), ZoneNone); err != nil {
			return err
		}
	}

	return s.emit(" ]", ZoneNone)
}

// filledCells 计算填充格数，采用四舍五入（0.5 进位）。
// percent=100 时结果恰为 barLength，不会越界。
func filledCells(percent, barLength int) int {
	return int(math.Floor(float64(percent)*float64(barLength)/100 + 0.5))
}
