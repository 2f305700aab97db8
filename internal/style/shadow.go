package style

import (
	"strings"
)

// Shadow 表示 box-shadow / text-shadow 的结构化值。
//
// Color 保留用户书写的原始词元以保证往返无损；PickerColor 是
// 供颜色选择器控件使用的十六进制近似值，二者并行存在。
type Shadow struct {
	OffsetX     float64 // 水平偏移（px）
	OffsetY     float64 // 垂直偏移（px）
	Blur        float64 // 模糊半径（px）
	Spread      float64 // 扩散半径（px），仅 box-shadow 使用
	Color       string  // 原始颜色词元
	PickerColor string  // 显示用十六进制近似值
}

// zeroShadowColor 是零值阴影的规范颜色。
const zeroShadowColor = "#000000"

// ZeroShadow 返回阴影的零值，对应文本 "none"。
func ZeroShadow() Shadow {
	return Shadow{Color: zeroShadowColor, PickerColor: zeroShadowColor}
}

// IsZero 判断阴影是否为零值：所有几何分量为零且颜色未设置或为黑。
func (s Shadow) IsZero() bool {
	if s.OffsetX != 0 || s.OffsetY != 0 || s.Blur != 0 || s.Spread != 0 {
		return false
	}
	return s.Color == "" || s.Color == zeroShadowColor
}

// ParseShadow 解析阴影文本。
//
// "none" 与 "transparent" 映射为零值。其余输入按空白分词后，
// 先从字符串尾部定位颜色词元（十六进制、rgb()/rgba() 函数或
// 颜色关键字），剩余词元按位置依次作为 offsetX、offsetY、blur，
// 以及在 hasSpread 为真时的 spread。格式错误不会报错，缺失的
// 分量保持为零。
func ParseShadow(input string, hasSpread bool) Shadow {
	input = strings.TrimSpace(input)
	if input == "" || input == "none" || input == "transparent" {
		return ZeroShadow()
	}

	rest, color := splitTrailingColor(input)
	sh := Shadow{Color: color}
	if color == "" {
		sh.Color = zeroShadowColor
	}
	sh.PickerColor = PickerHex(sh.Color)

	fields := strings.Fields(rest)
	geom := []*float64{&sh.OffsetX, &sh.OffsetY, &sh.Blur}
	if hasSpread {
		geom = append(geom, &sh.Spread)
	}
	for i, f := range fields {
		if i >= len(geom) {
			break
		}
		*geom[i] = ParseScalar(f).Value
	}
	return sh
}

// splitTrailingColor 从阴影文本尾部分离颜色词元。
//
// rgb()/rgba() 内部含有空格与逗号，不能按空白分词处理，
// 因此先按函数前缀在整个字符串中定位。
func splitTrailingColor(s string) (rest, color string) {
	if i := strings.Index(s, "rgba("); i >= 0 {
		return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i:])
	}
	if i := strings.Index(s, "rgb("); i >= 0 {
		return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i:])
	}
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return s, ""
	}
	last := fields[len(fields)-1]
	if IsColorToken(last) {
		return strings.Join(fields[:len(fields)-1], " "), last
	}
	return s, ""
}

// FormatShadow 将阴影格式化为文本，是 [ParseShadow] 的逆操作。
//
// 零值折叠为 "none"（与解析端使用同一判定条件，保证对称）；
// hasSpread 为假时省略扩散分量。
func FormatShadow(sh Shadow, hasSpread bool) string {
	if sh.IsZero() {
		return "none"
	}
	parts := []string{
		pxToken(sh.OffsetX),
		pxToken(sh.OffsetY),
		pxToken(sh.Blur),
	}
	if hasSpread {
		parts = append(parts, pxToken(sh.Spread))
	}
	color := sh.Color
	if color == "" {
		color = zeroShadowColor
	}
	parts = append(parts, color)
	return strings.Join(parts, " ")
}

// pxToken 以像素单位格式化阴影的几何分量。
func pxToken(v float64) string {
	return Scalar{Value: v, Unit: UnitPx}.String()
}
