package style

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// namedColors 将常用 CSS 颜色关键字映射为十六进制表示。
// 自然语言解释器与阴影解析器共享此表。
var namedColors = map[string]string{
	"black":       "#000000",
	"white":       "#ffffff",
	"red":         "#ff0000",
	"green":       "#008000",
	"blue":        "#0000ff",
	"yellow":      "#ffff00",
	"orange":      "#ffa500",
	"purple":      "#800080",
	"pink":        "#ffc0cb",
	"gray":        "#808080",
	"grey":        "#808080",
	"brown":       "#a52a2a",
	"cyan":        "#00ffff",
	"magenta":     "#ff00ff",
	"lime":        "#00ff00",
	"navy":        "#000080",
	"teal":        "#008080",
	"silver":      "#c0c0c0",
	"gold":        "#ffd700",
	"violet":      "#ee82ee",
	"indigo":      "#4b0082",
	"transparent": "#000000",
}

// NamedColorHex 查找颜色关键字对应的十六进制值。
func NamedColorHex(name string) (string, bool) {
	hex, ok := namedColors[strings.ToLower(strings.TrimSpace(name))]
	return hex, ok
}

// NamedColorNames 返回所有已知颜色关键字，按名称升序。
func NamedColorNames() []string {
	names := make([]string, 0, len(namedColors))
	for name := range namedColors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// hexColorRe 匹配 #RGB、#RRGGBB 与 #RRGGBBAA 形式。
var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// rgbColorRe 提取 rgb()/rgba() 的数值分量。
var rgbColorRe = regexp.MustCompile(`rgba?\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)`)

// IsColorToken 判断一个词元是否为颜色：十六进制、rgb()/rgba()
// 函数或已知的颜色关键字。
func IsColorToken(tok string) bool {
	tok = strings.TrimSpace(tok)
	if hexColorRe.MatchString(tok) {
		return true
	}
	if strings.HasPrefix(tok, "rgb(") || strings.HasPrefix(tok, "rgba(") {
		return true
	}
	_, ok := NamedColorHex(tok)
	return ok
}

// PickerHex 将任意颜色词元转换为颜色选择器可用的十六进制近似值。
//
// 十六进制输入原样返回（规范化为小写）；rgb()/rgba() 丢弃透明度
// 分量后转换；关键字查表。无法识别的输入返回黑色。
// 注意这只是显示用的近似：持久化必须保留原始词元。
func PickerHex(tok string) string {
	tok = strings.TrimSpace(tok)
	if hexColorRe.MatchString(tok) {
		return strings.ToLower(tok)
	}
	if m := rgbColorRe.FindStringSubmatch(tok); m != nil {
		r, _ := strconv.Atoi(m[1])
		g, _ := strconv.Atoi(m[2])
		b, _ := strconv.Atoi(m[3])
		c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
		return c.Clamped().Hex()
	}
	if hex, ok := NamedColorHex(tok); ok {
		return hex
	}
	return "#000000"
}
