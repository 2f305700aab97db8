// Package style 实现样式值模型：标量数值、阴影与渐变的
// 解析与格式化，以及样式映射的不可变变更原语。
package style

import (
	"regexp"
	"strconv"
	"strings"
)

// Unit 表示标量值的长度/百分比单位。
type Unit string

// 支持的单位常量
const (
	UnitPx      Unit = "px"  // 像素（默认单位）
	UnitEm      Unit = "em"  // 相对字体大小
	UnitPercent Unit = "%"   // 百分比
	UnitDvh     Unit = "dvh" // 动态视口高度
	UnitDvw     Unit = "dvw" // 动态视口宽度
	UnitRem     Unit = "rem" // 相对根字体大小
	UnitVh      Unit = "vh"  // 视口高度
	UnitVw      Unit = "vw"  // 视口宽度
)

// units 按匹配优先级排列的单位列表。
// rem 必须排在 em 之前，否则 "1rem" 会被误判为 em。
var units = []Unit{UnitRem, UnitEm, UnitPx, UnitDvh, UnitDvw, UnitVh, UnitVw}

// Scalar 表示一个带单位的数值，例如 "12px" 或 "50%"。
type Scalar struct {
	Value float64 // 数值大小
	Unit  Unit    // 单位
}

// scalarRe 匹配标量文法：-?digits(.digits)?unit?
var scalarRe = regexp.MustCompile(`^(-?\d+(?:\.\d+)?)([a-z%]*)$`)

// ParseScalar 将文本解析为标量值。
//
// 解析是宽容的：任何不符合文法的输入都会退化为 {0, px}，
// 而不是返回错误。百分号在通用单位匹配之前检测，避免歧义。
func ParseScalar(input string) Scalar {
	input = strings.TrimSpace(strings.ToLower(input))
	m := scalarRe.FindStringSubmatch(input)
	if m == nil {
		return Scalar{0, UnitPx}
	}

	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Scalar{0, UnitPx}
	}

	suffix := m[2]
	if suffix == "" {
		return Scalar{value, UnitPx}
	}
	// 先检测百分号后缀
	if suffix == string(UnitPercent) {
		return Scalar{value, UnitPercent}
	}
	for _, u := range units {
		if suffix == string(u) {
			return Scalar{value, u}
		}
	}
	return Scalar{0, UnitPx}
}

// String 将标量格式化为文本表示。
//
// px 的零值折叠为裸 "0"；其余单位即使在零值处也保留符号，
// 例如 "0%" 与 "0" 表示不同的语义。
func (s Scalar) String() string {
	if s.Value == 0 && (s.Unit == UnitPx || s.Unit == "") {
		return "0"
	}
	unit := s.Unit
	if unit == "" {
		unit = UnitPx
	}
	return formatNumber(s.Value) + string(unit)
}

// formatNumber 以最短形式格式化浮点数（不带多余的小数零）。
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
