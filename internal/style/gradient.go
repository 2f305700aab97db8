package style

import (
	"regexp"
	"strings"
)

// GradientStop 表示渐变中的一个颜色停靠点。
// Color 保留原始词元（十六进制、rgb()/rgba() 或关键字），
// Position 为可选的尾部位置词元，例如 "50%"。
type GradientStop struct {
	Color    string
	Position string
}

// Gradient 表示一个 linear-gradient 规格。
type Gradient struct {
	Direction string // 角度（"90deg"）或方位关键字（"to right"）
	Stops     []GradientStop
}

// DefaultGradientDirection 是未显式指定方向时采用的垂直方向。
const DefaultGradientDirection = "180deg"

// stopPositionRe 匹配停靠点尾部的百分比/长度词元。
var stopPositionRe = regexp.MustCompile(`^-?\d+(?:\.\d+)?(?:%|px|em|rem|vh|vw|dvh|dvw)$`)

// angleRe 匹配角度词元。
var angleRe = regexp.MustCompile(`-?\d+(?:\.\d+)?(?:deg|grad|rad|turn)`)

// ParseGradient 解析 linear-gradient() 文本。
//
// 括号内的参数列表只在顶层逗号处切分（跟踪括号深度，使
// rgb()/rgba() 内部的逗号不会错误地拆开一个停靠点）。首段
// 当且仅当包含角度单位或方位关键字时才作为方向，否则使用
// 固定的垂直默认方向。无法解析的输入返回空渐变。
func ParseGradient(input string) Gradient {
	input = strings.TrimSpace(input)
	const prefix = "linear-gradient("
	if !strings.HasPrefix(input, prefix) || !strings.HasSuffix(input, ")") {
		return Gradient{Direction: DefaultGradientDirection}
	}
	body := input[len(prefix) : len(input)-1]

	segments := splitTopLevel(body)
	g := Gradient{Direction: DefaultGradientDirection}
	start := 0
	if len(segments) > 0 && isDirection(segments[0]) {
		g.Direction = strings.TrimSpace(segments[0])
		start = 1
	}
	for _, seg := range segments[start:] {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		g.Stops = append(g.Stops, parseStop(seg))
	}
	return g
}

// splitTopLevel 在括号深度为零的逗号处切分参数列表。
func splitTopLevel(s string) []string {
	var parts []string
	depth := 0
	last := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[last:i])
				last = i + 1
			}
		}
	}
	parts = append(parts, s[last:])
	return parts
}

// isDirection 判断首段是否为方向说明。
func isDirection(seg string) bool {
	seg = strings.TrimSpace(seg)
	if strings.HasPrefix(seg, "to ") {
		return true
	}
	return angleRe.MatchString(seg)
}

// parseStop 将一段文本拆分为颜色与可选的尾部位置词元。
func parseStop(seg string) GradientStop {
	fields := strings.Fields(seg)
	if len(fields) == 0 {
		return GradientStop{}
	}
	last := fields[len(fields)-1]
	if len(fields) > 1 && stopPositionRe.MatchString(last) {
		return GradientStop{
			Color:    strings.Join(fields[:len(fields)-1], " "),
			Position: last,
		}
	}
	return GradientStop{Color: strings.Join(fields, " ")}
}

// FormatGradient 将渐变格式化为 linear-gradient() 文本。
// 颜色词元原样输出，不做有损的重新编码。
func FormatGradient(g Gradient) string {
	var b strings.Builder
	b.WriteString("linear-gradient(")
	dir := g.Direction
	if dir == "" {
		dir = DefaultGradientDirection
	}
	b.WriteString(dir)
	for _, stop := range g.Stops {
		b.WriteString(", ")
		b.WriteString(stop.Color)
		if stop.Position != "" {
			b.WriteString(" ")
			b.WriteString(stop.Position)
		}
	}
	b.WriteString(")")
	return b.String()
}
