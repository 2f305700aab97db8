// Package intent 实现本地离线的自然语言意图解释器：基于模式的
// 提取器，把自由文本指令映射为部分样式变更。
//
// 它作为远程理解服务的同进程回退，也用于在委托远程服务之前
// 做预校验与预览。
package intent

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/purpose168/stylepad-cn/internal/stringext"
	"github.com/purpose168/stylepad-cn/internal/style"
)

// bareNumberRe 匹配不带单位的裸数值词元。
var bareNumberRe = regexp.MustCompile(`^\d+(\.\d+)?$`)

// colorPattern 匹配一个颜色词元：十六进制、rgb()/rgba() 或
// 已知颜色关键字。
var colorPattern = `(#[0-9a-fA-F]{6}(?:[0-9a-fA-F]{2})?|#[0-9a-fA-F]{3}|rgba?\([^)]+\)|` +
	strings.Join(style.NamedColorNames(), "|") + `)`

// numberPattern 匹配数值与可选的单位词元。
const numberPattern = `(-?\d+(?:\.\d+)?)\s*(px|em|rem|%|dvh|dvw|vh|vw)?`

// category 是策略表中的一条记录：一个独立的意图类别，带有
// 按优先级排列的模式与对应的提取函数。
//
// 类别内第一个命中的模式短路该类别；类别之间相互独立，
// 一条指令可以同时落入多个类别并设置多个互不相关的属性。
type category struct {
	name     string
	patterns []*regexp.Regexp
	extract  func(m []string) style.Styles
}

// categories 是按固定顺序求值的意图类别表。
// 新增类别只需追加记录，不需要新的控制流。
var categories = []category{
	{
		name: "backgroundColor",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?:background|bg)(?:\s+colou?r)?(?:\s+(?:to|is|of|=|:))?\s+` + colorPattern),
			regexp.MustCompile(colorPattern + `\s+background`),
		},
		extract: singleColor("backgroundColor"),
	},
	{
		name: "color",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?:text|font)\s+colou?r(?:\s+(?:to|is|of|=|:))?\s+` + colorPattern),
			regexp.MustCompile(`(?:text|font)(?:\s+(?:to|is))?\s+` + colorPattern),
		},
		extract: singleColor("color"),
	},
	{
		name: "width",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`width(?:\s+(?:to|of|is|=|:))?\s+` + numberPattern),
		},
		extract: singleNumber("width"),
	},
	{
		name: "height",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?:^|[^-\w])height(?:\s+(?:to|of|is|=|:))?\s+` + numberPattern),
		},
		extract: singleNumber("height"),
	},
	{
		name: "fontSize",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?:font|text)\s*size(?:\s+(?:to|of|is|=|:))?\s+` + numberPattern),
		},
		extract: singleNumber("fontSize"),
	},
	{
		name: "padding",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`padding(?:\s+(?:to|of|is|=|:))?\s+` + numberPattern),
		},
		extract: singleNumber("padding"),
	},
	{
		name: "margin",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`margin(?:\s+(?:to|of|is|=|:))?\s+` + numberPattern),
		},
		extract: singleNumber("margin"),
	},
	{
		name: "borderRadius",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?:border\s*)?radius(?:\s+(?:to|of|is|=|:))?\s+` + numberPattern),
			regexp.MustCompile(`rounded(?:\s+corners?)?`),
		},
		extract: func(m []string) style.Styles {
			if len(m) > 1 && m[1] != "" {
				return style.Styles{"borderRadius": formatNumber(m[1], m[2])}
			}
			// "rounded corners" 等无数值的说法使用固定默认圆角
			return style.Styles{"borderRadius": "8px"}
		},
	},
	{
		name: "textAlign",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?:text\s*align(?:ment)?|align\s+(?:the\s+)?text)(?:\s+(?:to|is|=|:))?\s+(left|center|right|justify)`),
			regexp.MustCompile(`(center)\s+(?:the\s+)?text`),
		},
		extract: func(m []string) style.Styles {
			return style.Styles{"textAlign": m[1]}
		},
	},
	{
		name: "display",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`display(?:\s+(?:to|is|=|:))?\s+(inline-block|block|inline|flex|grid|none)`),
			regexp.MustCompile(`\b(hide)\b`),
		},
		extract: func(m []string) style.Styles {
			if m[1] == "hide" {
				return style.Styles{"display": "none"}
			}
			return style.Styles{"display": m[1]}
		},
	},
	{
		name: "flexDirection",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?:flex\s*)?direction(?:\s+(?:to|is|=|:))?\s+(row-reverse|column-reverse|row|column)`),
			regexp.MustCompile(`(vertical|horizontal)\s+(?:layout|stack)`),
		},
		extract: func(m []string) style.Styles {
			switch m[1] {
			case "vertical":
				return style.Styles{"flexDirection": "column"}
			case "horizontal":
				return style.Styles{"flexDirection": "row"}
			}
			return style.Styles{"flexDirection": m[1]}
		},
	},
	{
		name: "justifyContent",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`justify(?:\s*content)?(?:\s+(?:to|is|=|:))?\s+(flex-start|flex-end|center|space-between|space-around|space-evenly|start|end)`),
		},
		extract: func(m []string) style.Styles {
			value := m[1]
			switch value {
			case "start":
				value = "flex-start"
			case "end":
				value = "flex-end"
			}
			return style.Styles{"justifyContent": value}
		},
	},
	{
		name: "opacity",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`opacity(?:\s+(?:to|is|=|:))?\s+(\d+(?:\.\d+)?)\s*(%)?`),
		},
		extract: func(m []string) style.Styles {
			value := style.ParseScalar(m[1]).Value
			// 百分比与大于 1 的裸数值都按百分比处理
			if m[2] == "%" || value > 1 {
				value /= 100
			}
			return style.Styles{"opacity": strconv.FormatFloat(value, 'f', -1, 64)}
		},
	},
	{
		name: "fontWeight",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?:font\s*)?weight(?:\s+(?:to|is|=|:))?\s+(normal|bold|[1-9]00)`),
			regexp.MustCompile(`\b(bold)\b`),
		},
		extract: func(m []string) style.Styles {
			return style.Styles{"fontWeight": m[1]}
		},
	},
	{
		name: "border",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`border(?:\s+(?:to|of|is|=|:))?\s+(\d+(?:\.\d+)?)\s*(px)?(?:\s+(solid|dashed|dotted|double))?(?:\s+` + colorPattern + `)?`),
			regexp.MustCompile(`(?:add|with)\s+(?:a\s+)?border\b`),
			regexp.MustCompile(`(solid|dashed|dotted)\s+border(?:\s+` + colorPattern + `)?`),
		},
		extract: extractBorder,
	},
}

// Interpret 将自由文本指令映射为部分样式变更。
//
// 所有类别独立求值，因此一条指令可以同时设置多个互不相关的
// 属性；返回 false 表示没有任何类别命中。
func Interpret(prompt string) (style.Styles, bool) {
	prompt = strings.ToLower(stringext.NormalizeSpace(prompt))
	if prompt == "" {
		return nil, false
	}

	out := style.Styles{}
	for _, cat := range categories {
		for _, re := range cat.patterns {
			m := re.FindStringSubmatch(prompt)
			if m == nil {
				continue
			}
			for key, value := range cat.extract(m) {
				out[key] = value
			}
			// 类别内第一个命中的模式胜出
			break
		}
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

// singleColor 构造一个把首个捕获组解析为颜色的提取器。
// 颜色关键字先经关键字表映射为十六进制再写入。
func singleColor(key string) func(m []string) style.Styles {
	return func(m []string) style.Styles {
		return style.Styles{key: resolveColor(m[1])}
	}
}

// singleNumber 构造一个把首个捕获组解析为带单位数值的提取器。
func singleNumber(key string) func(m []string) style.Styles {
	return func(m []string) style.Styles {
		return style.Styles{key: formatNumber(m[1], m[2])}
	}
}

// resolveColor 将颜色词元规范化：关键字映射为十六进制，
// 其余形式保留原样。
func resolveColor(tok string) string {
	if hex, ok := style.NamedColorHex(tok); ok && tok != "transparent" {
		return hex
	}
	return tok
}

// formatNumber 将数值与可选单位组合为样式值，默认单位为 px。
func formatNumber(num, unit string) string {
	if unit == "" {
		unit = "px"
	}
	return num + unit
}

// extractBorder 从匹配结果组装 border 简写值。
// 缺省宽度 1px、线型 solid、颜色黑色。
func extractBorder(m []string) style.Styles {
	width := "1px"
	lineStyle := "solid"
	color := "#000000"

	for i := 1; i < len(m); i++ {
		tok := m[i]
		if tok == "" || tok == "px" {
			continue
		}
		switch {
		case bareNumberRe.MatchString(tok):
			width = tok + "px"
		case tok == "solid" || tok == "dashed" || tok == "dotted" || tok == "double":
			lineStyle = tok
		default:
			color = resolveColor(tok)
		}
	}
	return style.Styles{"border": fmt.Sprintf("%s %s %s", width, lineStyle, color)}
}
