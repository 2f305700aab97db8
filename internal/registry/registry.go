// Package registry 维护所有受支持样式属性的静态分类：值类型、
// 简写展开关系以及控件选择提示（数值范围、枚举选项）。
//
// 全部描述符表在进程启动时构建一次，之后只读。
package registry

import (
	"sort"
	"strings"
	"sync"

	"github.com/purpose168/stylepad-cn/internal/stringext"
)

// Kind 表示属性的值类型分类。
type Kind int

// 属性分类常量
const (
	KindFreeform   Kind = iota // 自由文本
	KindNumeric                // 数值+单位
	KindColor                  // 颜色
	KindEnumerated             // 固定选项列表
	KindShorthand              // 简写（展开为多个具体属性）
)

// String 返回分类的可读名称。
func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindColor:
		return "color"
	case KindEnumerated:
		return "enumerated"
	case KindShorthand:
		return "shorthand"
	default:
		return "freeform"
	}
}

// Range 描述数值属性编辑控件的范围提示。
type Range struct {
	Min  float64
	Max  float64
	Step float64
}

// Descriptor 是单个属性的不可变注册表条目。
type Descriptor struct {
	Name    string
	Kind    Kind
	Related []string // 简写展开出的具体属性（仅简写）
	Range   Range    // 数值范围提示（仅数值）
	Options []string // 选项列表（仅枚举）
}

// genericRange 是未在范围表中登记的数值属性使用的通用回退范围。
var genericRange = Range{Min: 0, Max: 1000, Step: 1}

// 数值范围按属性族区分默认值：尺寸类比间距类范围更宽，
// 透明度等限制在 [0,1] 且步长 0.01。
var numericRanges = map[string]Range{
	// 尺寸
	"width":     {0, 2000, 1},
	"height":    {0, 2000, 1},
	"minWidth":  {0, 2000, 1},
	"minHeight": {0, 2000, 1},
	"maxWidth":  {0, 2000, 1},
	"maxHeight": {0, 2000, 1},

	// 间距
	"padding":       {0, 200, 1},
	"paddingTop":    {0, 200, 1},
	"paddingRight":  {0, 200, 1},
	"paddingBottom": {0, 200, 1},
	"paddingLeft":   {0, 200, 1},
	"margin":        {0, 200, 1},
	"marginTop":     {0, 200, 1},
	"marginRight":   {0, 200, 1},
	"marginBottom":  {0, 200, 1},
	"marginLeft":    {0, 200, 1},
	"gap":           {0, 200, 1},
	"rowGap":        {0, 200, 1},
	"columnGap":     {0, 200, 1},

	// 边框
	"borderWidth":       {0, 50, 1},
	"borderTopWidth":    {0, 50, 1},
	"borderRightWidth":  {0, 50, 1},
	"borderBottomWidth": {0, 50, 1},
	"borderLeftWidth":   {0, 50, 1},

	// 圆角
	"borderRadius":            {0, 100, 1},
	"borderTopLeftRadius":     {0, 100, 1},
	"borderTopRightRadius":    {0, 100, 1},
	"borderBottomRightRadius": {0, 100, 1},
	"borderBottomLeftRadius":  {0, 100, 1},

	// 排版
	"fontSize":      {0, 200, 1},
	"lineHeight":    {0, 5, 0.1},
	"letterSpacing": {-10, 50, 0.5},

	// 其他
	"opacity": {0, 1, 0.01},
	"zIndex":  {-100, 1000, 1},
	"top":     {-2000, 2000, 1},
	"right":   {-2000, 2000, 1},
	"bottom":  {-2000, 2000, 1},
	"left":    {-2000, 2000, 1},
}

// colorProperties 是按名称精确匹配的颜色属性集合。
// 此外任何名称（不区分大小写）包含 "color" 的属性都自动按
// 颜色控件处理，新增 *Color 属性无需更新此表。
var colorProperties = map[string]struct{}{
	"color":           {},
	"backgroundColor": {},
	"borderColor":     {},
}

// enumOptions 是枚举属性的固定有序选项表。
var enumOptions = map[string][]string{
	"position":       {"static", "relative", "absolute", "fixed", "sticky"},
	"display":        {"block", "inline", "inline-block", "flex", "grid", "none"},
	"flexDirection":  {"row", "row-reverse", "column", "column-reverse"},
	"flexWrap":       {"nowrap", "wrap", "wrap-reverse"},
	"justifyContent": {"flex-start", "center", "flex-end", "space-between", "space-around", "space-evenly"},
	"alignItems":     {"stretch", "flex-start", "center", "flex-end", "baseline"},
	"textAlign":      {"left", "center", "right", "justify"},
	"fontWeight":     {"normal", "bold", "100", "200", "300", "400", "500", "600", "700", "800", "900"},
	"fontStyle":      {"normal", "italic"},
	"textTransform":  {"none", "uppercase", "lowercase", "capitalize"},
	"textDecoration": {"none", "underline", "line-through"},
	"borderStyle":    {"none", "solid", "dashed", "dotted", "double"},
	"overflow":       {"visible", "hidden", "scroll", "auto"},
	"objectFit":      {"fill", "contain", "cover", "none", "scale-down"},
	"cursor":         {"auto", "default", "pointer", "text", "move", "not-allowed"},
}

// shorthands 将简写属性映射到它展开的具体属性（有序）。
// 一个属性是简写当且仅当此表中存在非空条目。
var shorthands = map[string][]string{
	"padding":      {"paddingTop", "paddingRight", "paddingBottom", "paddingLeft"},
	"margin":       {"marginTop", "marginRight", "marginBottom", "marginLeft"},
	"borderRadius": {"borderTopLeftRadius", "borderTopRightRadius", "borderBottomRightRadius", "borderBottomLeftRadius"},
	"borderWidth":  {"borderTopWidth", "borderRightWidth", "borderBottomWidth", "borderLeftWidth"},
	"borderStyle":  {"borderTopStyle", "borderRightStyle", "borderBottomStyle", "borderLeftStyle"},
	"borderColor":  {"borderTopColor", "borderRightColor", "borderBottomColor", "borderLeftColor"},
	"border":       {"borderWidth", "borderStyle", "borderColor"},
	"gap":          {"rowGap", "columnGap"},
	"inset":        {"top", "right", "bottom", "left"},
}

// freeformProperties 是没有专用控件类型的已注册属性。
var freeformProperties = []string{
	"backgroundImage",
	"boxShadow",
	"textShadow",
	"fontFamily",
	"transform",
	"transition",
	"filter",
	"boxSizing",
	"aspectRatio",
}

// allOnce 惰性构建一次完整的属性名清单。
var allOnce = sync.OnceValue(buildAll)

// buildAll 汇总各表的键与简写展开出的具体属性。
func buildAll() []string {
	seen := make(map[string]struct{})
	add := func(name string) {
		seen[name] = struct{}{}
	}
	for name := range numericRanges {
		add(name)
	}
	for name := range colorProperties {
		add(name)
	}
	for name := range enumOptions {
		add(name)
	}
	for name, related := range shorthands {
		add(name)
		for _, r := range related {
			add(r)
		}
	}
	for _, name := range freeformProperties {
		add(name)
	}
	// 四边边框的具体颜色/样式由简写展开引入后补齐
	for _, name := range []string{
		"borderTopColor", "borderRightColor", "borderBottomColor", "borderLeftColor",
		"borderTopStyle", "borderRightStyle", "borderBottomStyle", "borderLeftStyle",
	} {
		add(name)
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	return names
}

// All 返回所有已注册属性名，按名称（不区分大小写）升序。
// 返回的切片是副本，调用方可以自由修改。
func All() []string {
	all := allOnce()
	out := make([]string, len(all))
	copy(out, all)
	return out
}

// IsShorthand 判断属性是否为简写。
func IsShorthand(name string) bool {
	return len(shorthands[name]) > 0
}

// Expand 返回简写属性展开的具体属性列表。
// 非简写属性返回 nil。
func Expand(name string) []string {
	related := shorthands[name]
	if len(related) == 0 {
		return nil
	}
	out := make([]string, len(related))
	copy(out, related)
	return out
}

// IsNumeric 判断属性是否登记为数值属性。
func IsNumeric(name string) bool {
	_, ok := numericRanges[name]
	return ok
}

// IsColor 判断属性是否为颜色属性：精确命中颜色表，或名称
// （不区分大小写）包含 "color"。
func IsColor(name string) bool {
	if _, ok := colorProperties[name]; ok {
		return true
	}
	return strings.Contains(strings.ToLower(name), "color")
}

// NumericRange 返回数值属性的范围提示。
// 未登记的属性得到通用回退范围。
func NumericRange(name string) Range {
	if r, ok := numericRanges[name]; ok {
		return r
	}
	return genericRange
}

// Options 返回枚举属性的选项列表，非枚举属性返回 nil。
func Options(name string) []string {
	opts := enumOptions[name]
	if len(opts) == 0 {
		return nil
	}
	out := make([]string, len(opts))
	copy(out, opts)
	return out
}

// Classify 解析属性的分类，优先级为：
// 简写 > 数值 > 颜色 > 枚举 > 自由文本。
// 一个属性可以同时是数值属性和某个简写族的成员——这里的
// 分类是按属性本身进行的，展开关系单独查询。
func Classify(name string) Kind {
	switch {
	case IsShorthand(name):
		return KindShorthand
	case IsNumeric(name):
		return KindNumeric
	case IsColor(name):
		return KindColor
	case len(enumOptions[name]) > 0:
		return KindEnumerated
	default:
		return KindFreeform
	}
}

// Lookup 返回属性的完整描述符。未注册的属性得到自由文本
// 分类与通用数值范围。
func Lookup(name string) Descriptor {
	d := Descriptor{
		Name: name,
		Kind: Classify(name),
	}
	switch d.Kind {
	case KindShorthand:
		d.Related = Expand(name)
		if IsNumeric(name) {
			d.Range = NumericRange(name)
		}
	case KindNumeric:
		d.Range = NumericRange(name)
	case KindEnumerated:
		d.Options = Options(name)
	}
	return d
}

// DisplayName 将驼峰属性名转换为可读标签，
// 例如 "backgroundColor" → "Background Color"。
func DisplayName(name string) string {
	var words []string
	start := 0
	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			words = append(words, name[start:i])
			start = i
		}
	}
	words = append(words, name[start:])
	return stringext.Capitalize(strings.ToLower(strings.Join(words, " ")))
}
