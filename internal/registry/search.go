package registry

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/purpose168/stylepad-cn/internal/style"
)

// familyKeywords 是触发"相关族扩展"的查询关键字：查询中包含
// 这些词时，把名称中含有该词的全部属性并入候选集，并递归
// 展开其中的简写。
var familyKeywords = []string{"border", "radius"}

// Engine 根据查询串与当前样式映射计算要展示的属性列表。
//
// Exclude 中的属性永远不出现在结果里，用于始终通过专用控件
// 编辑的属性（例如自定义 CSS 块）。
type Engine struct {
	Exclude map[string]struct{}
}

// NewEngine 创建一个带默认排除集的搜索引擎。
func NewEngine() *Engine {
	return &Engine{
		Exclude: map[string]struct{}{
			"customCSS": {},
		},
	}
}

// SetProperties 返回当前样式映射中已设置（非空）的属性名，
// 按名称升序。
func (e *Engine) SetProperties(styles style.Styles) []string {
	keys := styles.SetKeys()
	sort.Slice(keys, func(i, j int) bool {
		return strings.ToLower(keys[i]) < strings.ToLower(keys[j])
	})
	return keys
}

// FilteredProperties 返回按查询过滤并排序后的属性列表。
//
// 空查询返回全部注册属性加上已设置的未注册属性（剔除排除集），
// 按名称不区分大小写升序。非空查询的候选集由三部分构成：名称包含查询串的直接
// 匹配、直接匹配中简写的展开结果、以及已设置属性中的直接
// 匹配；此外 border/radius 族关键字触发族扩展。每个候选必须
// 自身包含查询串，或由族扩展规则显式引入——无关属性不会经由
// 简写展开泄漏进结果。
//
// 排序分两级且稳定：名称以查询串开头的排在仅包含查询串的
// 之前，组内按名称升序。
func (e *Engine) FilteredProperties(query string, styles style.Styles) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		seen := make(map[string]struct{})
		var out []string
		add := func(name string) {
			if _, ok := seen[name]; ok || e.excluded(name) {
				return
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
		for _, name := range All() {
			add(name)
		}
		// 已设置但未注册的属性也要出现在完整清单里
		for _, name := range styles.SetKeys() {
			add(name)
		}
		sort.Slice(out, func(i, j int) bool {
			return strings.ToLower(out[i]) < strings.ToLower(out[j])
		})
		return out
	}

	contains := func(name string) bool {
		return strings.Contains(strings.ToLower(name), q)
	}

	candidates := make(map[string]struct{})
	widened := make(map[string]struct{})

	// 直接匹配与简写展开
	for _, name := range All() {
		if !contains(name) {
			continue
		}
		candidates[name] = struct{}{}
		for _, related := range Expand(name) {
			candidates[related] = struct{}{}
		}
	}

	// 已设置属性中的直接匹配
	for _, name := range styles.SetKeys() {
		if contains(name) {
			candidates[name] = struct{}{}
		}
	}

	// 族扩展：查询中含有族关键字时，并入名称中含该词的全部
	// 属性，并递归展开其中的简写
	for _, keyword := range familyKeywords {
		if !strings.Contains(q, keyword) {
			continue
		}
		for _, name := range All() {
			if !strings.Contains(strings.ToLower(name), keyword) {
				continue
			}
			e.widen(name, candidates, widened)
		}
	}

	// 过滤：候选必须自身包含查询串，或由族扩展显式引入
	var out []string
	for name := range candidates {
		if e.excluded(name) {
			continue
		}
		if _, ok := widened[name]; !ok && !contains(name) {
			continue
		}
		out = append(out, name)
	}

	sort.SliceStable(out, func(i, j int) bool {
		li, lj := strings.ToLower(out[i]), strings.ToLower(out[j])
		pi, pj := strings.HasPrefix(li, q), strings.HasPrefix(lj, q)
		if pi != pj {
			return pi
		}
		return li < lj
	})
	return out
}

// widen 将一个属性及其简写展开递归并入候选集。
func (e *Engine) widen(name string, candidates, widened map[string]struct{}) {
	if _, ok := widened[name]; ok {
		return
	}
	candidates[name] = struct{}{}
	widened[name] = struct{}{}
	for _, related := range Expand(name) {
		e.widen(related, candidates, widened)
	}
}

// Suggest 为没有命中任何结果的查询提供"您是否想找"候选，
// 使用模糊匹配对全部注册属性打分。它独立于
// [Engine.FilteredProperties] 的包含式匹配语义，仅供命令行
// 与空结果提示使用。
func (e *Engine) Suggest(query string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	matches := fuzzy.Find(query, All())
	out := make([]string, 0, min(len(matches), 5))
	for i, m := range matches {
		if i >= 5 {
			break
		}
		if e.excluded(m.Str) {
			continue
		}
		out = append(out, m.Str)
	}
	return out
}

// excluded 判断属性是否在策略排除集中。
func (e *Engine) excluded(name string) bool {
	_, ok := e.Exclude[name]
	return ok
}
