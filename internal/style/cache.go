package style

import (
	"github.com/purpose168/stylepad-cn/internal/csync"
)

// DisplayCache 缓存每个数值属性最近一次解析出的标量，
// 用于在多次渲染之间保留用户正在编辑的单位选择。
//
// 缓存永远不是持久化值的事实来源——样式映射才是权威数据。
// 缓存必须在选中元素切换时整体清空。
type DisplayCache struct {
	entries *csync.Map[string, Scalar]
}

// NewDisplayCache 创建一个空的显示缓存。
func NewDisplayCache() *DisplayCache {
	return &DisplayCache{entries: csync.NewMap[string, Scalar]()}
}

// Put 记录属性的显示标量。
func (c *DisplayCache) Put(key string, sc Scalar) {
	c.entries.Set(key, sc)
}

// Get 返回属性缓存的显示标量。
func (c *DisplayCache) Get(key string) (Scalar, bool) {
	return c.entries.Get(key)
}

// Len 返回缓存条目数量。
func (c *DisplayCache) Len() int {
	return c.entries.Len()
}

// Clear 清空全部缓存条目。必须在元素切换时调用。
func (c *DisplayCache) Clear() {
	c.entries.Reset(make(map[string]Scalar))
}

// Reconcile 在外部变更（元素切换或样式从持久化存储重新同步）
// 后，将缓存与权威样式映射对齐。
//
// 映射中存在的键一律从映射值重建缓存条目。映射中缺失的键
// 仅在元素未变化时保留（保护尚未落盘的进行中编辑不被陈旧的
// 重渲染冲掉）；元素变化时整体清空后重建。
func (c *DisplayCache) Reconcile(s Styles, sameElement bool) {
	if !sameElement {
		c.Clear()
	}
	for key, value := range s {
		if value == "" {
			continue
		}
		c.entries.Set(key, ParseScalar(value))
	}
}
