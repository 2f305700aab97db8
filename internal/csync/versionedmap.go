package csync

import (
	"sync/atomic"
)

// VersionedMap 是带单调递增版本号的线程安全映射。
//
// 会话用它做权威样式存储：渲染层比较版本号即可判断样式是否
// 被外部变更过，而不必逐键对比两个快照。
type VersionedMap[K comparable, V any] struct {
	m *Map[K, V]
	v atomic.Uint64
}

// NewVersionedMap 创建一个空的带版本号映射。
func NewVersionedMap[K comparable, V any]() *VersionedMap[K, V] {
	return &VersionedMap[K, V]{
		m: NewMap[K, V](),
	}
}

// Set 写入一个键值对并递增版本号。
func (m *VersionedMap[K, V]) Set(key K, value V) {
	m.m.Set(key, value)
	m.v.Add(1)
}

// Del 删除一个键并递增版本号。
// 删除不存在的键同样递增：调用方表达了一次变更意图。
func (m *VersionedMap[K, V]) Del(key K) {
	m.m.Del(key)
	m.v.Add(1)
}

// Copy 返回映射内容的值快照。
func (m *VersionedMap[K, V]) Copy() map[K]V {
	return m.m.Copy()
}

// Version 返回当前版本号。
func (m *VersionedMap[K, V]) Version() uint64 {
	return m.v.Load()
}
