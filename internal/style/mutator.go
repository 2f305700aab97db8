package style

// Mutator 将单个或成组的属性变更应用到样式映射，并保持
// 数值显示缓存与权威映射同步。
//
// 所有方法都返回新的映射，输入映射不被修改。
type Mutator struct {
	cache *DisplayCache
}

// NewMutator 创建一个绑定了显示缓存的变更器。
func NewMutator(cache *DisplayCache) *Mutator {
	if cache == nil {
		cache = NewDisplayCache()
	}
	return &Mutator{cache: cache}
}

// Cache 返回变更器绑定的显示缓存。
func (m *Mutator) Cache() *DisplayCache {
	return m.cache
}

// Set 设置单个属性。空白值删除该键。
func (m *Mutator) Set(s Styles, key, value string) Styles {
	return s.Set(key, value)
}

// SetNumeric 以标量形式设置数值属性。
//
// 值经 [Scalar.String] 格式化后写入映射，同时更新显示缓存，
// 使滑块、数字输入框与单位选择器在同一次交互中保持一致。
func (m *Mutator) SetNumeric(s Styles, key string, sc Scalar) Styles {
	m.cache.Put(key, sc)
	return s.Set(key, sc.String())
}

// SetGroup 将一组属性在一个逻辑事务中设为同一值，
// 例如四个外边距或四个圆角。组写入没有部分失败的状态。
func (m *Mutator) SetGroup(s Styles, keys []string, value string) Styles {
	return s.SetAll(keys, value)
}

// SetGroupNumeric 以标量形式执行组写入，并为组内每个键更新
// 显示缓存。
func (m *Mutator) SetGroupNumeric(s Styles, keys []string, sc Scalar) Styles {
	for _, key := range keys {
		m.cache.Put(key, sc)
	}
	return s.SetAll(keys, sc.String())
}
