package style

import (
	"maps"
	"strings"
)

// Styles 是元素的样式映射：从驼峰命名的属性名到字符串值的
// 扁平映射，与线上 JSON 形状一致。
//
// Styles 按值语义使用：所有变更操作返回新的映射，调用方持有的
// 旧映射保持不变，因此一次被中止的确认不会对共享状态产生
// 可观察的副作用。
//
// 不变量：键缺失与空字符串值等价，均表示属性未设置。
type Styles map[string]string

// Clone 返回映射的浅拷贝。nil 接收者返回空映射。
func (s Styles) Clone() Styles {
	out := make(Styles, len(s)+1)
	maps.Copy(out, s)
	return out
}

// Get 返回属性值，未设置时返回空字符串。
func (s Styles) Get(key string) string {
	return s[key]
}

// IsSet 判断属性是否已设置（存在且非空）。
func (s Styles) IsSet(key string) bool {
	return s[key] != ""
}

// Set 返回设置了给定属性的新映射。
//
// 空白值等价于删除：写入空字符串即移除该键。非空值在写入前
// 去除首尾空白。
func (s Styles) Set(key, value string) Styles {
	out := s.Clone()
	value = strings.TrimSpace(value)
	if value == "" {
		delete(out, key)
		return out
	}
	out[key] = value
	return out
}

// SetAll 返回将一组键全部设为同一值的新映射。
// 这是组写入原语：所有键在同一个逻辑事务中获得相同的格式化
// 值，不存在部分失败的状态。
func (s Styles) SetAll(keys []string, value string) Styles {
	out := s.Clone()
	value = strings.TrimSpace(value)
	for _, key := range keys {
		if value == "" {
			delete(out, key)
			continue
		}
		out[key] = value
	}
	return out
}

// Merge 返回浅合并后的新映射：传入的键覆盖现有键，其余键
// 保持不变。传入的空值按删除处理。
func (s Styles) Merge(in Styles) Styles {
	out := s.Clone()
	for key, value := range in {
		if strings.TrimSpace(value) == "" {
			delete(out, key)
			continue
		}
		out[key] = strings.TrimSpace(value)
	}
	return out
}

// SetKeys 返回所有已设置（非空）属性名的集合。
func (s Styles) SetKeys() []string {
	keys := make([]string, 0, len(s))
	for key, value := range s {
		if value != "" {
			keys = append(keys, key)
		}
	}
	return keys
}
