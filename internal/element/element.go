// Package element 管理选中元素的编辑会话：权威样式映射的
// 生命周期、数值显示缓存的对齐，以及与外部元素树的协作接口。
package element

import (
	"github.com/purpose168/stylepad-cn/internal/style"
)

// Element 表示画布上一个可编辑的 UI 元素。
type Element struct {
	ID     string         // 元素唯一标识
	Type   string         // 组件类型，例如 "button"、"div"
	Props  map[string]any // 非样式属性
	Styles style.Styles   // 持久化的样式映射
}

// TreeMutator 是外部元素树编辑器的协作接口。
// 结构性操作（插入、重挂父节点）全部委托给它，本核心不
// 实现任何布局或渲染。
type TreeMutator interface {
	// AddElement 在给定父节点下插入新元素，返回新元素 ID。
	AddElement(parentID string, el Element) (string, error)
	// UpdateElement 对元素的非样式属性做部分更新。
	UpdateElement(id string, props map[string]any) error
	// DeleteElement 删除元素。
	DeleteElement(id string) error
	// Reparent 将元素移动到新的父节点下。
	Reparent(id, newParentID string) error
}

// Notifier 是即发即弃的通知接收器（toast）。
type Notifier interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

// NopNotifier 丢弃所有通知。
type NopNotifier struct{}

func (NopNotifier) Info(string)  {}
func (NopNotifier) Warn(string)  {}
func (NopNotifier) Error(string) {}
