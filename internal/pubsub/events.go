// Package pubsub 为编辑器会话提供进程内的发布-订阅事件代理。
package pubsub

import "context"

// 事件类型常量定义
const (
	CreatedEvent EventType = "created" // 属性首次设置
	UpdatedEvent EventType = "updated" // 属性值变更
	DeletedEvent EventType = "deleted" // 属性被清除
)

// Subscriber 订阅者接口。
// 订阅者通过此接口接收事件通知。
type Subscriber[T any] interface {
	Subscribe(context.Context) <-chan Event[T]
}

type (
	// EventType 事件类型标识符。
	EventType string

	// Event 表示资源生命周期中的一个事件。
	// T 是事件载荷的类型。
	Event[T any] struct {
		Type    EventType // 事件类型
		Payload T         // 事件载荷数据
	}

	// Publisher 发布者接口。
	Publisher[T any] interface {
		Publish(EventType, T)
	}
)
