package element

import (
	"context"
	"sync"

	"github.com/purpose168/stylepad-cn/internal/csync"
	"github.com/purpose168/stylepad-cn/internal/pubsub"
	"github.com/purpose168/stylepad-cn/internal/style"
)

// StyleChange 是会话发布的样式变更事件载荷。
type StyleChange struct {
	ElementID string // 目标元素
	Key       string // 属性名
	Value     string // 新值；删除事件中为空
}

// Session 是选中元素的编辑会话。
//
// 会话持有权威样式映射（带版本号，供渲染层检测外部变更）
// 与数值显示缓存。样式映射在元素被选中时从其持久化属性派生，
// 在取消选中或切换元素时丢弃并清空缓存。
//
// 同一元素同一时刻只有一个逻辑所有者在修改样式；会话内部的
// 锁只保证读写不撕裂，不提供跨来源的编辑合并。
type Session struct {
	*pubsub.Broker[StyleChange]

	mu      sync.RWMutex
	current *Element
	styles  *csync.VersionedMap[string, string]
	mutator *style.Mutator
}

// NewSession 创建一个尚未选中任何元素的会话。
func NewSession() *Session {
	return &Session{
		Broker:  pubsub.NewBroker[StyleChange](),
		styles:  csync.NewVersionedMap[string, string](),
		mutator: style.NewMutator(style.NewDisplayCache()),
	}
}

// Select 选中一个元素，样式映射从其持久化属性派生，
// 显示缓存整体重建。
func (s *Session) Select(el Element) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = &el
	s.replaceStyles(el.Styles)
	s.mutator.Cache().Reconcile(el.Styles, false)
}

// Deselect 取消选中，丢弃样式映射并清空显示缓存。
func (s *Session) Deselect() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	s.replaceStyles(nil)
	s.mutator.Cache().Clear()
}

// Selected 返回当前选中的元素。
func (s *Session) Selected() (Element, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return Element{}, false
	}
	return *s.current, true
}

// Styles 返回权威样式映射的值快照。
func (s *Session) Styles() style.Styles {
	return style.Styles(s.styles.Copy())
}

// Version 返回样式映射的当前版本号，渲染层据此检测变更。
func (s *Session) Version() uint64 {
	return s.styles.Version()
}

// Cache 返回数值显示缓存。
func (s *Session) Cache() *style.DisplayCache {
	return s.mutator.Cache()
}

// SetProperty 设置单个属性。空白值删除该键。
func (s *Session) SetProperty(key, value string) {
	cur := s.Styles()
	s.commit(cur, s.mutator.Set(cur, key, value))
}

// SetNumeric 以标量形式设置数值属性并同步显示缓存。
func (s *Session) SetNumeric(key string, sc style.Scalar) {
	cur := s.Styles()
	s.commit(cur, s.mutator.SetNumeric(cur, key, sc))
}

// SetGroup 在一个逻辑事务中将一组属性设为同一值。
func (s *Session) SetGroup(keys []string, value string) {
	cur := s.Styles()
	s.commit(cur, s.mutator.SetGroup(cur, keys, value))
}

// ApplyChanges 将一组样式变更浅合并进权威映射：
// 传入的键覆盖现有键，其余键保持不变。
func (s *Session) ApplyChanges(changes style.Styles) {
	cur := s.Styles()
	s.commit(cur, cur.Merge(changes))
}

// SyncFromPersisted 在样式从持久化存储重新同步后对齐会话。
//
// 元素未变时保留缓存中映射外的条目（保护进行中的编辑）；
// 元素变化时等价于重新选中。
func (s *Session) SyncFromPersisted(el Element) {
	s.mu.Lock()
	same := s.current != nil && s.current.ID == el.ID
	s.mu.Unlock()

	if !same {
		s.Select(el)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &el
	s.replaceStyles(el.Styles)
	s.mutator.Cache().Reconcile(el.Styles, true)
}

// Subscribe 订阅样式变更事件。
func (s *Session) Subscribe(ctx context.Context) <-chan pubsub.Event[StyleChange] {
	return s.Broker.Subscribe(ctx)
}

// commit 将新旧映射的差异写入权威存储并发布对应事件。
func (s *Session) commit(old, next style.Styles) {
	var id string
	if el, ok := s.Selected(); ok {
		id = el.ID
	}

	for key, value := range next {
		prev, had := old[key]
		if !had {
			s.styles.Set(key, value)
			s.Publish(pubsub.CreatedEvent, StyleChange{ElementID: id, Key: key, Value: value})
			continue
		}
		if prev != value {
			s.styles.Set(key, value)
			s.Publish(pubsub.UpdatedEvent, StyleChange{ElementID: id, Key: key, Value: value})
		}
	}
	for key := range old {
		if _, ok := next[key]; !ok {
			s.styles.Del(key)
			s.Publish(pubsub.DeletedEvent, StyleChange{ElementID: id, Key: key})
		}
	}
}

// replaceStyles 用新的样式集整体替换权威存储（逐键写入以
// 保持版本号递增语义）。
func (s *Session) replaceStyles(next style.Styles) {
	for key := range s.styles.Copy() {
		s.styles.Del(key)
	}
	for key, value := range next {
		if value == "" {
			continue
		}
		s.styles.Set(key, value)
	}
}
