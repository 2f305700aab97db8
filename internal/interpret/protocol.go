package interpret

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"sync"

	"github.com/google/uuid"

	"github.com/purpose168/stylepad-cn/internal/csync"
	"github.com/purpose168/stylepad-cn/internal/element"
	"github.com/purpose168/stylepad-cn/internal/pubsub"
)

// State 是确认协议状态机的状态。
type State int

// 状态常量。合法迁移：
// Idle → Submitted → (NeedsClarification ⇄ AwaitingConfirm) → Applying → Idle，
// 以及 Submitted → Failed → Idle。
const (
	StateIdle State = iota
	StateSubmitted
	StateNeedsClarification
	StateAwaitingConfirm
	StateApplying
	StateFailed
)

// String 返回状态的可读名称。
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitted:
		return "submitted"
	case StateNeedsClarification:
		return "needs_clarification"
	case StateAwaitingConfirm:
		return "awaiting_confirm"
	case StateApplying:
		return "applying"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ConfirmKind 区分两类需要用户决定的请求。
type ConfirmKind string

const (
	// ConfirmApply 请求用户确认一组待应用的变更。
	ConfirmApply ConfirmKind = "apply"
	// ConfirmClarify 请求用户对最佳猜测的重述回答是/否。
	ConfirmClarify ConfirmKind = "clarify"
)

// ConfirmRequest 是发布给确认界面的决定请求。
// 界面通过 [Protocol.Grant] / [Protocol.Deny] 以请求 ID 作答。
type ConfirmRequest struct {
	ID          string      // 请求唯一标识
	Kind        ConfirmKind // 请求类型
	Prompt      string      // 触发本轮的用户提示
	Question    string      // 澄清问题（最佳猜测重述）
	Diff        string      // 待应用变更的 kebab-case 预览
	Explanation string      // 远程服务给出的变更说明
}

// 协议错误
var (
	// ErrBusy 表示上一条提示仍在等待确认或澄清，新提示被拒绝。
	ErrBusy = errors.New("上一条指令尚未处理完成")
	// ErrNoSelection 表示没有选中任何元素。
	ErrNoSelection = errors.New("没有选中的元素")
	// ErrNotUnderstood 表示解释结果为空，没有可应用的变更。
	ErrNotUnderstood = errors.New("无法理解该指令")
	// ErrClarificationLimit 表示澄清回合超出上限。
	ErrClarificationLimit = errors.New("澄清次数超出上限")
)

// DefaultMaxClarifications 是澄清回合的默认上限。
// 原始行为没有显式上限，这里必须设界以避免无限递归。
const DefaultMaxClarifications = 3

// Options 配置确认协议。
type Options struct {
	Client            Interpreter         // 理解服务客户端；nil 时使用本地回退
	Tree              element.TreeMutator // 元素树协作者；nil 时跳过结构性操作
	Notifier          element.Notifier    // 通知接收器；nil 时丢弃
	MaxClarifications int                 // 澄清上限；<=0 时使用默认值
}

// Protocol 协调自然语言指令的异步确认-应用流程。
//
// 仅有的两个挂起点是远程解释调用与用户决定等待；用户在确认
// 对话框上的"否"是唯一的中止路径，且保证无副作用——样式映射
// 按值处理，被中止的确认不会留下部分变更。
type Protocol struct {
	*pubsub.Broker[ConfirmRequest]

	session  *element.Session
	client   Interpreter
	tree     element.TreeMutator
	notifier element.Notifier
	maxDepth int

	state   *csync.Value[State]
	pending *csync.Map[string, chan bool]
	mu      sync.Mutex
}

// NewProtocol 创建绑定到给定会话的确认协议。
func NewProtocol(session *element.Session, opts Options) *Protocol {
	client := opts.Client
	if client == nil {
		client = LocalInterpreter{}
	}
	var notifier element.Notifier = element.NopNotifier{}
	if opts.Notifier != nil {
		notifier = opts.Notifier
	}
	maxDepth := opts.MaxClarifications
	if maxDepth <= 0 {
		maxDepth = DefaultMaxClarifications
	}
	return &Protocol{
		Broker:   pubsub.NewBroker[ConfirmRequest](),
		session:  session,
		client:   client,
		tree:     opts.Tree,
		notifier: notifier,
		maxDepth: maxDepth,
		state:    csync.NewValue(StateIdle),
		pending:  csync.NewMap[string, chan bool](),
	}
}

// State 返回状态机的当前状态。
func (p *Protocol) State() State {
	return p.state.Get()
}

// Grant 以"是"回答一个待决请求。
func (p *Protocol) Grant(id string) {
	if ch, ok := p.pending.Take(id); ok {
		ch <- true
	}
}

// Deny 以"否"回答一个待决请求。
func (p *Protocol) Deny(id string) {
	if ch, ok := p.pending.Take(id); ok {
		ch <- false
	}
}

// Submit 处理一条自由文本指令，直到应用、中止或失败。
//
// 同一目标元素上，前一条提示仍在等待确认或澄清时拒绝新提示。
func (p *Protocol) Submit(ctx context.Context, prompt string) error {
	if !p.begin() {
		return ErrBusy
	}
	defer p.state.Set(StateIdle)
	return p.submit(ctx, prompt, 0)
}

// begin 尝试把状态机从空闲推进到已提交。
func (p *Protocol) begin() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state.Get() != StateIdle {
		return false
	}
	p.state.Set(StateSubmitted)
	return true
}

// submit 执行一轮解释。depth 统计澄清递归深度。
func (p *Protocol) submit(ctx context.Context, prompt string, depth int) error {
	if depth > p.maxDepth {
		p.state.Set(StateFailed)
		p.notifier.Warn("澄清次数过多，已放弃本条指令")
		return ErrClarificationLimit
	}

	el, ok := p.session.Selected()
	if !ok {
		p.state.Set(StateFailed)
		return ErrNoSelection
	}

	p.state.Set(StateSubmitted)
	resp, err := p.client.Interpret(ctx, Request{
		Prompt:        prompt,
		ComponentType: el.Type,
		CurrentStyles: p.session.Styles(),
		CurrentProps:  el.Props,
	})
	if err != nil {
		// 传输失败：面向用户的消息加通知，不做任何变更
		p.state.Set(StateFailed)
		p.notifier.Error("理解服务暂时不可用")
		return fmt.Errorf("远程解释失败: %w", err)
	}

	if resp.NeedsClarification {
		p.state.Set(StateNeedsClarification)
		yes, err := p.ask(ctx, ConfirmRequest{
			Kind:     ConfirmClarify,
			Prompt:   prompt,
			Question: resp.Guess,
		})
		if err != nil {
			p.state.Set(StateFailed)
			return err
		}
		if !yes {
			p.notifier.Info("已取消：未按猜测的含义执行")
			return nil
		}
		// "是"把猜测作为新提示重新提交，经过同一状态机
		return p.submit(ctx, resp.Guess, depth+1)
	}

	if resp.Changes.Empty() {
		p.state.Set(StateFailed)
		msg := resp.Message
		if msg == "" {
			msg = "无法理解该指令"
		}
		p.notifier.Warn(msg)
		return ErrNotUnderstood
	}

	p.state.Set(StateAwaitingConfirm)
	yes, err := p.ask(ctx, ConfirmRequest{
		Kind:        ConfirmApply,
		Prompt:      prompt,
		Diff:        RenderDiff(resp.Changes.Style),
		Explanation: resp.Explanation,
	})
	if err != nil {
		p.state.Set(StateFailed)
		return err
	}
	if !yes {
		// 拒绝必须无副作用：样式映射保持原样
		p.notifier.Info("已取消，未应用任何变更")
		return nil
	}

	return p.apply(el, resp.Changes)
}

// ask 发布决定请求并阻塞等待用户作答或上下文取消。
func (p *Protocol) ask(ctx context.Context, req ConfirmRequest) (bool, error) {
	req.ID = uuid.NewString()
	ch := make(chan bool, 1)
	p.pending.Set(req.ID, ch)
	defer p.pending.Del(req.ID)

	p.Publish(pubsub.CreatedEvent, req)

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case yes := <-ch:
		return yes, nil
	}
}

// apply 把确认后的变更落地：样式浅合并进会话，非样式属性与
// 结构性操作委托给元素树协作者。
func (p *Protocol) apply(el element.Element, ch *Changes) error {
	p.state.Set(StateApplying)

	if len(ch.Style) > 0 {
		p.session.ApplyChanges(ch.Style)
	}

	props := maps.Clone(ch.Props)
	if props == nil {
		props = map[string]any{}
	}
	if ch.Type != "" {
		props["type"] = ch.Type
	}
	if ch.CustomCSS != "" {
		props["customCSS"] = ch.CustomCSS
	}
	if len(props) > 0 && p.tree != nil {
		if err := p.tree.UpdateElement(el.ID, props); err != nil {
			return fmt.Errorf("更新元素属性: %w", err)
		}
	}

	if p.tree != nil && ch.WrapIn != "" {
		wrapperID, err := p.tree.AddElement("", element.Element{Type: ch.WrapIn})
		if err != nil {
			return fmt.Errorf("创建包裹元素: %w", err)
		}
		if err := p.tree.Reparent(el.ID, wrapperID); err != nil {
			return fmt.Errorf("移动元素到包裹节点: %w", err)
		}
	}
	if p.tree != nil && len(ch.CreateModal) > 0 {
		if _, err := p.tree.AddElement("", element.Element{Type: "modal", Props: ch.CreateModal}); err != nil {
			return fmt.Errorf("创建弹窗子树: %w", err)
		}
	}

	slog.Info("已应用解释变更", "element", el.ID, "style_keys", len(ch.Style))
	p.notifier.Info("已应用变更")
	return nil
}
