// Package interpret 实现自然语言指令的确认-应用协议：提交提示、
// 远程解释、可选的澄清回合、用户确认，最后经样式会话落地变更。
//
// 远程理解服务是外部协作者；本包只负责客户端协议与本地回退。
package interpret

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	"github.com/purpose168/stylepad-cn/internal/style"
)

// Request 是发往远程理解服务的请求体。
type Request struct {
	Prompt        string         `json:"prompt"`
	ComponentType string         `json:"component_type"`
	CurrentStyles style.Styles   `json:"current_styles"`
	CurrentProps  map[string]any `json:"current_props"`
}

// Changes 是远程服务返回的结构化变更。
type Changes struct {
	Style       style.Styles   `json:"style,omitempty"`
	Props       map[string]any `json:"props,omitempty"`
	Type        string         `json:"type,omitempty"`
	CustomCSS   string         `json:"customCSS,omitempty"`
	WrapIn      string         `json:"wrap_in,omitempty"`
	CreateModal map[string]any `json:"create_modal,omitempty"`
}

// Empty 判断变更是否为空：changes 字段存在但不包含任何内容时，
// 协议必须报告"无法理解"而不是静默地什么都不应用。
func (c *Changes) Empty() bool {
	if c == nil {
		return true
	}
	return len(c.Style) == 0 && len(c.Props) == 0 && c.Type == "" &&
		c.CustomCSS == "" && c.WrapIn == "" && len(c.CreateModal) == 0
}

// Response 是远程理解服务的响应。
type Response struct {
	Changes            *Changes // 直接变更（可为 nil）
	NeedsClarification bool     // 需要澄清回合
	Guess              string   // 最佳猜测的重述
	Message            string   // 面向用户的消息
	Explanation        string   // 变更说明
	RawResponse        string   // 原始载荷（调试用）
}

// Interpreter 是理解服务的客户端接口。
type Interpreter interface {
	Interpret(ctx context.Context, req Request) (*Response, error)
}

// HTTPClient 通过 HTTP 调用远程理解服务。
type HTTPClient struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewHTTPClient 创建远程理解服务客户端。
func NewHTTPClient(endpoint, apiKey string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
	}
}

// Interpret 提交提示与当前样式上下文，返回解析后的响应。
func (c *HTTPClient) Interpret(ctx context.Context, req Request) (*Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("编码解释请求: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("构造解释请求: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("调用理解服务: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取理解服务响应: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("理解服务返回 %d", resp.StatusCode)
	}

	out, err := DecodeResponse(payload)
	if err != nil {
		return nil, err
	}
	slog.Debug("远程解释完成",
		"prompt", req.Prompt,
		"needs_clarification", out.NeedsClarification,
		"style_keys", len(styleOf(out)))
	return out, nil
}

// styleOf 返回响应中的样式变更（可能为 nil）。
func styleOf(r *Response) style.Styles {
	if r.Changes == nil {
		return nil
	}
	return r.Changes.Style
}

// DecodeResponse 宽容地解码理解服务的响应体。
//
// 后端字段经常缺失或多余；有些后端还把真正的 JSON 载荷包在
// raw_response 字符串里。这里用路径查询逐字段提取，缺失字段
// 保持零值，不因形状偏差而报错。
func DecodeResponse(payload []byte) (*Response, error) {
	if !gjson.ValidBytes(payload) {
		return nil, fmt.Errorf("理解服务响应不是合法的 JSON")
	}
	root := gjson.ParseBytes(payload)

	// 载荷被包在 raw_response 字符串里的情况
	if raw := root.Get("raw_response"); raw.Exists() && raw.Type == gjson.String && gjson.Valid(raw.String()) {
		inner := gjson.Parse(raw.String())
		if inner.Get("changes").Exists() || inner.Get("needs_clarification").Exists() {
			root = inner
		}
	}

	out := &Response{
		NeedsClarification: root.Get("needs_clarification").Bool(),
		Guess:              root.Get("guess").String(),
		Message:            root.Get("message").String(),
		Explanation:        root.Get("explanation").String(),
		RawResponse:        root.Get("raw_response").String(),
	}

	changes := root.Get("changes")
	if !changes.Exists() {
		return out, nil
	}

	ch := &Changes{
		Type:      changes.Get("type").String(),
		CustomCSS: changes.Get("customCSS").String(),
		WrapIn:    changes.Get("wrap_in").String(),
	}
	if sty := changes.Get("style"); sty.IsObject() {
		ch.Style = style.Styles{}
		sty.ForEach(func(key, value gjson.Result) bool {
			ch.Style[key.String()] = value.String()
			return true
		})
	}
	if props := changes.Get("props"); props.IsObject() {
		ch.Props = props.Value().(map[string]any)
	}
	if modal := changes.Get("create_modal"); modal.IsObject() {
		ch.CreateModal = modal.Value().(map[string]any)
	}
	out.Changes = ch
	return out, nil
}
