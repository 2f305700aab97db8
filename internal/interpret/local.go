package interpret

import (
	"context"

	"github.com/purpose168/stylepad-cn/internal/intent"
)

// LocalInterpreter 用同进程的模式提取器实现 [Interpreter]，
// 在远程理解服务未配置或不可用时作为离线回退。
type LocalInterpreter struct{}

// Interpret 在本地解释提示。没有任何模式命中时返回空变更，
// 由协议报告"无法理解"。
func (LocalInterpreter) Interpret(_ context.Context, req Request) (*Response, error) {
	changes, ok := intent.Interpret(req.Prompt)
	if !ok {
		return &Response{Changes: &Changes{}}, nil
	}
	return &Response{Changes: &Changes{Style: changes}}, nil
}

// FallbackClient 先尝试远程客户端，调用失败时退回本地解释器。
type FallbackClient struct {
	Remote Interpreter
	local  LocalInterpreter
}

// Interpret 实现 [Interpreter]。
func (c *FallbackClient) Interpret(ctx context.Context, req Request) (*Response, error) {
	if c.Remote != nil {
		resp, err := c.Remote.Interpret(ctx, req)
		if err == nil {
			return resp, nil
		}
	}
	return c.local.Interpret(ctx, req)
}
