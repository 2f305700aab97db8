package cmd

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	charmlog "charm.land/log/v2"
	"github.com/spf13/cobra"

	"github.com/purpose168/stylepad-cn/internal/config"
	"github.com/purpose168/stylepad-cn/internal/element"
	"github.com/purpose168/stylepad-cn/internal/interpret"
	"github.com/purpose168/stylepad-cn/internal/pubsub"
	"github.com/purpose168/stylepad-cn/internal/style"
)

func init() {
	interpretCmd.Flags().Bool("apply", false, "确认后把变更写回样式文件")
	interpretCmd.Flags().BoolP("yes", "y", false, "自动确认全部变更")
	interpretCmd.Flags().Bool("verbose", false, "在终端输出详细日志")
	interpretCmd.Flags().String("type", "div", "目标元素的组件类型")
}

var interpretCmd = &cobra.Command{
	Use:   "interpret [prompt...]",
	Short: "解释一条自然语言样式指令",
	Long: `解释一条自然语言样式指令并展示变更预览。
配置了远程理解服务时优先使用远程服务，否则使用本地模式提取器。`,
	Example: `
# 离线解释
stylepad interpret "make background blue and set padding to 20px"

# 对样式文件解释并在确认后写回
stylepad interpret --styles page.json --apply "set opacity to 50%"
`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt := strings.Join(args, " ")
		stylesPath, _ := cmd.Flags().GetString("styles")
		apply, _ := cmd.Flags().GetBool("apply")
		yes, _ := cmd.Flags().GetBool("yes")
		verbose, _ := cmd.Flags().GetBool("verbose")
		compType, _ := cmd.Flags().GetString("type")

		if verbose {
			slog.SetDefault(slog.New(charmlog.New(os.Stderr)))
		}

		// 加载目标样式
		var doc []byte
		styles := style.Styles{}
		if stylesPath != "" {
			var err error
			doc, err = os.ReadFile(stylesPath)
			if err != nil {
				return fmt.Errorf("读取样式文件: %w", err)
			}
			styles = style.ParseJSON(doc)
		}

		session := element.NewSession()
		session.Select(element.Element{ID: "cli", Type: compType, Styles: styles})

		cfg := config.Load()
		var client interpret.Interpreter
		if cfg.HasRemote() {
			client = &interpret.FallbackClient{
				Remote: interpret.NewHTTPClient(cfg.Endpoint, cfg.APIKey, cfg.Timeout),
			}
		}

		protocol := interpret.NewProtocol(session, interpret.Options{
			Client:            client,
			Notifier:          terminalNotifier{},
			MaxClarifications: cfg.MaxClarifications,
		})
		defer protocol.Shutdown()

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		// 必须在提交之前完成订阅：代理对没有订阅者的发布直接
		// 丢弃，晚订阅会错过决定请求并让提交永远阻塞
		events := protocol.Subscribe(ctx)
		go answerRequests(protocol, events, yes)

		if err := protocol.Submit(ctx, prompt); err != nil {
			return err
		}

		if apply && stylesPath != "" {
			merged, err := style.MergeJSON(doc, session.Styles())
			if err != nil {
				return err
			}
			if err := os.WriteFile(stylesPath, merged, 0o644); err != nil {
				return fmt.Errorf("写回样式文件: %w", err)
			}
			fmt.Println(dimStyle.Render("已写回 " + stylesPath))
		}
		return nil
	},
}

// answerRequests 消费协议的决定请求：展示预览或澄清问题，
// 从标准输入读取回答（--yes 时自动确认）。
// events 由调用方在提交之前订阅好传入。
func answerRequests(protocol *interpret.Protocol, events <-chan pubsub.Event[interpret.ConfirmRequest], yes bool) {
	reader := bufio.NewReader(os.Stdin)
	for event := range events {
		req := event.Payload
		switch req.Kind {
		case interpret.ConfirmClarify:
			fmt.Println(warnStyle.Render("您的意思是：") + req.Question)
		case interpret.ConfirmApply:
			fmt.Println(keyStyle.Render("将应用以下变更："))
			for line := range strings.SplitSeq(req.Diff, "\n") {
				fmt.Println("  " + addedStyle.Render(line))
			}
			if req.Explanation != "" {
				fmt.Println(dimStyle.Render(req.Explanation))
			}
		}

		if yes {
			protocol.Grant(req.ID)
			continue
		}
		fmt.Print("确认吗? [y/N] ")
		line, _ := reader.ReadString('\n')
		if answer := strings.ToLower(strings.TrimSpace(line)); answer == "y" || answer == "yes" {
			protocol.Grant(req.ID)
		} else {
			protocol.Deny(req.ID)
		}
	}
}

// terminalNotifier 把通知打印到标准错误。
type terminalNotifier struct{}

func (terminalNotifier) Info(msg string)  { fmt.Fprintln(os.Stderr, dimStyle.Render(msg)) }
func (terminalNotifier) Warn(msg string)  { fmt.Fprintln(os.Stderr, warnStyle.Render(msg)) }
func (terminalNotifier) Error(msg string) { fmt.Fprintln(os.Stderr, errStyle.Render(msg)) }
