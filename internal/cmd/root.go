// Package cmd 实现 stylepad 命令行入口。
package cmd

import (
	"context"
	"log/slog"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/purpose168/stylepad-cn/internal/config"
	"github.com/purpose168/stylepad-cn/internal/home"
	"github.com/purpose168/stylepad-cn/internal/log"
	"github.com/purpose168/stylepad-cn/internal/version"
)

func init() {
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "调试日志")
	rootCmd.PersistentFlags().String("styles", "", "样式 JSON 文件路径")

	rootCmd.AddCommand(
		interpretCmd,
		searchCmd,
		propertiesCmd,
	)
}

var rootCmd = &cobra.Command{
	Use:   "stylepad",
	Short: "可视化页面构建器的样式编辑核心",
	Long: `stylepad 是可视化页面构建器的样式编辑核心：检查与修改选中
元素的样式属性，支持属性搜索与自然语言指令。`,
	Example: `
# 离线解释一条自然语言指令
stylepad interpret "make background blue and set padding to 20px"

# 对样式文件解释并应用
stylepad interpret --styles page.json --apply --yes "add a border"

# 搜索属性
stylepad search radius

# 查看属性元数据
stylepad properties opacity borderRadius
`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		debug, _ := cmd.Flags().GetBool("debug")
		cfg := config.Load()
		log.Setup(cfg.LogFile, debug)
		slog.Debug("stylepad 启动",
			"version", version.Version,
			"log_file", home.Short(cfg.LogFile))
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

// 输出样式
var (
	keyStyle   = lipgloss.NewStyle().Bold(true)
	addedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#629657"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#d0a35f"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#a45c59"))
)

// Execute 运行命令行入口。
func Execute() {
	defer log.RecoverPanic("main", nil)
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version.Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
