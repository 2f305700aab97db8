package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/purpose168/stylepad-cn/internal/registry"
	"github.com/purpose168/stylepad-cn/internal/style"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "搜索样式属性",
	Long: `按查询串搜索样式属性。不带查询时列出全部注册属性。
提供样式文件时，已设置的属性会被标记出来。`,
	Example: `
# 列出 border 家族的全部属性
stylepad search border

# 结合样式文件查看已设置的属性
stylepad search --styles page.json radius
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) > 0 {
			query = args[0]
		}

		styles := style.Styles{}
		if path, _ := cmd.Flags().GetString("styles"); path != "" {
			doc, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("读取样式文件: %w", err)
			}
			styles = style.ParseJSON(doc)
		}

		engine := registry.NewEngine()
		results := engine.FilteredProperties(query, styles)
		if len(results) == 0 {
			fmt.Println(warnStyle.Render("没有匹配的属性"))
			if suggestions := engine.Suggest(query); len(suggestions) > 0 {
				fmt.Println(dimStyle.Render("您是否想找: " + strings.Join(suggestions, ", ")))
			}
			return nil
		}

		for _, name := range results {
			line := name
			if styles.IsSet(name) {
				line = keyStyle.Render(name) + dimStyle.Render(" = "+styles.Get(name))
			}
			fmt.Println(line)
		}
		return nil
	},
}
