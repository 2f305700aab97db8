package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/purpose168/stylepad-cn/internal/registry"
)

var propertiesCmd = &cobra.Command{
	Use:   "properties [name...]",
	Short: "查看属性的注册表元数据",
	Long:  `打印属性的分类、数值范围、枚举选项与简写展开关系。不带参数时列出全部注册属性。`,
	RunE: func(_ *cobra.Command, args []string) error {
		if len(args) == 0 {
			for _, name := range registry.All() {
				fmt.Printf("%s  %s\n", keyStyle.Render(name), dimStyle.Render(registry.DisplayName(name)))
			}
			return nil
		}

		for _, name := range args {
			d := registry.Lookup(name)
			fmt.Printf("%s (%s)\n", keyStyle.Render(d.Name), d.Kind)
			switch d.Kind {
			case registry.KindNumeric:
				fmt.Printf("  范围: %g..%g, 步长 %g\n", d.Range.Min, d.Range.Max, d.Range.Step)
			case registry.KindEnumerated:
				fmt.Printf("  选项: %s\n", strings.Join(d.Options, ", "))
			case registry.KindShorthand:
				fmt.Printf("  展开: %s\n", strings.Join(d.Related, ", "))
			}
		}
		return nil
	},
}
