package interpret

import (
	"sort"
	"strings"
	"unicode"

	"github.com/purpose168/stylepad-cn/internal/style"
)

// KebabCase 将驼峰属性名转换为 CSS 书写形式，
// 例如 "backgroundColor" → "background-color"。
func KebabCase(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// RenderDiff 将待应用的样式变更渲染为人类可读的预览，
// 每行一条 `kebab-case: value;` 声明，按属性名排序。
// 变更在任何修改落地之前必须以这种形式展示给用户。
func RenderDiff(changes style.Styles) string {
	keys := make([]string, 0, len(changes))
	for key := range changes {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		b.WriteString(KebabCase(key))
		b.WriteString(": ")
		b.WriteString(changes[key])
		b.WriteString(";\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
