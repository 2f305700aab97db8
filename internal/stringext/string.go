// Package stringext 提供字符串处理的扩展函数。
package stringext

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCaser 按英语规则做标题化，进程内复用。
var titleCaser = cases.Title(language.English, cases.Compact)

// Capitalize 将文本按标题规则首字母大写。
func Capitalize(text string) string {
	return titleCaser.String(text)
}

// NormalizeSpace 规范化文本中的空白：统一换行符、制表符转
// 四空格并去除首尾空白。用户粘贴的指令先经它清洗。
func NormalizeSpace(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\t", "    ")
	return strings.TrimSpace(content)
}
