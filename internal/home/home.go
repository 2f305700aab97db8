// Package home 提供处理用户主目录路径的工具函数。
package home

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// homedir 在包加载时解析一次，之后只读。
var homedir, homedirErr = os.UserHomeDir()

func init() {
	if homedirErr != nil {
		slog.Error("获取用户主目录失败", "error", homedirErr)
	}
}

// Dir 返回用户主目录路径。
func Dir() string {
	return homedir
}

// Short 将路径中的主目录部分缩写为 `~`，用于显示。
func Short(p string) string {
	if homedir == "" || !strings.HasPrefix(p, homedir) {
		return p
	}
	return filepath.Join("~", strings.TrimPrefix(p, homedir))
}

// Long 将路径开头的 `~` 展开为实际的主目录。
// 日志文件等配置项允许用 `~/...` 书写。
func Long(p string) string {
	if homedir == "" || !strings.HasPrefix(p, "~") {
		return p
	}
	return strings.Replace(p, "~", homedir, 1)
}
