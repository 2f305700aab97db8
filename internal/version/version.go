package version

import "runtime/debug"

// 构建时通过 -ldflags 设置的参数

// Version 存储应用程序的版本号
// 默认值为 "devel"，会在构建时通过 -ldflags 覆盖
var Version = "devel"

// 初始化函数，用于从构建信息中获取版本号
// 当用户使用 `go install` 安装时没有 -ldflags 参数，
// 此时上面的版本号未设置；作为 workaround，我们使用
// `go install` 时会设置的嵌入式构建版本
func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	mainVersion := info.Main.Version
	if mainVersion != "" && mainVersion != "(devel)" {
		Version = mainVersion
	}
}
