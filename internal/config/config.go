// Package config 加载编辑器核心的运行配置：远程理解服务的
// 端点与凭据、超时以及澄清回合上限。
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/purpose168/stylepad-cn/internal/home"
)

// 环境变量名
const (
	envEndpoint       = "STYLEPAD_INTERPRET_URL"
	envAPIKey         = "STYLEPAD_API_KEY"
	envTimeout        = "STYLEPAD_TIMEOUT_SECONDS"
	envClarifications = "STYLEPAD_MAX_CLARIFICATIONS"
	envLogFile        = "STYLEPAD_LOG_FILE"
)

// Config 是进程的运行配置。
type Config struct {
	Endpoint          string        // 远程理解服务端点；为空时只用本地回退
	APIKey            string        // Bearer 凭据
	Timeout           time.Duration // 远程调用超时
	MaxClarifications int           // 澄清回合上限
	LogFile           string        // 日志文件路径
}

// Load 从环境加载配置。工作目录下的 .env 文件（若存在）会先
// 被读入环境；所有字段都有可用的默认值。
func Load() Config {
	// .env 不存在不是错误
	_ = godotenv.Load()

	cfg := Config{
		Endpoint:          Resolve(strings.TrimSpace(os.Getenv(envEndpoint))),
		APIKey:            Resolve(strings.TrimSpace(os.Getenv(envAPIKey))),
		Timeout:           30 * time.Second,
		MaxClarifications: 3,
		LogFile:           "stylepad.log",
	}

	if v := os.Getenv(envTimeout); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.Timeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv(envClarifications); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxClarifications = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(envLogFile)); v != "" {
		cfg.LogFile = v
	}
	// 日志路径允许 ~/... 写法
	cfg.LogFile = home.Long(cfg.LogFile)
	return cfg
}

// HasRemote 判断是否配置了远程理解服务。
func (c Config) HasRemote() bool {
	return c.Endpoint != ""
}

// Resolve 展开值中的 $VAR / ${VAR} 环境变量引用。
// 凭据等配置项允许间接引用其他环境变量。
func Resolve(value string) string {
	if !strings.Contains(value, "$") {
		return value
	}
	return os.Expand(value, os.Getenv)
}
