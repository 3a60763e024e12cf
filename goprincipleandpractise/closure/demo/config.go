package demo

import (
	"fmt"
	"log/slog"

	"github.com/zeromicro/go-zero/core/conf"

	"closure-notes/goprincipleandpractise/closure/capture"
)

// Config 演示运行参数。优先级：命令行 flag > 配置文件 > 默认值。
type Config struct {
	Input  int    `json:"input,default=1"`
	Format string `json:"format,default=text,options=text|json"`
	Level  string `json:"level,default=info,options=debug|info|warn|error"`
}

// Want 所有场景的期望结果
func (c Config) Want() int {
	return c.Input + capture.Increment
}

// SlogLevel 把配置中的级别转成 slog.Level，未知值按 info 处理
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// LoadConfig 从文件加载配置（支持 yaml/json/toml），path 为空时只填默认值
func LoadConfig(path string) (Config, error) {
	var c Config
	if path == "" {
		if err := conf.FillDefault(&c); err != nil {
			return Config{}, fmt.Errorf("fill default config: %w", err)
		}
		return c, nil
	}
	if err := conf.Load(path, &c); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return c, nil
}
