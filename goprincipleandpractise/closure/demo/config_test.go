package demo

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, Config{Input: 1, Format: "text", Level: "info"}, cfg)
	assert.Equal(t, 3, cfg.Want())
}

func TestLoadConfig_File(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    Config
	}{
		{
			name:    "yaml 全量",
			file:    "closure.yaml",
			content: "input: 5\nformat: json\nlevel: debug\n",
			want:    Config{Input: 5, Format: "json", Level: "debug"},
		},
		{
			name:    "yaml 部分字段走默认值",
			file:    "closure.yaml",
			content: "input: 7\n",
			want:    Config{Input: 7, Format: "text", Level: "info"},
		},
		{
			name:    "increment 不可配置，忽略",
			file:    "closure.yaml",
			content: "input: 1\nincrement: 5\n",
			want:    Config{Input: 1, Format: "text", Level: "info"},
		},
		{
			name:    "json",
			file:    "closure.json",
			content: `{"input": 2, "format": "json"}`,
			want:    Config{Input: 2, Format: "json", Level: "info"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfig(t, tt.file, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
			assert.Equal(t, tt.want.Input+2, cfg.Want())
		})
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("文件不存在", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("format 不在 options 中", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "closure.yaml", "format: xml\n"))
		assert.Error(t, err)
	})
}

func TestConfig_SlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, Config{Level: tt.level}.SlogLevel())
		})
	}
}
