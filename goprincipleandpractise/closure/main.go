// 闭包与类型擦除演示的入口。
//
// 运行方式：
//
//	go run ./goprincipleandpractise/closure/
//	go run ./goprincipleandpractise/closure/ --format json
//	go run ./goprincipleandpractise/closure/ -f closure.yaml --gops
//
// 每个场景在 stderr 输出一行日志，报告写到 stdout。任何断言失败退出码为 1。
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/gops/agent"
	"github.com/spf13/cobra"

	"closure-notes/goprincipleandpractise/closure/demo"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// rootFlags 每个命令独享一份，不放在包级变量里
type rootFlags struct {
	config string
	input  int
	format string
	level  string
	gops   bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	cmd := &cobra.Command{
		Use:           "closure",
		Short:         "Demonstrate closure capture modes and a type-erased callable",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd, flags)
		},
	}
	cmd.Flags().StringVarP(&flags.config, "config", "f", "", "config file (yaml|json|toml)")
	cmd.Flags().IntVar(&flags.input, "input", 1, "argument passed to every callable")
	cmd.Flags().StringVar(&flags.format, "format", "text", "report format: text|json")
	cmd.Flags().StringVar(&flags.level, "level", "info", "log level: debug|info|warn|error")
	cmd.Flags().BoolVar(&flags.gops, "gops", false, "start the gops diagnostics agent while running")
	return cmd
}

func runDemo(cmd *cobra.Command, flags rootFlags) error {
	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		return err
	}

	if flags.gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			return fmt.Errorf("start gops agent: %w", err)
		}
		defer agent.Close()
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg)
	report, runErr := demo.Run(cfg, demo.Scenarios(), logger)
	if err := report.Write(cmd.OutOrStdout(), cfg.Format); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return runErr
}

// resolveConfig 配置文件 / 默认值打底，显式设置的 flag 覆盖
func resolveConfig(cmd *cobra.Command, flags rootFlags) (demo.Config, error) {
	cfg, err := demo.LoadConfig(flags.config)
	if err != nil {
		return demo.Config{}, err
	}

	set := cmd.Flags()
	if set.Changed("input") {
		cfg.Input = flags.input
	}
	if set.Changed("format") {
		cfg.Format = flags.format
	}
	if set.Changed("level") {
		cfg.Level = flags.level
	}
	if cfg.Format != "text" && cfg.Format != "json" {
		return demo.Config{}, fmt.Errorf("invalid format %q: must be text or json", cfg.Format)
	}
	return cfg, nil
}

func newLogger(w io.Writer, cfg demo.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
}
