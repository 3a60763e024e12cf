// Package demo 把各种捕获方式组织成一组有序的演示场景，逐个调用并断言结果。
//
// 任何失败都是致命的：断言不符或在空 Callable 上调用都会立即停止，
// 返回已经跑完的部分报告和错误。
package demo

import (
	"errors"
	"fmt"
	"log/slog"

	"closure-notes/goprincipleandpractise/closure/callable"
)

// ErrAssertionMismatch 演示结果与期望不符
var ErrAssertionMismatch = errors.New("demo: assertion mismatch")

// Run 顺序执行 scenarios，每个场景用 cfg.Input 调用一次，期望 cfg.Want()。
// logger 为 nil 时使用 slog.Default()。
func Run(cfg Config, scenarios []Scenario, logger *slog.Logger) (Report, error) {
	if logger == nil {
		logger = slog.Default()
	}
	report := Report{Input: cfg.Input, Want: cfg.Want()}

	for _, sc := range scenarios {
		// 没有 Setup 等同于空 Callable
		var c Case
		if sc.Setup != nil {
			c = sc.Setup()
		}

		// 先判空，绝不通过调用来探测
		if c.Callable.IsEmpty() {
			return report, fmt.Errorf("%s: %w", sc.Name, callable.ErrInvalidInvocation)
		}

		got, err := c.Callable.Invoke(cfg.Input)
		if err != nil {
			return report, fmt.Errorf("%s: %w", sc.Name, err)
		}
		res := Result{Name: sc.Name, Kind: sc.Kind.String(), Got: got}
		if got != report.Want {
			report.Results = append(report.Results, res)
			return report, fmt.Errorf("%s: got %d, want %d: %w", sc.Name, got, report.Want, ErrAssertionMismatch)
		}
		if c.After != nil {
			if err := c.After(); err != nil {
				report.Results = append(report.Results, res)
				return report, fmt.Errorf("%s: %w", sc.Name, err)
			}
		}

		res.OK = true
		report.Results = append(report.Results, res)
		report.Passed++
		logger.Info(sc.Name, "kind", sc.Kind, "input", cfg.Input, "got", got)
	}

	return report, nil
}
