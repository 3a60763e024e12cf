package demo

import (
	"fmt"
	"strconv"
	"strings"

	"closure-notes/goprincipleandpractise/closure/callable"
	"closure-notes/goprincipleandpractise/closure/capture"
)

// Scenario 一个演示块：构造一个 Callable，调用一次并校验结果
type Scenario struct {
	Name  string
	Kind  callable.Kind
	Setup func() Case
}

// Case Setup 的产物。After 在调用之后执行额外检查，可以为 nil。
type Case struct {
	Callable callable.Callable
	After    func() error
}

// Scenarios 按顺序返回全部演示块，每个块都实现 "加 capture.Increment"。
func Scenarios() []Scenario {
	return []Scenario{
		{
			Name: "Function",
			Kind: callable.KindFunction,
			Setup: func() Case {
				return Case{Callable: callable.Of(callable.KindFunction, capture.Add2)}
			},
		},
		{
			Name: "Empty capture",
			Kind: callable.KindNoCapture,
			Setup: func() Case {
				return Case{Callable: callable.Of(callable.KindNoCapture, capture.NoCapture())}
			},
		},
		{
			Name: "Const variable",
			Kind: callable.KindConstCapture,
			Setup: func() Case {
				return Case{Callable: callable.Of(callable.KindConstCapture, capture.Constant())}
			},
		},
		{
			Name: "Const variable that is not a constant expression",
			Kind: callable.KindValueCapture,
			Setup: func() Case {
				size := capture.Increment
				return Case{Callable: callable.Of(callable.KindValueCapture, capture.ByValue(size))}
			},
		},
		{
			Name: "Non-const variable",
			Kind: callable.KindSnapshotCapture,
			Setup: func() Case {
				incr := capture.Increment
				f := capture.Snapshot(&incr)
				incr += 100 // 快照之后的修改不可见
				return Case{
					Callable: callable.Of(callable.KindSnapshotCapture, f),
					After: func() error {
						if got := f(0); got != capture.Increment {
							return fmt.Errorf("snapshot observed later write: got %d, want %d: %w",
								got, capture.Increment, ErrAssertionMismatch)
						}
						return nil
					},
				}
			},
		},
		{
			Name: "Capture the number of times the function is executed",
			Kind: callable.KindReferenceCapture,
			Setup: func() Case {
				numrun := 0
				return Case{
					Callable: callable.Of(callable.KindReferenceCapture, capture.Counting(&numrun, 2)),
					After: func() error {
						if numrun != 1 {
							return fmt.Errorf("numrun = %d, want 1: %w", numrun, ErrAssertionMismatch)
						}
						return nil
					},
				}
			},
		},
		{
			Name: "Pass complex object and use inside closure",
			Kind: callable.KindObjectCapture,
			Setup: func() Case {
				input := strings.NewReader(strconv.Itoa(capture.Increment))
				call, lastErr := capture.FromReader(input)
				return Case{
					Callable: callable.Of(callable.KindObjectCapture, call),
					After:    lastErr,
				}
			},
		},
		{
			Name: "Pass static method of a type",
			Kind: callable.KindStaticMethod,
			Setup: func() Case {
				return Case{Callable: callable.Of(callable.KindStaticMethod, capture.ApplyApplication)}
			},
		},
		{
			Name: "Pass non-static method of a type",
			Kind: callable.KindBoundMethod,
			Setup: func() Case {
				app := capture.NewApplication()
				bound := callable.Bind(app, capture.Application.Apply)
				app.Incr = 0 // 绑定时已拷贝，不影响 bound
				return Case{Callable: callable.New(callable.KindBoundMethod, bound)}
			},
		},
		{
			Name: "Partial application of Add",
			Kind: callable.KindPartial,
			Setup: func() Case {
				return Case{Callable: callable.New(callable.KindPartial, callable.BindLast(capture.Add, 2))}
			},
		},
	}
}
