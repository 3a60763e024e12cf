// Package callable 演示类型擦除：用一个 Callable 统一持有自由函数、闭包、
// 绑定方法和偏函数，调用方只依赖 Invoke 这一个签名。
//
// Callable 要么为空，要么恰好持有一个 Target。空状态是显式的，
// 调用前必须先用 IsEmpty 检查，而不是去调用一次看会不会出错。
package callable

import (
	"errors"
	"fmt"

	"github.com/samber/mo"
)

// ErrInvalidInvocation 在空 Callable 上调用时返回
var ErrInvalidInvocation = errors.New("callable: invoke on empty callable")

// Callable 类型擦除后的 int -> int 调用包装。零值即为空。
type Callable struct {
	kind   Kind
	target mo.Option[Target]
}

// Empty 返回一个空 Callable
func Empty() Callable {
	return Callable{target: mo.None[Target]()}
}

// New 用任意 Target 构造 Callable，不做任何校验，也不会失败。
// t 为 nil（包括值为 nil 的 Func 和空的 Callable）时得到空 Callable。
func New(kind Kind, t Target) Callable {
	if t == nil {
		return Empty()
	}
	switch v := t.(type) {
	case Func:
		if v == nil {
			return Empty()
		}
	case Callable:
		if v.IsEmpty() {
			return Empty()
		}
	}
	return Callable{kind: kind, target: mo.Some(t)}
}

// Of 是 New(kind, Func(f)) 的简写
func Of(kind Kind, f func(int) int) Callable {
	return New(kind, Func(f))
}

// IsEmpty 没有持有目标时返回 true，无副作用
func (c Callable) IsEmpty() bool {
	return c.target.IsAbsent()
}

// Kind 返回构造时声明的捕获方式
func (c Callable) Kind() Kind {
	return c.kind
}

// Invoke 用 n 调用持有的目标。空 Callable 返回 ErrInvalidInvocation，
// 不会尝试任何调用。
func (c Callable) Invoke(n int) (int, error) {
	t, ok := c.target.Get()
	if !ok {
		return 0, ErrInvalidInvocation
	}
	return t.Call(n), nil
}

// MustInvoke 与 Invoke 相同，但空 Callable 直接 panic。
// 适用于调用方已经确认过 !IsEmpty() 的场景。
func (c Callable) MustInvoke(n int) int {
	v, err := c.Invoke(n)
	if err != nil {
		panic(fmt.Errorf("invoke with %d: %w", n, err))
	}
	return v
}

// Call 让 Callable 本身也满足 Target，可以再被包装或组合。
func (c Callable) Call(n int) int {
	return c.MustInvoke(n)
}
