package performance

import "closure-notes/goprincipleandpractise/closure/callable"

// Add2 直接调用的基线
func Add2(n int) int { return n + 2 }

// Adder 值接收者实现，用于方法值和 Bind 的对比
type Adder struct{ Incr int }

func (a Adder) Apply(n int) int { return n + a.Incr }

// NewCallables 构造一组持有不同目标的 Callable，用于对比包装层的开销
func NewCallables() map[string]callable.Callable {
	incr := 2
	return map[string]callable.Callable{
		"func":    callable.Of(callable.KindFunction, Add2),
		"closure": callable.Of(callable.KindValueCapture, func(n int) int { return n + incr }),
		"bound":   callable.New(callable.KindBoundMethod, callable.Bind(Adder{Incr: 2}, Adder.Apply)),
		"partial": callable.New(callable.KindPartial, callable.BindLast(func(a, b int) int { return a + b }, 2)),
	}
}
