package callable

//go:generate mockgen -source=target.go -destination=mock_target_test.go -package=callable

// Target 统一的调用签名：int -> int。
// 自由函数、闭包、绑定方法、偏函数都通过实现 Target 被 Callable 持有。
type Target interface {
	Call(n int) int
}

// Func 把普通函数值适配为 Target，类似 http.HandlerFunc。
type Func func(n int) int

func (f Func) Call(n int) int { return f(n) }

// ---------- 绑定方法 ----------

// Bound 把一个实例和它的方法绑定在一起。
//
// recv 在 Bind 时按值拷贝，之后修改原实例不影响已绑定的 Bound。
// 如果 T 是指针类型，拷贝的只是指针，调用时会看到原实例的修改，
// 此时保证实例存活是调用方的责任。
type Bound[T any] struct {
	recv   T
	method func(T, int) int
}

// Bind 绑定实例与方法。method 通常是方法表达式，如 Application.Apply。
func Bind[T any](recv T, method func(T, int) int) Bound[T] {
	return Bound[T]{recv: recv, method: method}
}

func (b Bound[T]) Call(n int) int { return b.method(b.recv, n) }

// ---------- 偏函数 ----------

// Partial 固定二元函数的一个参数，得到一元函数。
type Partial struct {
	fn    func(int, int) int
	fixed int
	first bool
}

// BindFirst 固定第一个参数：fn(v, n)
func BindFirst(fn func(int, int) int, v int) Partial {
	return Partial{fn: fn, fixed: v, first: true}
}

// BindLast 固定第二个参数：fn(n, v)
func BindLast(fn func(int, int) int, v int) Partial {
	return Partial{fn: fn, fixed: v}
}

func (p Partial) Call(n int) int {
	if p.first {
		return p.fn(p.fixed, n)
	}
	return p.fn(n, p.fixed)
}
