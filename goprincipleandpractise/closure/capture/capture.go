// Package capture 汇总 Go 闭包的各种捕获方式，每个构造函数返回一个 "加2" 的函数。
//
// Go 的闭包总是按引用捕获外层变量。想要"按值捕获"，要么把变量作为参数
// 传进构造函数（参数本身就是一份拷贝），要么在闭包外先 x := x 复制一份。
package capture

import (
	"fmt"
	"io"
)

// Increment 所有演示共用的增量
const Increment = 2

// ---------- 自由函数 ----------

func Add(n1, n2 int) int {
	return n1 + n2
}

func Add2(n int) int {
	return n + Increment
}

// ---------- 类型与方法 ----------

// Application 带一个字段的类型，用来演示方法绑定时实例是否被拷贝
type Application struct {
	Incr int
}

func NewApplication() Application {
	return Application{Incr: Increment}
}

// Apply 值接收者方法
func (a Application) Apply(n int) int {
	return n + a.Incr
}

// ApplyApplication Go 没有静态方法，包级函数就是它的等价物
func ApplyApplication(n int) int {
	return n + Increment
}

// ---------- 闭包 ----------

// NoCapture 不引用任何外层变量
func NoCapture() func(int) int {
	return func(n int) int {
		return n + 2
	}
}

// Constant 引用包级常量。常量在编译期内联，闭包不持有任何状态。
func Constant() func(int) int {
	return func(n int) int {
		return n + Increment
	}
}

// ByValue 捕获一个创建后不再改变的值，值在构造时确定
func ByValue(incr int) func(int) int {
	return func(n int) int {
		return n + incr
	}
}

// Snapshot 拿到调用方可变变量的地址，但只在构造时读一次 *incr。
// 与 Counting 相反：闭包里留下的是值而不是指针，之后通过 incr 的修改都看不到。
func Snapshot(incr *int) func(int) int {
	frozen := *incr
	return func(n int) int {
		return n + frozen
	}
}

// Counting 按引用捕获调用方的计数器，每调用一次 *numrun 加一。
// numrun 必须在闭包的整个使用期内有效。
func Counting(numrun *int, incr int) func(int) int {
	return func(n int) int {
		*numrun++
		return n + incr
	}
}

// FromReader 捕获一个外部的流，每次调用从中读出一个整数作为增量。
//
// 两个返回的闭包共享同一个 err 变量：call 在读取失败时记录错误并原样返回 n，
// lastErr 返回最近一次的读取错误。
func FromReader(r io.Reader) (call func(int) int, lastErr func() error) {
	var err error
	call = func(n int) int {
		var incr int
		if _, scanErr := fmt.Fscan(r, &incr); scanErr != nil {
			err = fmt.Errorf("read increment: %w", scanErr)
			return n
		}
		err = nil
		return n + incr
	}
	lastErr = func() error {
		return err
	}
	return call, lastErr
}
