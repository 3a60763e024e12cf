// Package main 演示闭包相关的几个常见陷阱
//
// 运行方式：go run ./goprincipleandpractise/closure/trap/
package main

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"closure-notes/goprincipleandpractise/closure/callable"
)

func main() {
	trapLoopVariable()
	trapPointerReceiverBind()
	trapCaptureByReference()
	trapNilFunc()
}

// ============================================================
// 陷阱1：循环变量捕获
// Go 1.21 及之前，for 循环变量在所有迭代中共享同一个地址，
// 闭包看到的都是最后一次迭代的值。Go 1.22+ 每次迭代创建新变量。
// 本仓库使用 Go 1.24，但为教学目的保留此演示。
// ============================================================

// LoopAdders 在循环里为每个 i 构造一个 "加 i" 的闭包
func LoopAdders(n int) []func(int) int {
	adders := make([]func(int) int, 0, n)
	for i := 0; i < n; i++ {
		adders = append(adders, func(x int) int { return x + i })
	}
	return adders
}

// RunConcurrently 并发调用每个闭包，结果写入各自的槽位
func RunConcurrently(adders []func(int) int, x int) ([]int, error) {
	results := make([]int, len(adders))
	var eg errgroup.Group
	for i, f := range adders {
		// i, f 在 Go 1.22+ 中每次迭代都是新变量，无需 i, f := i, f
		eg.Go(func() error {
			results[i] = f(x)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func trapLoopVariable() {
	fmt.Println("=== 陷阱1：循环变量捕获 ===")
	results, err := RunConcurrently(LoopAdders(3), 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	// Go 1.22+: [1 2 3]；Go 1.21-: [4 4 4]
	fmt.Println("结果:", results)
	fmt.Println()
}

// ============================================================
// 陷阱2：指针接收者的方法值
// 方法值 x.M 在求值时就拷贝了接收者。值接收者拷贝的是整个实例，
// 指针接收者拷贝的只是指针，之后对实例的修改会被看到。
// ============================================================

type Counter struct {
	Incr int
}

func (c Counter) AddValue(n int) int    { return n + c.Incr }
func (c *Counter) AddPointer(n int) int { return n + c.Incr }

// BindBoth 分别绑定值接收者和指针接收者，然后修改实例
func BindBoth() (byValue, byPointer int) {
	c := Counter{Incr: 2}
	v := callable.Bind(c, Counter.AddValue)
	p := callable.Bind(&c, (*Counter).AddPointer)
	c.Incr = 100
	return v.Call(1), p.Call(1)
}

func trapPointerReceiverBind() {
	fmt.Println("=== 陷阱2：指针接收者的方法值 ===")
	byValue, byPointer := BindBoth()
	// 值接收者输出 3，指针接收者输出 101
	fmt.Println("值接收者（绑定时拷贝）:", byValue)
	fmt.Println("指针接收者（看到后续修改）:", byPointer)
	fmt.Println()
}

// ============================================================
// 陷阱3：闭包直接引用外层变量就是按引用捕获
// 想要快照必须显式复制一份。
// ============================================================

// CaptureThenMutate 返回直接捕获和复制后捕获两种闭包在修改外层变量之后的结果
func CaptureThenMutate() (direct, copied int) {
	incr := 2
	byRef := func(n int) int { return n + incr }
	frozen := incr
	byVal := func(n int) int { return n + frozen }
	incr = 10
	return byRef(1), byVal(1)
}

func trapCaptureByReference() {
	fmt.Println("=== 陷阱3：闭包默认按引用捕获 ===")
	direct, copied := CaptureThenMutate()
	// 直接引用输出 11，先复制输出 3
	fmt.Println("直接引用:", direct)
	fmt.Println("先复制:", copied)
	fmt.Println()
}

// ============================================================
// 陷阱4：调用 nil 函数值会 panic
// 函数变量的零值是 nil，调用前应判空；Callable 把判空做成了显式的 IsEmpty。
// ============================================================

// CallNil 调用一个 nil 函数，返回捕获到的 panic
func CallNil() (recovered any) {
	var f func(int) int
	defer func() {
		recovered = recover()
	}()
	f(1)
	return nil
}

func trapNilFunc() {
	fmt.Println("=== 陷阱4：调用 nil 函数值 ===")
	fmt.Printf("直接调用 nil func: %v\n", CallNil())

	var f func(int) int
	c := callable.Of(callable.KindFunction, f)
	_, err := c.Invoke(1)
	fmt.Println("Callable.IsEmpty:", c.IsEmpty())
	fmt.Println("Callable.Invoke 返回 ErrInvalidInvocation:", errors.Is(err, callable.ErrInvalidInvocation))
	fmt.Println()
}
