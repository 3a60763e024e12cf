package callable

import "strconv"

// Kind 标记 Callable 持有的目标是哪一种捕获方式，只用于展示和日志。
type Kind int

const (
	KindFunction         Kind = iota // 自由函数
	KindStaticMethod                 // 包级函数，Go 没有静态方法
	KindNoCapture                    // 不捕获任何变量的闭包
	KindConstCapture                 // 读取常量的闭包
	KindValueCapture                 // 按值捕获不可变变量
	KindSnapshotCapture              // 按值捕获可变变量（快照）
	KindReferenceCapture             // 按引用捕获
	KindObjectCapture                // 捕获外部有状态对象
	KindBoundMethod                  // 实例 + 方法绑定
	KindPartial                      // 偏函数
)

var kindNames = [...]string{
	KindFunction:         "Function",
	KindStaticMethod:     "StaticMethod",
	KindNoCapture:        "NoCapture",
	KindConstCapture:     "ConstCapture",
	KindValueCapture:     "ValueCapture",
	KindSnapshotCapture:  "SnapshotCapture",
	KindReferenceCapture: "ReferenceCapture",
	KindObjectCapture:    "ObjectCapture",
	KindBoundMethod:      "BoundMethod",
	KindPartial:          "Partial",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}
