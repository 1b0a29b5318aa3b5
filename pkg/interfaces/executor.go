// Package interfaces 定义 WirePulse 公共接口
//
// 本文件定义 Executor 与 Future 接口，即流水线运行时的
// 异步顺序执行原语。
package interfaces

// Executor 单线程任务执行器
//
// 每条连接由且仅由一个 Executor 驱动，所有流水线回调都在
// 其独占的 goroutine 上串行执行，因此连接内状态无需加锁。
type Executor interface {
	// Submit 提交任务
	//
	// 任务按提交顺序执行，提交永不阻塞；从执行器 goroutine 内
	// 提交的任务在当前任务结束后执行。关闭后提交的任务被丢弃。
	Submit(fn func())

	// InLoop 判断当前 goroutine 是否为执行器 goroutine
	InLoop() bool

	// Close 关闭执行器并排空待处理任务
	Close() error
}

// Future 异步操作的完成结果
//
// 回调在所属执行器的 goroutine 上执行，支持 "then" 式组合：
// 依次对同一结果注册的回调按注册顺序执行。
type Future interface {
	// OnComplete 注册完成回调
	//
	// 若操作已完成，回调仍会被调度到执行器上（不在注册现场内联），
	// 保证回调之间的相对顺序。
	OnComplete(fn func(err error))

	// Done 返回完成通知通道
	Done() <-chan struct{}

	// Err 返回操作结果（仅在 Done 关闭后有效）
	Err() error
}

// Promise 可完成的 Future（实现方持有）
type Promise interface {
	Future

	// Complete 完成操作，nil 表示成功
	//
	// 重复完成是编程错误，实现应 panic。
	Complete(err error)
}
