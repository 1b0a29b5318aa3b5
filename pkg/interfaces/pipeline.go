// Package interfaces 定义 WirePulse 公共接口
//
// 本文件定义流水线（handler 链）契约：入站事件、错误与用户事件
// 沿链传播，handler 通过 HandlerContext 与运行时交互。
package interfaces

// Handler 流水线处理器标记接口
//
// 处理器按能力实现 InboundHandler / ErrorHandler / UserEventHandler
// 等子接口；运行时按接口断言分发。
type Handler interface{}

// InboundHandler 入站事件处理器
type InboundHandler interface {
	// OnInboundEvent 处理入站事件
	//
	// 在所属执行器上串行调用，绝不并发。
	OnInboundEvent(ctx HandlerContext, ev any)
}

// ErrorHandler 错误事件处理器
type ErrorHandler interface {
	// OnErrorCaught 处理沿链传播的错误
	OnErrorCaught(ctx HandlerContext, err error)
}

// UserEventHandler 用户事件处理器
type UserEventHandler interface {
	// OnUserEvent 处理用户事件（如 UpgradeCompleteEvent）
	OnUserEvent(ctx HandlerContext, ev any)
}

// LifecycleHandler 生命周期感知处理器（可选实现）
type LifecycleHandler interface {
	// OnAdded 处理器加入流水线后回调
	OnAdded(ctx HandlerContext)

	// OnRemoved 处理器从流水线移除后回调
	OnRemoved(ctx HandlerContext)
}

// HandlerContext 处理器与流水线运行时的交互句柄
//
// Fire* 方法把事件传递给链上的下一个处理器；
// 变更类方法（RemoveSelf/WriteAndFlush）返回 Future，
// 在执行器上异步完成。
type HandlerContext interface {
	// Name 返回处理器注册名
	Name() string

	// Pipeline 返回所属流水线
	Pipeline() Pipeline

	// Executor 返回所属执行器
	Executor() Executor

	// FireInboundEvent 将入站事件传递给下游处理器
	FireInboundEvent(ev any)

	// FireError 将错误传递给下游处理器
	FireError(err error)

	// FireUserEvent 将用户事件传递给下游处理器
	FireUserEvent(ev any)

	// WriteAndFlush 写出并刷新一条出站消息
	WriteAndFlush(msg any) Future

	// RemoveSelf 请求将自身从流水线移除
	RemoveSelf() Future
}

// Pipeline 处理器链
//
// 入站事件从链头流向链尾。移除操作是异步的：在执行器上生效，
// 返回的 Future 标记完成。移除不存在的处理器成功返回（no-op）。
type Pipeline interface {
	// ID 返回连接/流水线标识
	ID() string

	// AddLast 将处理器追加到链尾
	AddLast(name string, h Handler) error

	// Remove 按身份移除处理器
	Remove(h Handler) Future

	// RemoveByName 按注册名移除处理器
	RemoveByName(name string) Future

	// Names 返回当前链上的处理器名（按链序）
	Names() []string

	// FireInboundEvent 从链头注入入站事件
	FireInboundEvent(ev any)

	// FireError 从链头注入错误
	FireError(err error)

	// FireUserEvent 从链头注入用户事件
	FireUserEvent(ev any)

	// Executor 返回驱动本流水线的执行器
	Executor() Executor

	// Close 关闭流水线，移除所有处理器
	Close() error
}

// Sink 流水线的出站终点
//
// WriteAndFlush 的消息最终交给 Sink（套接字适配器或测试缓冲）。
type Sink interface {
	// WriteAndFlush 写出并刷新一条消息
	WriteAndFlush(msg any) error
}
