// Package interfaces 定义 WirePulse 公共接口
//
// 本文件定义非阻塞套接字契约。
package interfaces

// WouldBlock Read/Write 的保留返回值
//
// 表示本次非阻塞调用因 EAGAIN/EWOULDBLOCK 未传输任何数据。
// 这不是错误：调用方（reactor）应重新登记兴趣并稍后重试。
const WouldBlock = -1

// Socket 非阻塞套接字
//
// 恰好拥有一个 OS 描述符。所有操作都是单次直接系统调用，
// 组件内部不做缓冲或重试；would-block 的重试由调用方负责。
type Socket interface {
	// Fd 返回底层描述符
	Fd() int

	// Open 返回套接字是否仍然打开
	Open() bool

	// SetNonblocking 将描述符设为非阻塞模式
	SetNonblocking() error

	// Read 执行一次底层读调用
	//
	// 成功返回传输字节数（≥0）；would-block 返回 (WouldBlock, nil)；
	// 其他失败返回 *types.SystemError。
	Read(p []byte) (int, error)

	// Write 执行一次底层写调用，语义同 Read
	Write(p []byte) (int, error)

	// Close 释放描述符
	//
	// 成功后 Open 返回 false，不得再发起 I/O。
	// 对已关闭套接字再次调用返回错误（双重关闭是调用方缺陷）。
	Close() error
}
