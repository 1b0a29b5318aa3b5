// Package socket 实现非阻塞套接字原语
//
// # 概述
//
// socket 包装单个 OS 文件描述符，提供连接级引擎依赖的 I/O 契约：
// 非阻塞模式下的单次读写调用，以及与硬错误区分的 would-block 结果。
//
// # I/O 契约
//
//   - Read/Write 只执行一次底层系统调用，组件内不做缓冲或重试
//   - EAGAIN/EWOULDBLOCK 返回 (WouldBlock, nil)：这不是错误，
//     调用方（reactor）应重新登记兴趣并稍后重试
//   - 其他失败返回 *types.SystemError（携带 errno 与可读原因）
//   - Close 成功后 Open 返回 false，重复关闭是调用方缺陷
//
// # 使用示例
//
//	sock, err := socket.NewTCP()
//	if err != nil { ... }
//	if err := sock.SetNonblocking(); err != nil { ... }
//
//	n, err := sock.Read(buf)
//	switch {
//	case err != nil:        // 硬错误
//	case n == socket.WouldBlock: // 重新登记读兴趣
//	default:                // 读到 n 字节
//	}
//
// # 依赖
//
// 外部库：
//   - golang.org/x/sys/unix: 系统调用
//   - go-temp-err-catcher: Accept 循环的临时错误退避
package socket
