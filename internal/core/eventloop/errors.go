// Package eventloop 实现单线程事件循环执行器
package eventloop

import "errors"

var (
	// ErrLoopClosed 事件循环已关闭
	//
	// 循环关闭时所有未完成的 Promise 以此错误失败。
	ErrLoopClosed = errors.New("eventloop: loop closed")

	// ErrCompletedTwice Promise 重复完成
	ErrCompletedTwice = errors.New("eventloop: promise completed twice")
)
