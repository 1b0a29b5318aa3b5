// Package socket 实现非阻塞套接字原语
package socket

import (
	"errors"

	"github.com/wirepulse/go-wirepulse/pkg/types"
)

var (
	// ErrClosed 套接字已关闭
	//
	// 与公共哨兵 types.ErrSocketClosed 是同一错误值，
	// errors.Is 在门面层可直接匹配。
	ErrClosed = types.ErrSocketClosed

	// ErrInvalidFd 无效的文件描述符
	ErrInvalidFd = errors.New("socket: invalid file descriptor")

	// ErrListenerClosed 监听器已关闭
	ErrListenerClosed = errors.New("socket: listener closed")
)
