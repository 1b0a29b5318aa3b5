// Package socket 实现非阻塞套接字原语
package socket

import (
	"golang.org/x/sys/unix"

	"github.com/wirepulse/go-wirepulse/pkg/types"
)

// Pair 创建一对已连接的非阻塞套接字（测试用）
func Pair() (*Socket, *Socket, error) {
	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	if err != nil {
		return nil, nil, types.NewSystemError("socketpair", errnoOf(err), "socketpair failed")
	}

	a, err := Adopt(fds[0])
	if err != nil {
		_ = unix.Close(fds[0])
		_ = unix.Close(fds[1])
		return nil, nil, err
	}
	b, err := Adopt(fds[1])
	if err != nil {
		_ = a.Close()
		_ = unix.Close(fds[1])
		return nil, nil, err
	}

	if err := a.SetNonblocking(); err != nil {
		_ = a.Close()
		_ = b.Close()
		return nil, nil, err
	}
	if err := b.SetNonblocking(); err != nil {
		_ = a.Close()
		_ = b.Close()
		return nil, nil, err
	}
	return a, b, nil
}

// connectLocal 连接到本机指定端口（测试用，阻塞模式）
func connectLocal(s *Socket, port int) error {
	addr := &unix.SockaddrInet4{Port: port, Addr: [4]byte{127, 0, 0, 1}}
	if err := unix.Connect(s.Fd(), addr); err != nil {
		return types.NewSystemError("connect", errnoOf(err), "connect failed")
	}
	return nil
}
