// Package socket 实现非阻塞套接字原语
package socket

import (
	"sync"
	"time"

	tec "github.com/jbenet/go-temp-err-catcher"
	"golang.org/x/sys/unix"

	"github.com/wirepulse/go-wirepulse/pkg/types"
)

// Listener TCP 监听器
//
// 监听套接字保持阻塞模式；Accept 产生的连接套接字
// 由调用方（通常经 AcceptLoop）设为非阻塞后交给 reactor。
//
// Close 可与 AcceptLoop 并发调用（Serve 与关闭通常在不同
// goroutine 上），关闭状态由互斥锁保护。
type Listener struct {
	sock *Socket
	port int

	mu     sync.Mutex
	closed bool
}

// ListenTCP 在指定端口创建监听器
//
// port 为 0 时由内核分配端口，实际端口经 Port() 查询。
func ListenTCP(port int, backlog int) (*Listener, error) {
	if backlog <= 0 {
		backlog = 128
	}

	sock, err := NewTCP()
	if err != nil {
		return nil, err
	}

	if err := unix.SetsockoptInt(sock.Fd(), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
		_ = sock.Close()
		return nil, types.NewSystemError("setsockopt", errnoOf(err), "failed to set SO_REUSEADDR")
	}

	addr := &unix.SockaddrInet4{Port: port}
	if err := unix.Bind(sock.Fd(), addr); err != nil {
		_ = sock.Close()
		return nil, types.NewSystemError("bind", errnoOf(err), "bind failed")
	}

	if err := unix.Listen(sock.Fd(), backlog); err != nil {
		_ = sock.Close()
		return nil, types.NewSystemError("listen", errnoOf(err), "listen failed")
	}

	bound, err := unix.Getsockname(sock.Fd())
	if err != nil {
		_ = sock.Close()
		return nil, types.NewSystemError("getsockname", errnoOf(err), "getsockname failed")
	}
	actualPort := port
	if inet4, ok := bound.(*unix.SockaddrInet4); ok {
		actualPort = inet4.Port
	}

	return &Listener{sock: sock, port: actualPort}, nil
}

// Port 返回实际监听端口
func (l *Listener) Port() int {
	return l.port
}

// isClosed 返回监听器是否已关闭
func (l *Listener) isClosed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closed
}

// Accept 接受一个连接
//
// 返回已接管描述符并设为非阻塞的套接字。
func (l *Listener) Accept() (*Socket, error) {
	if l.isClosed() {
		return nil, ErrListenerClosed
	}

	fd, _, err := unix.Accept(l.sock.Fd())
	if err != nil {
		return nil, types.NewSystemError("accept", errnoOf(err), "accept failed")
	}

	conn, err := Adopt(fd)
	if err != nil {
		_ = unix.Close(fd)
		return nil, err
	}
	if err := conn.SetNonblocking(); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return conn, nil
}

// AcceptLoop 持续接受连接并交给 handle
//
// 临时错误（如 EMFILE、ECONNABORTED）经退避后继续，
// 监听器关闭时返回 nil，硬错误时返回该错误。
func (l *Listener) AcceptLoop(handle func(*Socket)) error {
	var catcher tec.TempErrCatcher
	catcher.Wait = func(d time.Duration) {
		logger.Warn("accept 临时错误，退避", "delay", d)
		time.Sleep(d)
	}

	for {
		conn, err := l.Accept()
		if err != nil {
			if l.isClosed() {
				return nil
			}
			if catcher.IsTemporary(err) {
				continue
			}
			return err
		}
		handle(conn)
	}
}

// Close 关闭监听器
//
// 先 shutdown 唤醒阻塞在 accept 上的 goroutine，再关闭描述符。
func (l *Listener) Close() error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return ErrListenerClosed
	}
	l.closed = true
	l.mu.Unlock()

	_ = unix.Shutdown(l.sock.Fd(), unix.SHUT_RDWR)
	return l.sock.Close()
}
