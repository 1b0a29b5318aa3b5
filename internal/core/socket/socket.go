// Package socket 实现非阻塞套接字原语
package socket

import (
	"syscall"

	"golang.org/x/sys/unix"

	pkgif "github.com/wirepulse/go-wirepulse/pkg/interfaces"
	"github.com/wirepulse/go-wirepulse/pkg/lib/log"
	"github.com/wirepulse/go-wirepulse/pkg/types"
)

var logger = log.Logger("core/socket")

// WouldBlock Read/Write 的保留返回值（见 pkg/interfaces）
const WouldBlock = pkgif.WouldBlock

// 确保实现了接口
var _ pkgif.Socket = (*Socket)(nil)

// Socket 非阻塞套接字
//
// 恰好拥有一个 OS 描述符。描述符在对象生命周期内不变；
// open 在成功关闭时置 false，此后不得再发起 I/O。
type Socket struct {
	fd   int
	open bool
}

// NewTCP 创建 TCP 套接字
func NewTCP() (*Socket, error) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_STREAM, 0)
	if err != nil {
		return nil, types.NewSystemError("socket", errnoOf(err), "failed to create socket")
	}
	return &Socket{fd: fd, open: true}, nil
}

// Adopt 接管一个已存在的描述符
//
// 用于 accept 产生的连接或外部创建的 fd。
func Adopt(fd int) (*Socket, error) {
	if fd < 0 {
		return nil, ErrInvalidFd
	}
	return &Socket{fd: fd, open: true}, nil
}

// Fd 返回底层描述符
func (s *Socket) Fd() int {
	return s.fd
}

// Open 返回套接字是否仍然打开
func (s *Socket) Open() bool {
	return s.open
}

// SetNonblocking 将描述符设为非阻塞模式
func (s *Socket) SetNonblocking() error {
	if !s.open {
		return ErrClosed
	}
	if err := unix.SetNonblock(s.fd, true); err != nil {
		return types.NewSystemError("setnonblock", errnoOf(err), "failed to set non-blocking mode")
	}
	return nil
}

// Read 执行一次底层读调用
//
// 成功返回传输字节数（≥0，0 表示对端关闭写方向）；
// would-block 返回 (WouldBlock, nil)；其他失败返回 *types.SystemError。
func (s *Socket) Read(p []byte) (int, error) {
	if !s.open {
		return 0, ErrClosed
	}
	n, err := unix.Read(s.fd, p)
	if err != nil {
		if err == unix.EAGAIN || err == unix.EWOULDBLOCK {
			return WouldBlock, nil
		}
		return 0, types.NewSystemError("read", errnoOf(err), "read failed")
	}
	return n, nil
}

// Write 执行一次底层写调用，语义同 Read
func (s *Socket) Write(p []byte) (int, error) {
	if !s.open {
		return 0, ErrClosed
	}
	n, err := unix.Write(s.fd, p)
	if err != nil {
		if err == unix.EAGAIN || err == unix.EWOULDBLOCK {
			return WouldBlock, nil
		}
		return 0, types.NewSystemError("write", errnoOf(err), "write failed")
	}
	return n, nil
}

// Close 释放描述符
//
// 对已关闭套接字再次调用返回 ErrClosed（双重关闭是调用方缺陷，
// 调用方应通过 Open 跟踪关闭状态）。
func (s *Socket) Close() error {
	if !s.open {
		return ErrClosed
	}
	if err := unix.Close(s.fd); err != nil {
		return types.NewSystemError("close", errnoOf(err), "close failed")
	}
	s.open = false
	logger.Debug("套接字已关闭", "fd", s.fd)
	return nil
}

// errnoOf 提取系统调用错误码
func errnoOf(err error) syscall.Errno {
	if errno, ok := err.(syscall.Errno); ok {
		return errno
	}
	return 0
}
