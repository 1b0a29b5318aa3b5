// Package types 定义 WirePulse 的公共数据结构
//
// 本文件定义公共错误类型。
package types

import (
	"errors"
	"fmt"
	"syscall"
)

// ============================================================================
//                              SystemError - 系统调用错误
// ============================================================================

// SystemError 系统调用错误
//
// 携带失败的操作名、OS 错误码和可读原因。
// Would-block（EAGAIN/EWOULDBLOCK）不是 SystemError，
// 它是非阻塞 I/O 的正常控制流结果。
type SystemError struct {
	// Op 失败的操作（如 "read", "setnonblock"）
	Op string

	// Errno OS 错误码
	Errno syscall.Errno

	// Reason 可读原因
	Reason string
}

// Error 实现 error 接口
func (e *SystemError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("socket %s: %s (errno %d: %v)", e.Op, e.Reason, int(e.Errno), e.Errno)
	}
	return fmt.Sprintf("socket %s: errno %d: %v", e.Op, int(e.Errno), e.Errno)
}

// Unwrap 返回底层 errno
func (e *SystemError) Unwrap() error {
	return e.Errno
}

// Temporary 判断错误是否为临时性（委托给 errno）
//
// 使 accept 循环的临时错误退避（EMFILE/ECONNABORTED 等）
// 能够识别 SystemError。
func (e *SystemError) Temporary() bool {
	return e.Errno.Temporary()
}

// NewSystemError 创建系统调用错误
func NewSystemError(op string, errno syscall.Errno, reason string) *SystemError {
	return &SystemError{Op: op, Errno: errno, Reason: reason}
}

// IsSystemError 判断错误是否为 SystemError
func IsSystemError(err error) bool {
	var se *SystemError
	return errors.As(err, &se)
}

// ============================================================================
//                              连接相关错误
// ============================================================================

var (
	// ErrSocketClosed 套接字已关闭
	ErrSocketClosed = errors.New("socket already closed")

	// ErrPipelineClosed 流水线已关闭
	ErrPipelineClosed = errors.New("pipeline closed")
)
