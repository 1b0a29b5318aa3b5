// Package upgrade 实现 HTTP 协议升级状态机
package upgrade

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHTTPOrdering 首个事件不是请求头（次序违规）
	ErrInvalidHTTPOrdering = errors.New("upgrade: body or trailer received before request head")

	// ErrUpgradeAborted 提交后的升级链路失败
	ErrUpgradeAborted = errors.New("upgrade: committed upgrade aborted")

	// ErrBufferOverflow 协商缓冲超过配置上限
	ErrBufferOverflow = errors.New("upgrade: negotiation buffer overflow")

	// ErrNegotiateTimeout 提交后的链路超时
	ErrNegotiateTimeout = errors.New("upgrade: negotiation timed out")

	// ErrNilRegistry 注册表为空
	ErrNilRegistry = errors.New("upgrade: nil registry")

	// ErrNilCodec 源编解码器为空
	ErrNilCodec = errors.New("upgrade: nil source codec")
)

// BuildError 候选升级器响应头构建失败
//
// 非致命：状态机跳过该候选并继续尝试下一个，
// 连接协商状态不受影响。
type BuildError struct {
	// Protocol 失败候选的协议 token
	Protocol string

	// Err 底层错误
	Err error
}

// Error 实现 error 接口
func (e *BuildError) Error() string {
	return fmt.Sprintf("upgrade: build response headers for %q: %v", e.Protocol, e.Err)
}

// Unwrap 返回底层错误
func (e *BuildError) Unwrap() error {
	return e.Err
}
