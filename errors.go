package wirepulse

import (
	"errors"

	"github.com/wirepulse/go-wirepulse/internal/core/upgrade"
	"github.com/wirepulse/go-wirepulse/pkg/types"
)

// 公共错误定义
var (
	// ────────────────────────────────────────────────────────────────────────
	// 引擎生命周期错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrNotStarted 引擎未启动
	ErrNotStarted = errors.New("engine not started")

	// ErrAlreadyStarted 引擎已启动
	ErrAlreadyStarted = errors.New("engine already started")

	// ErrEngineClosed 引擎已关闭
	ErrEngineClosed = errors.New("engine closed")

	// ────────────────────────────────────────────────────────────────────────
	// 升级相关错误（再导出）
	// ────────────────────────────────────────────────────────────────────────

	// ErrInvalidHTTPOrdering 请求头之前出现消息体
	ErrInvalidHTTPOrdering = upgrade.ErrInvalidHTTPOrdering

	// ErrUpgradeAborted 已提交的升级失败
	ErrUpgradeAborted = upgrade.ErrUpgradeAborted

	// ────────────────────────────────────────────────────────────────────────
	// 连接相关错误（再导出）
	// ────────────────────────────────────────────────────────────────────────

	// ErrSocketClosed 套接字已关闭
	ErrSocketClosed = types.ErrSocketClosed

	// ErrPipelineClosed 流水线已关闭
	ErrPipelineClosed = types.ErrPipelineClosed
)

// IsSystemError 判断错误是否为带 errno 的系统调用错误
func IsSystemError(err error) bool {
	return types.IsSystemError(err)
}
