package wirepulse

import (
	pkgif "github.com/wirepulse/go-wirepulse/pkg/interfaces"
	"github.com/wirepulse/go-wirepulse/pkg/types"
)

// ════════════════════════════════════════════════════════════════════════════
//                              版本信息
// ════════════════════════════════════════════════════════════════════════════

// Version 当前版本
const Version = "v0.1.0"

// BuildInfo 构建信息（通过 ldflags 注入）
var (
	// GitCommit Git 提交哈希
	GitCommit string

	// BuildDate 构建日期
	BuildDate string
)

// VersionInfo 返回完整版本信息字符串
func VersionInfo() string {
	info := "WirePulse " + Version
	if GitCommit != "" {
		info += " (" + GitCommit[:min(8, len(GitCommit))] + ")"
	}
	if BuildDate != "" {
		info += " built " + BuildDate
	}
	return info
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// ════════════════════════════════════════════════════════════════════════════
//                              类型别名
// ════════════════════════════════════════════════════════════════════════════

// 公共契约的类型别名，使用方无需直接导入 pkg/interfaces。

// Pipeline 连接流水线
type Pipeline = pkgif.Pipeline

// Handler 流水线处理器标记接口
type Handler = pkgif.Handler

// HandlerContext 处理器上下文
type HandlerContext = pkgif.HandlerContext

// InboundHandler 入站事件处理器
type InboundHandler = pkgif.InboundHandler

// ProtocolUpgrader 协议升级策略
type ProtocolUpgrader = pkgif.ProtocolUpgrader

// SourceCodec 源协议编解码器
type SourceCodec = pkgif.SourceCodec

// Executor 事件循环执行器
type Executor = pkgif.Executor

// Future 异步操作结果
type Future = pkgif.Future

// Sink 流水线出站终点
type Sink = pkgif.Sink

// Headers 有序 HTTP 头部多重映射
type Headers = types.Headers

// RequestHead HTTP 请求头事件
type RequestHead = types.RequestHead

// BodyChunk HTTP 消息体分片事件
type BodyChunk = types.BodyChunk

// LastChunk HTTP 消息体末分片事件
type LastChunk = types.LastChunk

// UpgradeCompleteEvent 协议升级完成事件
type UpgradeCompleteEvent = types.UpgradeCompleteEvent

// ReadCompleteEvent 缓冲排空完成通知
type ReadCompleteEvent = types.ReadCompleteEvent

// WouldBlock 非阻塞读写的"暂不可用"返回值
const WouldBlock = pkgif.WouldBlock

// NewHeaders 创建空头部集合
func NewHeaders() *Headers {
	return types.NewHeaders()
}
