// Package interfaces 定义 WirePulse 公共接口
//
// 本文件定义协议升级契约：单个候选协议的升级策略，以及
// 升级时负责让出流水线的源协议编解码器。
package interfaces

import (
	"github.com/wirepulse/go-wirepulse/pkg/types"
)

// ProtocolUpgrader 单个候选协议的升级策略
//
// 实现者必须无状态或并发安全：同一实例被所有连接共享，
// 回调可能从不同连接的事件循环并发到达。
type ProtocolUpgrader interface {
	// SupportedProtocol 返回该候选响应的协议 token
	//
	// 必须是小写形式；与请求 Upgrade 头的匹配不区分大小写。
	SupportedProtocol() string

	// RequiredHeaders 返回升级必需的头部名列表
	//
	// 候选入选要求每个必需头部同时：
	//   - 出现在请求头部集合中
	//   - 作为 token 列入请求的 Connection 头
	RequiredHeaders() []string

	// BuildResponseHeaders 校验握手并填充 101 响应头部
	//
	// headers 已预置 Connection 与 Upgrade 两项。返回错误表示
	// 该候选放弃本次升级（非致命，继续尝试下一候选）。
	BuildResponseHeaders(req *types.RequestHead, headers *types.Headers) error

	// InstallUpgrade 把新协议的处理器装入流水线
	//
	// 在 101 响应写出、源协议处理器移除之后调用。返回的
	// Future 失败表示升级中止（已提交，不回滚）。
	InstallUpgrade(ctx HandlerContext, req *types.RequestHead) Future
}

// SourceCodec 源协议（HTTP/1.1）编解码器
//
// 升级状态机通过该契约在升级时拆除源协议的编解码设施。
type SourceCodec interface {
	// HTTPHandlerNames 返回升级时需要移除的 HTTP 处理器名
	//
	// 按移除顺序返回；名字不存在是 no-op。
	HTTPHandlerNames() []string

	// EncoderName 返回 101 响应写出后需要移除的编码器名
	//
	// 返回空串表示没有独立的编码器。
	EncoderName() string

	// UpgradeFrom 通知编解码器让出流水线
	//
	// 在编码器移除之后、新协议装配之前调用。
	UpgradeFrom(ctx HandlerContext)
}
