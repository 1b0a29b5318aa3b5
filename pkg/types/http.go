// Package types 定义 WirePulse 的公共数据结构
//
// 本文件定义 HTTP 消息模型：升级状态机消费的入站事件类型
// 以及 101 Switching Protocols 响应。
package types

// ============================================================================
//                              HTTPEvent - 入站事件
// ============================================================================

// HTTPEvent 入站 HTTP 事件标记接口
//
// 外部解码器将字节流解码为三种事件之一：
//   - *RequestHead 请求头（方法/目标/版本/头部列表）
//   - *BodyChunk   请求体分片
//   - *LastChunk   消息结束标记（可携带 trailer）
type HTTPEvent interface {
	httpEvent()
}

// RequestHead HTTP 请求头
type RequestHead struct {
	// Method 请求方法（如 "GET"）
	Method string

	// Target 请求目标（如 "/chat"）
	Target string

	// Version 协议版本（如 "HTTP/1.1"）
	Version string

	// Headers 头部列表
	Headers *Headers
}

func (*RequestHead) httpEvent() {}

// BodyChunk 请求体分片
type BodyChunk struct {
	// Data 分片数据
	Data []byte
}

func (*BodyChunk) httpEvent() {}

// LastChunk 消息结束标记
type LastChunk struct {
	// Trailers trailer 头部（可为 nil）
	Trailers *Headers
}

func (*LastChunk) httpEvent() {}

// ============================================================================
//                              101 响应
// ============================================================================

// SwitchingProtocolsResponse 101 Switching Protocols 响应
//
// 升级状态机在提交候选协议后构造并写出。Headers 至少包含
// Connection: upgrade 与 Upgrade: <token>，再由候选升级器扩展。
type SwitchingProtocolsResponse struct {
	// Headers 响应头部
	Headers *Headers
}

// StatusLine 返回响应状态行
func (r *SwitchingProtocolsResponse) StatusLine() string {
	return "HTTP/1.1 101 Switching Protocols"
}
