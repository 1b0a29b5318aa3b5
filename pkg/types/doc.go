// Package types 定义 WirePulse 的公共数据结构
//
// 这是整个系统的最底层包，不依赖任何其他 wirepulse 内部包。
// 所有类型都是纯值类型，用于在各模块间传递数据。
//
// # 文件组织
//
// HTTP 消息模型:
//   - headers.go  - Headers 头部列表（规范化逗号分隔多值查询）
//   - http.go     - RequestHead, BodyChunk, LastChunk, 101 响应
//
// 事件类型:
//   - events.go   - BaseEvent, UpgradeCompleteEvent, ReadCompleteEvent
//
// 错误类型:
//   - errors.go   - SystemError（系统调用错误）及公共错误
//
// # 类型分类
//
// 入站 HTTP 事件实现 HTTPEvent 标记接口，由外部解码器产生，
// 经流水线传递给升级状态机。Headers 提供 Upgrade/Connection
// 头部所需的规范化 token 查询。
package types
