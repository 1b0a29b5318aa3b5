// Package types 定义 WirePulse 的公共数据结构
//
// 本文件定义事件相关类型。
package types

import (
	"time"
)

// ============================================================================
//                              Event - 事件接口
// ============================================================================

// Event 基础事件接口
type Event interface {
	// Type 返回事件类型
	Type() string

	// Timestamp 返回事件时间戳
	Timestamp() time.Time
}

// BaseEvent 基础事件实现
type BaseEvent struct {
	EventType string
	Time      time.Time
}

// Type 返回事件类型
func (e BaseEvent) Type() string {
	return e.EventType
}

// Timestamp 返回事件时间戳
func (e BaseEvent) Timestamp() time.Time {
	return e.Time
}

// NewBaseEvent 创建基础事件
func NewBaseEvent(eventType string) BaseEvent {
	return BaseEvent{
		EventType: eventType,
		Time:      time.Now(),
	}
}

// ============================================================================
//                              升级事件
// ============================================================================

// UpgradeCompleteEvent 协议升级完成事件
//
// 升级状态机在候选协议安装完成后，经用户事件通道向下游发布。
type UpgradeCompleteEvent struct {
	BaseEvent

	// Protocol 协商成功的协议 token
	Protocol string

	// Request 触发升级的原始请求头
	Request *RequestHead
}

// NewUpgradeCompleteEvent 创建协议升级完成事件
func NewUpgradeCompleteEvent(protocol string, req *RequestHead) *UpgradeCompleteEvent {
	return &UpgradeCompleteEvent{
		BaseEvent: NewBaseEvent("upgrade.complete"),
		Protocol:  protocol,
		Request:   req,
	}
}

// ReadCompleteEvent 读取完成通知
//
// 升级状态机在排空协商期间缓冲的入站事件后发布（仅当缓冲非空）。
type ReadCompleteEvent struct {
	BaseEvent
}

// NewReadCompleteEvent 创建读取完成通知
func NewReadCompleteEvent() *ReadCompleteEvent {
	return &ReadCompleteEvent{
		BaseEvent: NewBaseEvent("read.complete"),
	}
}
