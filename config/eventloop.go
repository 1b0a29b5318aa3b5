package config

import "errors"

// EventLoopConfig 事件循环配置
type EventLoopConfig struct {
	// TaskQueueCapacity 任务队列的初始容量
	//
	// 队列无界，该值只影响初始分配。
	TaskQueueCapacity int `json:"task_queue_capacity"`
}

// DefaultEventLoopConfig 返回默认事件循环配置
func DefaultEventLoopConfig() EventLoopConfig {
	return EventLoopConfig{
		TaskQueueCapacity: 64,
	}
}

// Validate 验证事件循环配置
func (c *EventLoopConfig) Validate() error {
	if c.TaskQueueCapacity < 0 {
		return errors.New("config: task queue capacity must not be negative")
	}
	return nil
}
