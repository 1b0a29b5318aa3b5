// Package eventloop 实现单线程事件循环执行器
package eventloop

// Config 事件循环配置
type Config struct {
	// TaskQueueCapacity 任务队列初始容量（默认 64）
	TaskQueueCapacity int
}

// NewConfig 创建默认配置
func NewConfig() Config {
	return Config{
		TaskQueueCapacity: 64,
	}
}
