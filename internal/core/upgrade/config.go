// Package upgrade 实现 HTTP 协议升级状态机
package upgrade

import (
	"time"

	"github.com/benbjohnson/clock"
)

// Config 升级状态机配置
type Config struct {
	// MaxBufferedEvents 协商期间缓冲的入站事件上限
	//
	// 0 表示无界（默认，与引擎的原始行为一致）。超限时升级
	// 被中止：缓冲丢弃，错误经 FireError 上报。
	MaxBufferedEvents int

	// NegotiateTimeout 提交后升级链路的超时
	//
	// 0 表示不超时（默认）。超时与缓冲超限采用同一中止策略。
	NegotiateTimeout time.Duration

	// Clock 时钟（默认真实时钟，测试可注入 mock）
	Clock clock.Clock
}

// NewConfig 创建默认配置
func NewConfig() Config {
	return Config{
		MaxBufferedEvents: 0,
		NegotiateTimeout:  0,
		Clock:             clock.New(),
	}
}
