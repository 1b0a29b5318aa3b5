package config

import "errors"

// UpgradeConfig 协议升级状态机配置
type UpgradeConfig struct {
	// MaxBufferedEvents 协商期间缓冲的入站事件上限
	//
	// 0 表示无界。超限时升级被中止。
	MaxBufferedEvents int `json:"max_buffered_events"`

	// NegotiateTimeout 候选提交后升级链路的超时
	//
	// 0 表示不超时。
	NegotiateTimeout Duration `json:"negotiate_timeout"`
}

// DefaultUpgradeConfig 返回默认升级配置
func DefaultUpgradeConfig() UpgradeConfig {
	return UpgradeConfig{
		MaxBufferedEvents: 0,
		NegotiateTimeout:  0,
	}
}

// Validate 验证升级配置
func (c *UpgradeConfig) Validate() error {
	if c.MaxBufferedEvents < 0 {
		return errors.New("config: max buffered events must not be negative")
	}
	if c.NegotiateTimeout < 0 {
		return errors.New("config: negotiate timeout must not be negative")
	}
	return nil
}
