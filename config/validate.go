package config

import "errors"

// ValidateAll 验证整个配置的有效性
//
// 这是 Config.Validate() 的别名，提供更明确的语义。
// 它会递归验证所有子配置。
func ValidateAll(c *Config) error {
	if c == nil {
		return errors.New("config is nil")
	}
	return c.Validate()
}

// ValidateAndFix 验证配置并尝试自动修复常见问题
//
// 可修复的问题：
//   - 负的超时或容量 -> 恢复默认值
//   - 端口越界 -> 恢复为内核分配
func ValidateAndFix(c *Config) (*Config, error) {
	if c == nil {
		return NewConfig(), nil
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		c.Server.Port = 0
	}
	if c.Server.Backlog <= 0 {
		c.Server.Backlog = DefaultServerConfig().Backlog
	}
	if c.EventLoop.TaskQueueCapacity < 0 {
		c.EventLoop.TaskQueueCapacity = DefaultEventLoopConfig().TaskQueueCapacity
	}
	if c.Upgrade.MaxBufferedEvents < 0 {
		c.Upgrade.MaxBufferedEvents = 0
	}
	if c.Upgrade.NegotiateTimeout < 0 {
		c.Upgrade.NegotiateTimeout = 0
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
