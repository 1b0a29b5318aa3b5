// Package config 提供统一的配置管理
//
// 本包采用混合配置模式：
//   - 主 Config 结构体嵌入所有子配置
//   - 每个子配置在独立文件中定义
//   - 支持从 JSON 加载和保存配置
//   - 支持预设配置（server/minimal）
//
// 使用示例：
//
//	// 创建默认配置
//	cfg := config.NewConfig()
//	cfg.Server.Port = 8080
//	cfg.Upgrade.MaxBufferedEvents = 1024
//
//	// 使用预设配置
//	cfg := config.NewServerConfig()
//
//	// 从 JSON 加载
//	cfg, err := config.FromJSON(data)
package config

// Config 是 WirePulse 的完整配置结构
//
// 该结构体嵌入了所有组件的子配置，提供统一的配置接口。
// 配置按照功能模块组织：
//   - Server: 监听套接字
//   - EventLoop: 事件循环
//   - Upgrade: 协议升级状态机
//   - Metrics: 指标采集
type Config struct {
	// Server 监听套接字配置
	Server ServerConfig `json:"server"`

	// EventLoop 事件循环配置
	EventLoop EventLoopConfig `json:"event_loop"`

	// Upgrade 协议升级配置
	Upgrade UpgradeConfig `json:"upgrade"`

	// Metrics 指标采集配置
	Metrics MetricsConfig `json:"metrics"`
}

// NewConfig 创建带默认值的配置
func NewConfig() *Config {
	return &Config{
		Server:    DefaultServerConfig(),
		EventLoop: DefaultEventLoopConfig(),
		Upgrade:   DefaultUpgradeConfig(),
		Metrics:   DefaultMetricsConfig(),
	}
}

// Validate 递归验证所有子配置
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.EventLoop.Validate(); err != nil {
		return err
	}
	if err := c.Upgrade.Validate(); err != nil {
		return err
	}
	return nil
}
