package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// FromJSON 从 JSON 数据创建配置
//
// 未出现在 JSON 中的字段保持默认值。
//
// 示例 JSON:
//
//	{
//	  "server": {"port": 8080, "backlog": 256},
//	  "upgrade": {"max_buffered_events": 1024, "negotiate_timeout": "5s"}
//	}
func FromJSON(data []byte) (*Config, error) {
	cfg := NewConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// ToJSON 将配置序列化为缩进 JSON
func (c *Config) ToJSON() ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}

// ApplyPreset 应用预设配置
//
// 支持的预设：
//   - "server": 服务器优化（指标开启、缓冲上限、协商超时）
//   - "minimal": 最小配置（全部默认，指标关闭）
func ApplyPreset(cfg *Config, presetName string) error {
	if cfg == nil {
		return errors.New("config is nil")
	}

	switch presetName {
	case "server":
		return applyServerPreset(cfg)
	case "minimal":
		return applyMinimalPreset(cfg)
	case "":
		// 空预设，不做任何操作
		return nil
	default:
		return fmt.Errorf("unknown preset: %s", presetName)
	}
}

// NewServerConfig 创建服务器预设配置
func NewServerConfig() *Config {
	cfg := NewConfig()
	_ = applyServerPreset(cfg)
	return cfg
}

// NewMinimalConfig 创建最小预设配置
func NewMinimalConfig() *Config {
	cfg := NewConfig()
	_ = applyMinimalPreset(cfg)
	return cfg
}

func applyServerPreset(cfg *Config) error {
	cfg.Server.Backlog = 512
	cfg.Upgrade.MaxBufferedEvents = 4096
	cfg.Upgrade.NegotiateTimeout = Duration(10 * time.Second)
	cfg.Metrics.Enabled = true
	return nil
}

func applyMinimalPreset(cfg *Config) error {
	cfg.Upgrade.MaxBufferedEvents = 0
	cfg.Upgrade.NegotiateTimeout = 0
	cfg.Metrics.Enabled = false
	return nil
}
