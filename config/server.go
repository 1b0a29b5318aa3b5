package config

import (
	"errors"
	"time"
)

// ServerConfig 监听套接字配置
type ServerConfig struct {
	// Port 监听端口，0 表示由内核分配
	Port int `json:"port"`

	// Backlog 等待接受的连接队列长度
	Backlog int `json:"backlog"`

	// AcceptRetryDelay 接受临时失败后的重试间隔
	AcceptRetryDelay Duration `json:"accept_retry_delay"`
}

// DefaultServerConfig 返回默认监听配置
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Port:             0,
		Backlog:          128,
		AcceptRetryDelay: Duration(5 * time.Millisecond),
	}
}

// Validate 验证监听配置
func (c *ServerConfig) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return errors.New("config: server port out of range")
	}
	if c.Backlog <= 0 {
		return errors.New("config: server backlog must be positive")
	}
	return nil
}
