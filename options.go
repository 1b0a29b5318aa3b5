package wirepulse

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/wirepulse/go-wirepulse/config"
	pkgif "github.com/wirepulse/go-wirepulse/pkg/interfaces"
)

// Option 用户配置选项函数
type Option func(*options) error

// options 内部选项结构
type options struct {
	// 配置（预设与显式配置合并后的结果）
	config *config.Config

	// 升级候选
	upgraders []pkgif.ProtocolUpgrader

	// 指标注册器（nil 时使用默认注册器）
	registerer prometheus.Registerer

	// 监听
	listen bool
}

// newOptions 创建默认选项
func newOptions() *options {
	return &options{
		config: config.NewConfig(),
	}
}

// apply 依次应用选项
func (o *options) apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return fmt.Errorf("apply option: %w", err)
		}
	}
	return nil
}

// WithConfig 使用完整配置
//
// 与其他选项组合时，后应用的选项覆盖先应用的。
func WithConfig(cfg *config.Config) Option {
	return func(o *options) error {
		if cfg == nil {
			return fmt.Errorf("config is nil")
		}
		fixed, err := config.ValidateAndFix(cfg)
		if err != nil {
			return err
		}
		o.config = fixed
		return nil
	}
}

// WithPreset 应用命名预设（"server" / "minimal"）
func WithPreset(name string) Option {
	return func(o *options) error {
		return config.ApplyPreset(o.config, name)
	}
}

// WithUpgraders 注册协议升级候选
//
// 可多次调用，追加注册。同一协议 token 后注册者胜出。
func WithUpgraders(upgraders ...pkgif.ProtocolUpgrader) Option {
	return func(o *options) error {
		o.upgraders = append(o.upgraders, upgraders...)
		return nil
	}
}

// WithMetrics 启用 Prometheus 指标
//
// registerer 为 nil 时使用 prometheus.DefaultRegisterer。
func WithMetrics(registerer prometheus.Registerer) Option {
	return func(o *options) error {
		o.config.Metrics.Enabled = true
		o.registerer = registerer
		return nil
	}
}

// WithListener 启动时打开监听套接字
//
// port 为 0 时由内核分配端口。
func WithListener(port int) Option {
	return func(o *options) error {
		if port < 0 || port > 65535 {
			return fmt.Errorf("listen port out of range: %d", port)
		}
		o.config.Server.Port = port
		o.listen = true
		return nil
	}
}

// WithMaxBufferedEvents 设置协商期间的缓冲上限
func WithMaxBufferedEvents(n int) Option {
	return func(o *options) error {
		if n < 0 {
			return fmt.Errorf("max buffered events must not be negative: %d", n)
		}
		o.config.Upgrade.MaxBufferedEvents = n
		return nil
	}
}
