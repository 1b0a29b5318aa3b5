// Package metrics 实现升级引擎指标收集
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// Config 指标配置
type Config struct {
	// Enabled 是否启用指标收集
	Enabled bool

	// Registerer Prometheus 注册器（nil 时使用默认注册器）
	Registerer prometheus.Registerer
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return Config{
		Enabled: true,
	}
}

// Params Metrics 依赖参数
type Params struct {
	fx.In

	Config Config `optional:"true"`
}

// Module 是 metrics 的 Fx 模块
var Module = fx.Module("metrics",
	fx.Provide(
		ProvideRecorder,
	),
)

// ProvideRecorder 提供记录器（依赖注入）
//
// 未启用时返回 nil Recorder（所有方法为 no-op）。
func ProvideRecorder(p Params) (*Recorder, error) {
	cfg := p.Config
	if !cfg.Enabled {
		return nil, nil
	}
	reg := cfg.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	return NewRecorder(reg)
}
