// Package upgrade 实现 HTTP 协议升级状态机
package upgrade

import (
	"go.uber.org/fx"

	"github.com/wirepulse/go-wirepulse/internal/core/metrics"
	pkgif "github.com/wirepulse/go-wirepulse/pkg/interfaces"
)

// Factory 升级状态机工厂
//
// 注册表与指标记录器跨连接共享，每条连接创建独立的 Handler。
type Factory struct {
	registry *Registry
	recorder *metrics.Recorder
	cfg      Config
}

// NewFactory 创建工厂
func NewFactory(registry *Registry, cfg Config, recorder *metrics.Recorder) *Factory {
	return &Factory{registry: registry, recorder: recorder, cfg: cfg}
}

// New 为一条连接创建升级状态机
func (f *Factory) New(codec pkgif.SourceCodec) (*Handler, error) {
	return NewHandler(f.registry, codec, f.cfg, f.recorder)
}

// Registry 返回共享注册表
func (f *Factory) Registry() *Registry {
	return f.registry
}

// Params Upgrade 依赖参数
type Params struct {
	fx.In

	Upgraders []pkgif.ProtocolUpgrader `group:"upgraders"`
	Recorder  *metrics.Recorder        `optional:"true"`
	Config    Config                   `optional:"true"`
}

// Module 返回 Fx 模块
func Module() fx.Option {
	return fx.Module("upgrade",
		fx.Provide(
			ProvideRegistry,
			ProvideFactory,
		),
	)
}

// ProvideRegistry 提供注册表（依赖注入）
func ProvideRegistry(params Params) *Registry {
	return NewRegistry(params.Upgraders...)
}

// ProvideFactory 提供工厂（依赖注入）
func ProvideFactory(params Params, registry *Registry) *Factory {
	cfg := params.Config
	if cfg.Clock == nil {
		cfg.Clock = NewConfig().Clock
	}
	return NewFactory(registry, cfg, params.Recorder)
}
