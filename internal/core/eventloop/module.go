// Package eventloop 实现单线程事件循环执行器
package eventloop

import (
	"go.uber.org/fx"

	pkgif "github.com/wirepulse/go-wirepulse/pkg/interfaces"
)

// Params Loop 依赖参数
type Params struct {
	fx.In

	Config Config `optional:"true"`
}

// Module 返回 Fx 模块
func Module() fx.Option {
	return fx.Module("eventloop",
		fx.Provide(
			ProvideLoop,
		),
	)
}

// ProvideLoop 提供事件循环（依赖注入）
func ProvideLoop(params Params, lc fx.Lifecycle) pkgif.Executor {
	cfg := params.Config
	if cfg.TaskQueueCapacity == 0 {
		cfg = NewConfig()
	}

	loop := NewLoop(cfg)

	lc.Append(fx.StopHook(func() error {
		return loop.Close()
	}))

	return loop
}
