// Package pipeline 实现连接流水线
package pipeline

import (
	"go.uber.org/fx"

	pkgif "github.com/wirepulse/go-wirepulse/pkg/interfaces"
)

// Factory 流水线工厂
//
// 每条连接各创建一条流水线，共享同一个执行器时
// 所有连接事件在同一循环上串行。
type Factory struct {
	executor pkgif.Executor
}

// NewFactory 创建流水线工厂
func NewFactory(executor pkgif.Executor) *Factory {
	return &Factory{executor: executor}
}

// New 创建绑定 sink 的流水线
func (f *Factory) New(sink pkgif.Sink) *Pipeline {
	return New(f.executor, sink)
}

// Params Factory 依赖参数
type Params struct {
	fx.In

	Executor pkgif.Executor
}

// Module 返回 Fx 模块
func Module() fx.Option {
	return fx.Module("pipeline",
		fx.Provide(
			ProvideFactory,
		),
	)
}

// ProvideFactory 提供流水线工厂（依赖注入）
func ProvideFactory(params Params) *Factory {
	return NewFactory(params.Executor)
}
