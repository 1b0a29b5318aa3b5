package wirepulse

import (
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/wirepulse/go-wirepulse/config"
	"github.com/wirepulse/go-wirepulse/internal/core/eventloop"
	"github.com/wirepulse/go-wirepulse/internal/core/metrics"
	"github.com/wirepulse/go-wirepulse/internal/core/pipeline"
	"github.com/wirepulse/go-wirepulse/internal/core/upgrade"
	pkgif "github.com/wirepulse/go-wirepulse/pkg/interfaces"
)

// buildFxApp 构建 Fx 应用
//
// 组装所有内部模块：
//  1. eventloop: 单线程执行器（所有流水线共享）
//  2. pipeline: 流水线工厂
//  3. upgrade: 升级状态机工厂 + 注册表
//  4. metrics: Prometheus 记录器（按配置启用）
//
// 升级候选经 "upgraders" 值组注入注册表。
func buildFxApp(o *options, e *Engine) (*fx.App, error) {
	if err := o.config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	modules := []fx.Option{
		// 配置注入
		fx.Supply(eventloopConfig(o.config)),
		fx.Supply(upgradeConfig(o.config)),
		fx.Supply(metricsConfig(o)),

		// 核心模块
		eventloop.Module(),
		pipeline.Module(),
		upgrade.Module(),
		metrics.Module,
	}

	// 升级候选注入值组
	for _, u := range o.upgraders {
		modules = append(modules, fx.Supply(
			fx.Annotate(u,
				fx.As(new(pkgif.ProtocolUpgrader)),
				fx.ResultTags(`group:"upgraders"`),
			),
		))
	}

	modules = append(modules,
		fx.Populate(&e.executor, &e.pipelines, &e.upgrades),

		// 禁用 Fx 日志输出（避免干扰用户日志）
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: zap.NewNop()}
		}),
		fx.NopLogger,
	)

	return fx.New(modules...), nil
}

// eventloopConfig 换算事件循环子配置
func eventloopConfig(cfg *config.Config) eventloop.Config {
	return eventloop.Config{
		TaskQueueCapacity: cfg.EventLoop.TaskQueueCapacity,
	}
}

// upgradeConfig 换算升级子配置
func upgradeConfig(cfg *config.Config) upgrade.Config {
	return upgrade.Config{
		MaxBufferedEvents: cfg.Upgrade.MaxBufferedEvents,
		NegotiateTimeout:  cfg.Upgrade.NegotiateTimeout.Duration(),
	}
}

// metricsConfig 换算指标子配置
func metricsConfig(o *options) metrics.Config {
	return metrics.Config{
		Enabled:    o.config.Metrics.Enabled,
		Registerer: o.registerer,
	}
}
