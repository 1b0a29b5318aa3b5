package wirepulse

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/fx"
	"go.uber.org/multierr"

	"github.com/wirepulse/go-wirepulse/config"
	"github.com/wirepulse/go-wirepulse/internal/core/pipeline"
	"github.com/wirepulse/go-wirepulse/internal/core/socket"
	"github.com/wirepulse/go-wirepulse/internal/core/upgrade"
	pkgif "github.com/wirepulse/go-wirepulse/pkg/interfaces"
	"github.com/wirepulse/go-wirepulse/pkg/lib/log"
)

var logger = log.Logger("wirepulse")

// upgradeHandlerName 升级状态机在流水线中的名字
const upgradeHandlerName = "httpUpgrade"

// NamedHandler 带名字的流水线处理器
//
// 用于在创建流水线时按序安装源协议的 HTTP 处理器。
type NamedHandler struct {
	Name    string
	Handler pkgif.Handler
}

// Engine 引擎实例
//
// 持有共享的事件循环、流水线工厂与升级状态机工厂。
// 并发安全：所有方法可从任意 goroutine 调用。
type Engine struct {
	mu sync.Mutex

	opts *options
	app  *fx.App

	// 由 Fx 填充
	executor  pkgif.Executor
	pipelines *pipeline.Factory
	upgrades  *upgrade.Factory

	listener *socket.Listener

	started bool
	closed  bool
}

// New 创建引擎（不启动）
func New(opts ...Option) (*Engine, error) {
	o := newOptions()
	if err := o.apply(opts...); err != nil {
		return nil, err
	}

	e := &Engine{opts: o}

	app, err := buildFxApp(o, e)
	if err != nil {
		return nil, fmt.Errorf("build fx app: %w", err)
	}
	e.app = app

	return e, nil
}

// Start 创建并启动引擎（便捷入口）
func Start(ctx context.Context, opts ...Option) (*Engine, error) {
	e, err := New(opts...)
	if err != nil {
		return nil, err
	}
	if err := e.start(ctx); err != nil {
		return nil, err
	}
	return e, nil
}

// start 启动 Fx 应用并按需打开监听套接字
func (e *Engine) start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrEngineClosed
	}
	if e.started {
		return ErrAlreadyStarted
	}

	if err := e.app.Start(ctx); err != nil {
		return fmt.Errorf("start fx app: %w", err)
	}

	if e.opts.listen {
		l, err := socket.ListenTCP(e.opts.config.Server.Port, e.opts.config.Server.Backlog)
		if err != nil {
			stopErr := e.app.Stop(context.Background())
			return multierr.Append(err, stopErr)
		}
		e.listener = l
		logger.Info("监听套接字已打开", "port", l.Port())
	}

	e.started = true
	return nil
}

// Close 关闭引擎
//
// 依次关闭监听套接字与 Fx 应用，错误合并返回。幂等。
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}
	e.closed = true

	var err error
	if e.listener != nil {
		err = multierr.Append(err, e.listener.Close())
	}
	if e.started {
		err = multierr.Append(err, e.app.Stop(context.Background()))
	}
	return err
}

// NewPipeline 为一条连接创建流水线
//
// handlers 按给定顺序安装（通常是源协议的解码器 / 聚合器 /
// 编码器），升级状态机随后安装在链尾。之后经 AddLast 追加的
// 应用处理器位于升级状态机下游，升级完成事件与排空的缓冲
// 会按序到达它们。
func (e *Engine) NewPipeline(codec pkgif.SourceCodec, sink pkgif.Sink, handlers ...NamedHandler) (pkgif.Pipeline, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil, ErrEngineClosed
	}
	if !e.started {
		return nil, ErrNotStarted
	}

	pipe := e.pipelines.New(sink)

	for _, nh := range handlers {
		if err := pipe.AddLast(nh.Name, nh.Handler); err != nil {
			_ = pipe.Close()
			return nil, err
		}
	}

	h, err := e.upgrades.New(codec)
	if err != nil {
		_ = pipe.Close()
		return nil, err
	}
	if err := pipe.AddLast(upgradeHandlerName, h); err != nil {
		_ = pipe.Close()
		return nil, err
	}

	logger.Debug("流水线已创建",
		"pipeline", log.TruncateID(pipe.ID(), 8), "handlers", len(handlers)+1)
	return pipe, nil
}

// Serve 在监听套接字上运行接受循环（阻塞）
//
// 每条接受的连接以非阻塞模式交给 handle。Close 后返回 nil。
func (e *Engine) Serve(handle func(*socket.Socket)) error {
	e.mu.Lock()
	l := e.listener
	e.mu.Unlock()

	if l == nil {
		return ErrNotStarted
	}
	return l.AcceptLoop(handle)
}

// Port 返回监听端口（未监听时为 0）
func (e *Engine) Port() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.listener == nil {
		return 0
	}
	return e.listener.Port()
}

// Registry 返回升级候选注册表
func (e *Engine) Registry() *upgrade.Registry {
	return e.upgrades.Registry()
}

// Executor 返回共享的事件循环执行器
func (e *Engine) Executor() pkgif.Executor {
	return e.executor
}

// Config 返回生效的配置副本
func (e *Engine) Config() config.Config {
	return *e.opts.config
}
