// Package pipeline 实现连接流水线
package pipeline

import (
	"sync"

	"github.com/google/uuid"

	"github.com/wirepulse/go-wirepulse/internal/core/eventloop"
	pkgif "github.com/wirepulse/go-wirepulse/pkg/interfaces"
	"github.com/wirepulse/go-wirepulse/pkg/lib/log"
)

var logger = log.Logger("core/pipeline")

// 确保实现了接口
var _ pkgif.Pipeline = (*Pipeline)(nil)

// Pipeline 处理器链
//
// 结构变更由互斥锁保护；事件分发在执行器上串行进行。
// head/tail 为哨兵节点，不承载处理器。
type Pipeline struct {
	id       string
	executor pkgif.Executor
	sink     pkgif.Sink

	mu     sync.Mutex
	head   *handlerContext
	tail   *handlerContext
	closed bool
}

// New 创建流水线
//
// sink 为出站终点，可为 nil（WriteAndFlush 将失败）。
func New(executor pkgif.Executor, sink pkgif.Sink) *Pipeline {
	p := &Pipeline{
		id:       uuid.NewString(),
		executor: executor,
		sink:     sink,
	}
	p.head = &handlerContext{pipeline: p, name: "<head>"}
	p.tail = &handlerContext{pipeline: p, name: "<tail>"}
	p.head.next = p.tail
	p.tail.prev = p.head
	return p
}

// ID 返回流水线标识
func (p *Pipeline) ID() string {
	return p.id
}

// Executor 返回驱动本流水线的执行器
func (p *Pipeline) Executor() pkgif.Executor {
	return p.executor
}

// AddLast 将处理器追加到链尾
func (p *Pipeline) AddLast(name string, h pkgif.Handler) error {
	if h == nil {
		return ErrNilHandler
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrClosed
	}
	for ctx := p.head.next; ctx != p.tail; ctx = ctx.next {
		if ctx.name == name {
			p.mu.Unlock()
			return ErrDuplicateName
		}
	}
	ctx := &handlerContext{pipeline: p, name: name, handler: h}
	prev := p.tail.prev
	prev.next = ctx
	ctx.prev = prev
	ctx.next = p.tail
	p.tail.prev = ctx
	p.mu.Unlock()

	if lh, ok := h.(pkgif.LifecycleHandler); ok {
		p.runOnLoop(func() { lh.OnAdded(ctx) })
	}
	return nil
}

// Remove 按身份移除处理器
//
// 异步生效；处理器不存在时同样成功完成（no-op）。
func (p *Pipeline) Remove(h pkgif.Handler) pkgif.Future {
	return p.removeMatching(func(ctx *handlerContext) bool {
		return ctx.handler == h
	})
}

// RemoveByName 按注册名移除处理器
func (p *Pipeline) RemoveByName(name string) pkgif.Future {
	return p.removeMatching(func(ctx *handlerContext) bool {
		return ctx.name == name
	})
}

// removeMatching 在执行器上移除第一个匹配的处理器
func (p *Pipeline) removeMatching(match func(*handlerContext) bool) pkgif.Future {
	promise := eventloop.NewPromise(p.executor)
	p.runOnLoop(func() {
		p.mu.Lock()
		var found *handlerContext
		for ctx := p.head.next; ctx != p.tail; ctx = ctx.next {
			if match(ctx) {
				found = ctx
				break
			}
		}
		if found != nil {
			found.prev.next = found.next
			found.next.prev = found.prev
			found.removed = true
		}
		p.mu.Unlock()

		if found != nil {
			logger.Debug("处理器已移除", "pipeline", log.TruncateID(p.id, 8), "handler", found.name)
			if lh, ok := found.handler.(pkgif.LifecycleHandler); ok {
				lh.OnRemoved(found)
			}
		}
		promise.Complete(nil)
	})
	return promise
}

// Names 返回当前链上的处理器名（按链序）
func (p *Pipeline) Names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var names []string
	for ctx := p.head.next; ctx != p.tail; ctx = ctx.next {
		names = append(names, ctx.name)
	}
	return names
}

// FireInboundEvent 从链头注入入站事件
func (p *Pipeline) FireInboundEvent(ev any) {
	p.runOnLoop(func() { p.head.FireInboundEvent(ev) })
}

// FireError 从链头注入错误
func (p *Pipeline) FireError(err error) {
	p.runOnLoop(func() { p.head.FireError(err) })
}

// FireUserEvent 从链头注入用户事件
func (p *Pipeline) FireUserEvent(ev any) {
	p.runOnLoop(func() { p.head.FireUserEvent(ev) })
}

// writeAndFlush 写出到 sink（在执行器上）
func (p *Pipeline) writeAndFlush(msg any) pkgif.Future {
	promise := eventloop.NewPromise(p.executor)
	p.runOnLoop(func() {
		if p.sink == nil {
			promise.Complete(ErrNoSink)
			return
		}
		promise.Complete(p.sink.WriteAndFlush(msg))
	})
	return promise
}

// Close 关闭流水线，按链序移除所有处理器
func (p *Pipeline) Close() error {
	done := make(chan struct{})
	p.runOnLoop(func() {
		defer close(done)

		p.mu.Lock()
		if p.closed {
			p.mu.Unlock()
			return
		}
		p.closed = true
		var ctxs []*handlerContext
		for ctx := p.head.next; ctx != p.tail; ctx = ctx.next {
			ctxs = append(ctxs, ctx)
		}
		p.head.next = p.tail
		p.tail.prev = p.head
		p.mu.Unlock()

		for _, ctx := range ctxs {
			ctx.removed = true
			if lh, ok := ctx.handler.(pkgif.LifecycleHandler); ok {
				lh.OnRemoved(ctx)
			}
		}
	})
	<-done
	return nil
}

// runOnLoop 在执行器上运行任务（循环内则内联）
func (p *Pipeline) runOnLoop(fn func()) {
	if p.executor.InLoop() {
		fn()
		return
	}
	p.executor.Submit(fn)
}
