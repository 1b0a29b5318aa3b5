// Package pipeline 实现连接流水线
package pipeline

import (
	pkgif "github.com/wirepulse/go-wirepulse/pkg/interfaces"
	"github.com/wirepulse/go-wirepulse/pkg/lib/log"
)

// 确保实现了接口
var _ pkgif.HandlerContext = (*handlerContext)(nil)

// handlerContext 链上节点
//
// head/tail 哨兵的 handler 为 nil。removed 置位后节点已脱链，
// 但仍可作为 Fire* 的出发点（事件继续向后传递）。
type handlerContext struct {
	pipeline *Pipeline
	name     string
	handler  pkgif.Handler

	prev, next *handlerContext
	removed    bool
}

// Name 返回处理器注册名
func (c *handlerContext) Name() string {
	return c.name
}

// Pipeline 返回所属流水线
func (c *handlerContext) Pipeline() pkgif.Pipeline {
	return c.pipeline
}

// Executor 返回所属执行器
func (c *handlerContext) Executor() pkgif.Executor {
	return c.pipeline.executor
}

// FireInboundEvent 将入站事件传递给下游处理器
func (c *handlerContext) FireInboundEvent(ev any) {
	next := c.nextOf(func(h pkgif.Handler) bool {
		_, ok := h.(pkgif.InboundHandler)
		return ok
	})
	if next == nil {
		logger.Debug("入站事件到达链尾，丢弃",
			"pipeline", log.TruncateID(c.pipeline.id, 8), "event", ev)
		return
	}
	next.handler.(pkgif.InboundHandler).OnInboundEvent(next, ev)
}

// FireError 将错误传递给下游处理器
func (c *handlerContext) FireError(err error) {
	next := c.nextOf(func(h pkgif.Handler) bool {
		_, ok := h.(pkgif.ErrorHandler)
		return ok
	})
	if next == nil {
		logger.Warn("错误到达链尾，未被处理",
			"pipeline", log.TruncateID(c.pipeline.id, 8), "error", err)
		return
	}
	next.handler.(pkgif.ErrorHandler).OnErrorCaught(next, err)
}

// FireUserEvent 将用户事件传递给下游处理器
func (c *handlerContext) FireUserEvent(ev any) {
	next := c.nextOf(func(h pkgif.Handler) bool {
		_, ok := h.(pkgif.UserEventHandler)
		return ok
	})
	if next == nil {
		logger.Debug("用户事件到达链尾，丢弃",
			"pipeline", log.TruncateID(c.pipeline.id, 8), "event", ev)
		return
	}
	next.handler.(pkgif.UserEventHandler).OnUserEvent(next, ev)
}

// WriteAndFlush 写出并刷新一条出站消息
func (c *handlerContext) WriteAndFlush(msg any) pkgif.Future {
	return c.pipeline.writeAndFlush(msg)
}

// RemoveSelf 请求将自身从流水线移除
func (c *handlerContext) RemoveSelf() pkgif.Future {
	return c.pipeline.Remove(c.handler)
}

// nextOf 返回链上下一个满足能力断言的节点
func (c *handlerContext) nextOf(capable func(pkgif.Handler) bool) *handlerContext {
	p := c.pipeline
	p.mu.Lock()
	defer p.mu.Unlock()

	for ctx := c.next; ctx != nil && ctx != p.tail; ctx = ctx.next {
		if ctx.handler != nil && capable(ctx.handler) {
			return ctx
		}
	}
	return nil
}
