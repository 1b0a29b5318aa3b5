// Package upgrade 实现 HTTP 协议升级状态机
package upgrade

import (
	"fmt"
	"strings"

	"github.com/benbjohnson/clock"

	"github.com/wirepulse/go-wirepulse/internal/core/eventloop"
	"github.com/wirepulse/go-wirepulse/internal/core/metrics"
	pkgif "github.com/wirepulse/go-wirepulse/pkg/interfaces"
	"github.com/wirepulse/go-wirepulse/pkg/lib/log"
	"github.com/wirepulse/go-wirepulse/pkg/types"
)

var logger = log.Logger("core/upgrade")

// state 状态机状态
type state int8

const (
	// stateAwaitingFirstRequest 等待首个请求头（初始）
	stateAwaitingFirstRequest state = iota

	// statePassThroughDetaching 透传中，自移除已请求
	statePassThroughDetaching

	// stateNegotiating 已提交候选，升级链路推进中
	stateNegotiating

	// stateDetached 已脱离流水线（终态）
	stateDetached
)

// chainStep 提交后有序链的推进位置
type chainStep int8

const (
	stepRemoveHTTPHandlers chainStep = iota
	stepWriteResponse
	stepRemoveEncoder
	stepNotifyCodec
	stepInstall
	stepFinish
)

// 确保实现了接口
var _ pkgif.InboundHandler = (*Handler)(nil)

// Handler 协议升级状态机
//
// 每条连接一个实例，由所属事件循环独占驱动，绝不并发调用。
// 注册表只读共享；其余字段均为连接私有。
type Handler struct {
	registry *Registry
	codec    pkgif.SourceCodec
	recorder *metrics.Recorder
	cfg      Config

	state            state
	seenFirstRequest bool
	upgrading        bool
	aborted          bool
	detachRequested  bool

	buffered eventQueue

	// 提交后的链路状态
	step      chainStep
	committed pkgif.ProtocolUpgrader
	protocol  string
	request   *types.RequestHead
	response  *types.Headers
	timer     *clock.Timer
}

// NewHandler 创建升级状态机
//
// recorder 可为 nil（不记录指标）。
func NewHandler(registry *Registry, codec pkgif.SourceCodec, cfg Config, recorder *metrics.Recorder) (*Handler, error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}
	if codec == nil {
		return nil, ErrNilCodec
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	return &Handler{
		registry: registry,
		codec:    codec,
		recorder: recorder,
		cfg:      cfg,
		state:    stateAwaitingFirstRequest,
	}, nil
}

// OnInboundEvent 处理入站事件
func (h *Handler) OnInboundEvent(ctx pkgif.HandlerContext, ev any) {
	switch h.state {
	case stateAwaitingFirstRequest:
		h.onFirstEvent(ctx, ev)

	case stateNegotiating:
		h.onEventWhileNegotiating(ctx, ev)

	case statePassThroughDetaching, stateDetached:
		// 自移除尚未生效前到达的事件直接透传，不缓冲
		ctx.FireInboundEvent(ev)
	}
}

// onFirstEvent 处理首个入站事件
func (h *Handler) onFirstEvent(ctx pkgif.HandlerContext, ev any) {
	head, ok := ev.(*types.RequestHead)
	if !ok {
		// 请求头之前出现 body/trailer：次序违规。
		// 发出错误信号后按"无升级"路径用当前事件透传。
		logger.Warn("请求头之前收到消息体，协议次序违规",
			"pipeline", log.TruncateID(ctx.Pipeline().ID(), 8))
		h.recorder.ObserveResult(metrics.ResultOrderingViolation)
		ctx.FireError(ErrInvalidHTTPOrdering)
		h.passThrough(ctx, ev)
		return
	}

	h.seenFirstRequest = true

	tokens := head.Headers.CanonicalTokens("Upgrade")
	if len(tokens) == 0 {
		h.recorder.ObserveResult(metrics.ResultPassThrough)
		h.passThrough(ctx, ev)
		return
	}

	h.negotiate(ctx, head, tokens)
}

// onEventWhileNegotiating 缓冲提交后到达的事件
func (h *Handler) onEventWhileNegotiating(ctx pkgif.HandlerContext, ev any) {
	if h.aborted {
		// 升级已中止，连接处于未定义状态，等待所有者关闭
		logger.Debug("升级已中止，丢弃入站事件",
			"pipeline", log.TruncateID(ctx.Pipeline().ID(), 8))
		return
	}

	h.buffered.Push(ev)
	h.recorder.EventBuffered()

	if h.cfg.MaxBufferedEvents > 0 && h.buffered.Len() > h.cfg.MaxBufferedEvents {
		h.abort(ctx, ErrBufferOverflow)
	}
}

// negotiate 按客户端声明顺序尝试候选协议
//
// 整个筛选（注册表查询、头部子集检查、响应头构建）同步完成，
// 不发生挂起；首个构建成功的候选立即提交。
func (h *Handler) negotiate(ctx pkgif.HandlerContext, head *types.RequestHead, tokens []string) {
	headerNames := head.Headers.Names()
	connTokens := lowerSet(head.Headers.CanonicalTokens("Connection"))

	for _, token := range tokens {
		candidate, ok := h.registry.Lookup(strings.ToLower(token))
		if !ok {
			continue
		}

		// 必需头部必须同时出现在消息头部集合与 Connection token
		// 集合中，缺一即跳过该候选
		if !requiredHeadersSatisfied(candidate.RequiredHeaders(), headerNames, connTokens) {
			continue
		}

		headers := types.NewHeaders().
			Add("Connection", "upgrade").
			Add("Upgrade", token)
		if err := candidate.BuildResponseHeaders(head, headers); err != nil {
			// 非致命：上报后继续尝试下一候选
			h.recorder.ObserveResult(metrics.ResultBuildFailed)
			ctx.FireError(&BuildError{Protocol: token, Err: err})
			continue
		}

		h.commit(ctx, candidate, strings.ToLower(token), head, headers)
		return
	}

	// 没有候选胜出：等同于无升级透传
	h.recorder.ObserveResult(metrics.ResultPassThrough)
	h.passThrough(ctx, head)
}

// commit 提交候选协议并启动有序升级链
//
// 提交后不再尝试其他候选，即使后续步骤失败。
func (h *Handler) commit(ctx pkgif.HandlerContext, candidate pkgif.ProtocolUpgrader, token string, head *types.RequestHead, headers *types.Headers) {
	h.state = stateNegotiating
	h.upgrading = true
	h.committed = candidate
	h.protocol = token
	h.request = head
	h.response = headers
	h.step = stepRemoveHTTPHandlers

	h.recorder.NegotiationStarted()
	logger.Debug("升级候选已提交",
		"pipeline", log.TruncateID(ctx.Pipeline().ID(), 8), "protocol", token)

	if h.cfg.NegotiateTimeout > 0 {
		executor := ctx.Executor()
		h.timer = h.cfg.Clock.AfterFunc(h.cfg.NegotiateTimeout, func() {
			executor.Submit(func() { h.abort(ctx, ErrNegotiateTimeout) })
		})
	}

	h.resume(ctx, nil)
}

// resume 升级链的推进入口
//
// 每个异步步骤完成后回到这里，显式状态枚举替代嵌套回调，
// 避免隐式调用栈重入。
func (h *Handler) resume(ctx pkgif.HandlerContext, err error) {
	if h.aborted || h.state == stateDetached {
		return
	}
	if err != nil {
		h.abort(ctx, err)
		return
	}

	switch h.step {
	case stepRemoveHTTPHandlers:
		h.step = stepWriteResponse
		h.removeByNames(ctx, h.codec.HTTPHandlerNames()).OnComplete(func(err error) {
			h.resume(ctx, err)
		})

	case stepWriteResponse:
		h.step = stepRemoveEncoder
		resp := &types.SwitchingProtocolsResponse{Headers: h.response}
		ctx.WriteAndFlush(resp).OnComplete(func(err error) {
			h.resume(ctx, err)
		})

	case stepRemoveEncoder:
		h.step = stepNotifyCodec
		name := h.codec.EncoderName()
		if name == "" {
			h.resume(ctx, nil)
			return
		}
		ctx.Pipeline().RemoveByName(name).OnComplete(func(err error) {
			h.resume(ctx, err)
		})

	case stepNotifyCodec:
		h.step = stepInstall
		h.codec.UpgradeFrom(ctx)
		h.resume(ctx, nil)

	case stepInstall:
		h.step = stepFinish
		h.committed.InstallUpgrade(ctx, h.request).OnComplete(func(err error) {
			h.resume(ctx, err)
		})

	case stepFinish:
		h.finish(ctx)
	}
}

// finish 升级链收尾
//
// 发布完成事件、按 FIFO 排空缓冲、请求自移除。
func (h *Handler) finish(ctx pkgif.HandlerContext) {
	h.stopTimer()
	h.recorder.NegotiationEnded()
	h.recorder.ObserveResult(metrics.ResultCommitted)

	logger.Info("协议升级完成",
		"pipeline", log.TruncateID(ctx.Pipeline().ID(), 8),
		"protocol", h.protocol, "buffered", h.buffered.Len())

	ctx.FireUserEvent(types.NewUpgradeCompleteEvent(h.protocol, h.request))

	h.upgrading = false
	// 排空后到达的事件走透传分支，不再缓冲
	h.state = statePassThroughDetaching

	drained := h.buffered.Drain()
	for _, ev := range drained {
		ctx.FireInboundEvent(ev)
	}
	if len(drained) > 0 {
		ctx.FireUserEvent(types.NewReadCompleteEvent())
	}

	h.detach(ctx)
}

// passThrough 无升级路径：转发当前事件并自移除
func (h *Handler) passThrough(ctx pkgif.HandlerContext, ev any) {
	h.state = statePassThroughDetaching
	ctx.FireInboundEvent(ev)
	h.detach(ctx)
}

// detach 请求自移除（每条连接恰好一次）
func (h *Handler) detach(ctx pkgif.HandlerContext) {
	if h.detachRequested {
		return
	}
	h.detachRequested = true
	ctx.RemoveSelf().OnComplete(func(err error) {
		if err != nil {
			logger.Warn("自移除失败", "error", err)
			return
		}
		h.state = stateDetached
	})
}

// abort 中止已提交的升级
//
// 不回滚、不尝试下一候选：错误上报到连接错误通道，缓冲丢弃，
// 状态机停驻，连接处于未定义的提交后状态，由所有者决定关闭。
func (h *Handler) abort(ctx pkgif.HandlerContext, cause error) {
	if h.aborted || h.state == stateDetached {
		return
	}
	h.aborted = true
	h.stopTimer()

	dropped := h.buffered.Len()
	h.buffered.Clear()

	h.recorder.NegotiationEnded()
	h.recorder.ObserveResult(metrics.ResultFailed)

	logger.Warn("已提交的升级中止",
		"pipeline", log.TruncateID(ctx.Pipeline().ID(), 8),
		"protocol", h.protocol, "dropped", dropped, "cause", cause)

	ctx.FireError(fmt.Errorf("%w: %w", ErrUpgradeAborted, cause))
}

// stopTimer 停止协商超时定时器
func (h *Handler) stopTimer() {
	if h.timer != nil {
		h.timer.Stop()
		h.timer = nil
	}
}

// removeByNames 在执行器上按序移除一组处理器
//
// 名字不存在是 no-op；全部处理完后 Future 完成。
func (h *Handler) removeByNames(ctx pkgif.HandlerContext, names []string) pkgif.Future {
	promise := eventloop.NewPromise(ctx.Executor())

	var next func(i int)
	next = func(i int) {
		if i >= len(names) {
			promise.Complete(nil)
			return
		}
		ctx.Pipeline().RemoveByName(names[i]).OnComplete(func(err error) {
			if err != nil {
				promise.Complete(err)
				return
			}
			next(i + 1)
		})
	}
	next(0)

	return promise
}

// requiredHeadersSatisfied 判断必需头部是否同时满足两个集合
func requiredHeadersSatisfied(required []string, headerNames map[string]struct{}, connTokens map[string]struct{}) bool {
	for _, name := range required {
		lower := strings.ToLower(name)
		if _, ok := headerNames[lower]; !ok {
			return false
		}
		if _, ok := connTokens[lower]; !ok {
			return false
		}
	}
	return true
}

// lowerSet 构建小写字符串集合
func lowerSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[strings.ToLower(v)] = struct{}{}
	}
	return set
}
