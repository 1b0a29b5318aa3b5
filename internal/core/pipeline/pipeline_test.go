package pipeline

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wirepulse/go-wirepulse/internal/core/eventloop"
	pkgif "github.com/wirepulse/go-wirepulse/pkg/interfaces"
)

// recordingHandler 记录收到的入站事件
type recordingHandler struct {
	events  []any
	errors  []error
	userEvs []any
	forward bool
	added   int
	removed int
}

func (h *recordingHandler) OnInboundEvent(ctx pkgif.HandlerContext, ev any) {
	h.events = append(h.events, ev)
	if h.forward {
		ctx.FireInboundEvent(ev)
	}
}

func (h *recordingHandler) OnErrorCaught(ctx pkgif.HandlerContext, err error) {
	h.errors = append(h.errors, err)
}

func (h *recordingHandler) OnUserEvent(ctx pkgif.HandlerContext, ev any) {
	h.userEvs = append(h.userEvs, ev)
}

func (h *recordingHandler) OnAdded(ctx pkgif.HandlerContext)   { h.added++ }
func (h *recordingHandler) OnRemoved(ctx pkgif.HandlerContext) { h.removed++ }

// newTestPipeline 创建测试流水线
func newTestPipeline(t *testing.T) (*Pipeline, *eventloop.Loop, *RecordingSink) {
	t.Helper()
	loop := eventloop.NewLoop(eventloop.NewConfig())
	t.Cleanup(func() { loop.Close() })
	sink := &RecordingSink{}
	return New(loop, sink), loop, sink
}

// sync 等待循环处理完已提交的任务
func syncLoop(loop *eventloop.Loop) {
	done := make(chan struct{})
	loop.Submit(func() { close(done) })
	<-done
}

// TestPipeline_AddLastAndFire 测试事件沿链传播
func TestPipeline_AddLastAndFire(t *testing.T) {
	p, loop, _ := newTestPipeline(t)

	a := &recordingHandler{forward: true}
	b := &recordingHandler{}
	require.NoError(t, p.AddLast("a", a))
	require.NoError(t, p.AddLast("b", b))

	p.FireInboundEvent("ev1")
	syncLoop(loop)

	assert.Equal(t, []any{"ev1"}, a.events)
	assert.Equal(t, []any{"ev1"}, b.events)
}

// TestPipeline_NoForwardStopsPropagation 测试不转发则下游不可见
func TestPipeline_NoForwardStopsPropagation(t *testing.T) {
	p, loop, _ := newTestPipeline(t)

	a := &recordingHandler{forward: false}
	b := &recordingHandler{}
	require.NoError(t, p.AddLast("a", a))
	require.NoError(t, p.AddLast("b", b))

	p.FireInboundEvent("ev1")
	syncLoop(loop)

	assert.Len(t, a.events, 1)
	assert.Empty(t, b.events)
}

// TestPipeline_DuplicateName 测试重名处理器被拒绝
func TestPipeline_DuplicateName(t *testing.T) {
	p, _, _ := newTestPipeline(t)

	require.NoError(t, p.AddLast("h", &recordingHandler{}))
	assert.ErrorIs(t, p.AddLast("h", &recordingHandler{}), ErrDuplicateName)
	assert.ErrorIs(t, p.AddLast("x", nil), ErrNilHandler)
}

// TestPipeline_Remove 测试按身份移除
func TestPipeline_Remove(t *testing.T) {
	p, loop, _ := newTestPipeline(t)

	a := &recordingHandler{forward: true}
	b := &recordingHandler{forward: true}
	c := &recordingHandler{}
	require.NoError(t, p.AddLast("a", a))
	require.NoError(t, p.AddLast("b", b))
	require.NoError(t, p.AddLast("c", c))

	f := p.Remove(b)
	<-f.Done()
	require.NoError(t, f.Err())
	syncLoop(loop)

	assert.Equal(t, 1, b.removed)
	assert.Equal(t, []string{"a", "c"}, p.Names())

	p.FireInboundEvent("ev")
	syncLoop(loop)
	assert.Len(t, a.events, 1)
	assert.Empty(t, b.events)
	assert.Len(t, c.events, 1)
}

// TestPipeline_RemoveAbsentIsNoop 测试移除不存在的处理器成功
func TestPipeline_RemoveAbsentIsNoop(t *testing.T) {
	p, _, _ := newTestPipeline(t)

	f := p.RemoveByName("ghost")
	<-f.Done()
	assert.NoError(t, f.Err())

	f = p.Remove(&recordingHandler{})
	<-f.Done()
	assert.NoError(t, f.Err())
}

// TestPipeline_WriteAndFlush 测试写出到 sink
func TestPipeline_WriteAndFlush(t *testing.T) {
	p, _, sink := newTestPipeline(t)

	f := p.writeAndFlush("payload")
	<-f.Done()
	require.NoError(t, f.Err())
	assert.Equal(t, []any{"payload"}, sink.Messages())
}

// TestPipeline_WriteAndFlushFailure 测试 sink 失败传播
func TestPipeline_WriteAndFlushFailure(t *testing.T) {
	p, _, sink := newTestPipeline(t)
	boom := errors.New("sink down")
	sink.FailWith = boom

	f := p.writeAndFlush("payload")
	<-f.Done()
	assert.Equal(t, boom, f.Err())
}

// TestPipeline_FireError 测试错误传递给 ErrorHandler
func TestPipeline_FireError(t *testing.T) {
	p, loop, _ := newTestPipeline(t)

	h := &recordingHandler{}
	require.NoError(t, p.AddLast("h", h))

	boom := errors.New("boom")
	p.FireError(boom)
	syncLoop(loop)

	require.Len(t, h.errors, 1)
	assert.Equal(t, boom, h.errors[0])
}

// TestPipeline_FireUserEvent 测试用户事件传递
func TestPipeline_FireUserEvent(t *testing.T) {
	p, loop, _ := newTestPipeline(t)

	h := &recordingHandler{}
	require.NoError(t, p.AddLast("h", h))

	p.FireUserEvent("user-ev")
	syncLoop(loop)

	assert.Equal(t, []any{"user-ev"}, h.userEvs)
}

// TestPipeline_Lifecycle 测试 OnAdded/OnRemoved 回调
func TestPipeline_Lifecycle(t *testing.T) {
	p, loop, _ := newTestPipeline(t)

	h := &recordingHandler{}
	require.NoError(t, p.AddLast("h", h))
	syncLoop(loop)
	assert.Equal(t, 1, h.added)

	f := p.RemoveByName("h")
	<-f.Done()
	assert.Equal(t, 1, h.removed)
}

// TestPipeline_Close 测试关闭移除所有处理器
func TestPipeline_Close(t *testing.T) {
	p, _, _ := newTestPipeline(t)

	a := &recordingHandler{}
	b := &recordingHandler{}
	require.NoError(t, p.AddLast("a", a))
	require.NoError(t, p.AddLast("b", b))

	require.NoError(t, p.Close())
	assert.Empty(t, p.Names())
	assert.Equal(t, 1, a.removed)
	assert.Equal(t, 1, b.removed)

	assert.ErrorIs(t, p.AddLast("c", &recordingHandler{}), ErrClosed)
}

// TestPipeline_RemoveSelf 测试处理器自移除一次
func TestPipeline_RemoveSelf(t *testing.T) {
	p, loop, _ := newTestPipeline(t)

	var removals []error
	h := &selfRemovingHandler{onRemoved: func(err error) { removals = append(removals, err) }}
	require.NoError(t, p.AddLast("h", h))

	p.FireInboundEvent("first")
	syncLoop(loop)
	// 等待移除 future 完成
	time.Sleep(10 * time.Millisecond)
	syncLoop(loop)

	assert.Empty(t, p.Names())
	require.Len(t, removals, 1)
	assert.NoError(t, removals[0])
}

// selfRemovingHandler 收到首个事件后自移除
type selfRemovingHandler struct {
	onRemoved func(error)
}

func (h *selfRemovingHandler) OnInboundEvent(ctx pkgif.HandlerContext, ev any) {
	ctx.RemoveSelf().OnComplete(h.onRemoved)
}
