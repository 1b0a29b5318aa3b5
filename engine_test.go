package wirepulse

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wirepulse/go-wirepulse/internal/core/eventloop"
	"github.com/wirepulse/go-wirepulse/internal/core/pipeline"
	"github.com/wirepulse/go-wirepulse/internal/core/socket"
	"github.com/wirepulse/go-wirepulse/pkg/types"
)

// echoUpgrader 测试用升级候选
type echoUpgrader struct {
	protocol string
	installs int
}

func (u *echoUpgrader) SupportedProtocol() string { return u.protocol }

func (u *echoUpgrader) RequiredHeaders() []string { return nil }

func (u *echoUpgrader) BuildResponseHeaders(req *RequestHead, headers *Headers) error {
	return nil
}

func (u *echoUpgrader) InstallUpgrade(ctx HandlerContext, req *RequestHead) Future {
	u.installs++
	return eventloop.NewSucceededFuture(ctx.Executor())
}

// passCodec 测试用源编解码器（流水线中没有要移除的处理器）
type passCodec struct{}

func (passCodec) HTTPHandlerNames() []string { return nil }

func (passCodec) EncoderName() string { return "" }

func (passCodec) UpgradeFrom(ctx HandlerContext) {}

// TestEngine_StartClose 测试引擎生命周期
func TestEngine_StartClose(t *testing.T) {
	ctx := context.Background()

	engine, err := Start(ctx)
	require.NoError(t, err)

	// 重复关闭幂等
	assert.NoError(t, engine.Close())
	assert.NoError(t, engine.Close())

	// 关闭后创建流水线失败
	_, err = engine.NewPipeline(passCodec{}, &pipeline.RecordingSink{})
	assert.ErrorIs(t, err, ErrEngineClosed)
}

// TestEngine_NewBeforeStart 测试未启动时创建流水线
func TestEngine_NewBeforeStart(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)

	_, err = engine.NewPipeline(passCodec{}, &pipeline.RecordingSink{})
	assert.ErrorIs(t, err, ErrNotStarted)
}

// TestEngine_UpgradeEndToEnd 测试经引擎门面的完整升级
func TestEngine_UpgradeEndToEnd(t *testing.T) {
	ctx := context.Background()
	upgrader := &echoUpgrader{protocol: "echo"}

	engine, err := Start(ctx, WithUpgraders(upgrader))
	require.NoError(t, err)
	defer engine.Close()

	sink := &pipeline.RecordingSink{}
	pipe, err := engine.NewPipeline(passCodec{}, sink)
	require.NoError(t, err)

	headers := NewHeaders().
		Add("Host", "example.com").
		Add("Connection", "upgrade").
		Add("Upgrade", "echo")
	pipe.FireInboundEvent(&RequestHead{
		Method:  "GET",
		Target:  "/",
		Version: "HTTP/1.1",
		Headers: headers,
	})

	// 101 响应写出且状态机已脱离
	require.Eventually(t, func() bool {
		return len(sink.Messages()) == 1
	}, time.Second, time.Millisecond)

	resp, ok := sink.Messages()[0].(*types.SwitchingProtocolsResponse)
	require.True(t, ok)
	assert.True(t, resp.Headers.ContainsToken("Connection", "upgrade"))

	require.Eventually(t, func() bool {
		names := pipe.Names()
		for _, n := range names {
			if n == upgradeHandlerName {
				return false
			}
		}
		return true
	}, time.Second, time.Millisecond)

	assert.Equal(t, 1, upgrader.installs)
}

// TestEngine_Listener 测试监听选项
func TestEngine_Listener(t *testing.T) {
	ctx := context.Background()

	engine, err := Start(ctx, WithListener(0))
	require.NoError(t, err)
	defer engine.Close()

	// 内核已分配端口
	assert.NotZero(t, engine.Port())
}

// TestEngine_Registry 测试候选注册表
func TestEngine_Registry(t *testing.T) {
	ctx := context.Background()

	engine, err := Start(ctx, WithUpgraders(
		&echoUpgrader{protocol: "echo"},
		&echoUpgrader{protocol: "websocket"},
	))
	require.NoError(t, err)
	defer engine.Close()

	assert.Equal(t, 2, engine.Registry().Len())
}

// TestEngine_InvalidOption 测试非法选项
func TestEngine_InvalidOption(t *testing.T) {
	_, err := New(WithListener(-1))
	assert.Error(t, err)

	_, err = New(WithPreset("nonexistent"))
	assert.Error(t, err)
}

// TestSentinelErrors 测试公共错误哨兵与内部错误值一致
func TestSentinelErrors(t *testing.T) {
	// 套接字重复关闭
	a, b, err := socket.Pair()
	require.NoError(t, err)
	defer b.Close()

	require.NoError(t, a.Close())
	assert.ErrorIs(t, a.Close(), ErrSocketClosed)

	// 已关闭流水线上的操作
	loop := eventloop.NewLoop(eventloop.NewConfig())
	defer loop.Close()

	pipe := pipeline.New(loop, &pipeline.RecordingSink{})
	require.NoError(t, pipe.Close())
	assert.ErrorIs(t, pipe.AddLast("late", struct{}{}), ErrPipelineClosed)
}
