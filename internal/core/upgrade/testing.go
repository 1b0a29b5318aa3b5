// Package upgrade 实现 HTTP 协议升级状态机
package upgrade

import (
	"github.com/wirepulse/go-wirepulse/internal/core/eventloop"
	pkgif "github.com/wirepulse/go-wirepulse/pkg/interfaces"
	"github.com/wirepulse/go-wirepulse/pkg/types"
)

// fakeUpgrader 测试用升级器
type fakeUpgrader struct {
	protocol string
	required []string

	// buildErr 非 nil 时 BuildResponseHeaders 失败
	buildErr error

	// buildExtra 构建时追加的响应头
	buildExtra map[string]string

	// installErr 非 nil 时装配钩子失败
	installErr error

	// installManually 为真时装配钩子挂起，由 installPromise 手动完成
	installManually bool
	installPromise  *eventloop.Promise

	buildCalls   int
	installCalls int
	installReq   *types.RequestHead
}

func (u *fakeUpgrader) SupportedProtocol() string {
	return u.protocol
}

func (u *fakeUpgrader) RequiredHeaders() []string {
	return u.required
}

func (u *fakeUpgrader) BuildResponseHeaders(req *types.RequestHead, headers *types.Headers) error {
	u.buildCalls++
	if u.buildErr != nil {
		return u.buildErr
	}
	for k, v := range u.buildExtra {
		headers.Add(k, v)
	}
	return nil
}

func (u *fakeUpgrader) InstallUpgrade(ctx pkgif.HandlerContext, req *types.RequestHead) pkgif.Future {
	u.installCalls++
	u.installReq = req
	if u.installManually {
		u.installPromise = eventloop.NewPromise(ctx.Executor())
		return u.installPromise
	}
	if u.installErr != nil {
		return eventloop.NewFailedFuture(ctx.Executor(), u.installErr)
	}
	return eventloop.NewSucceededFuture(ctx.Executor())
}

// fakeCodec 测试用源编解码器
type fakeCodec struct {
	httpHandlers []string
	encoder      string

	upgradeFromCalls int
}

func (c *fakeCodec) HTTPHandlerNames() []string {
	return c.httpHandlers
}

func (c *fakeCodec) EncoderName() string {
	return c.encoder
}

func (c *fakeCodec) UpgradeFrom(ctx pkgif.HandlerContext) {
	c.upgradeFromCalls++
}

// downstreamRecorder 测试用下游处理器，记录收到的一切
type downstreamRecorder struct {
	events  []any
	errors  []error
	userEvs []any
}

func (d *downstreamRecorder) OnInboundEvent(ctx pkgif.HandlerContext, ev any) {
	d.events = append(d.events, ev)
}

func (d *downstreamRecorder) OnErrorCaught(ctx pkgif.HandlerContext, err error) {
	d.errors = append(d.errors, err)
}

func (d *downstreamRecorder) OnUserEvent(ctx pkgif.HandlerContext, ev any) {
	d.userEvs = append(d.userEvs, ev)
}

// upgradeRequest 构造带 Upgrade 头的测试请求
func upgradeRequest(upgrade string, extra map[string]string) *types.RequestHead {
	h := types.NewHeaders()
	h.Add("Host", "example.com")
	if upgrade != "" {
		h.Add("Upgrade", upgrade)
	}
	for k, v := range extra {
		h.Add(k, v)
	}
	return &types.RequestHead{
		Method:  "GET",
		Target:  "/chat",
		Version: "HTTP/1.1",
		Headers: h,
	}
}
