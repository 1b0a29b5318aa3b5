package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUpgradeCompleteEvent 测试升级完成事件
func TestUpgradeCompleteEvent(t *testing.T) {
	head := &RequestHead{
		Method:  "GET",
		Target:  "/chat",
		Version: "HTTP/1.1",
		Headers: NewHeaders().Add("Upgrade", "websocket"),
	}

	evt := NewUpgradeCompleteEvent("websocket", head)

	assert.Equal(t, "upgrade.complete", evt.Type())
	assert.Equal(t, "websocket", evt.Protocol)
	assert.Same(t, head, evt.Request)
	assert.False(t, evt.Timestamp().IsZero())
}

// TestReadCompleteEvent 测试读取完成通知
func TestReadCompleteEvent(t *testing.T) {
	evt := NewReadCompleteEvent()
	assert.Equal(t, "read.complete", evt.Type())
}

// TestHTTPEventMarkers 测试 HTTP 事件标记接口
func TestHTTPEventMarkers(t *testing.T) {
	var events = []HTTPEvent{
		&RequestHead{},
		&BodyChunk{},
		&LastChunk{},
	}
	require.Len(t, events, 3)
}

// TestSwitchingProtocolsResponse 测试 101 响应状态行
func TestSwitchingProtocolsResponse(t *testing.T) {
	resp := &SwitchingProtocolsResponse{Headers: NewHeaders()}
	assert.Equal(t, "HTTP/1.1 101 Switching Protocols", resp.StatusLine())
}
