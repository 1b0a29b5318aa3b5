package upgrade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegistry_Lookup 测试注册与查询
func TestRegistry_Lookup(t *testing.T) {
	ws := &fakeUpgrader{protocol: "websocket"}
	h2c := &fakeUpgrader{protocol: "h2c"}

	r := NewRegistry(ws, h2c)
	require.Equal(t, 2, r.Len())

	got, ok := r.Lookup("websocket")
	require.True(t, ok)
	assert.Same(t, ws, got)

	// 查询对存储的 token 区分大小写
	_, ok = r.Lookup("WebSocket")
	assert.False(t, ok)

	_, ok = r.Lookup("spdy")
	assert.False(t, ok)
}

// TestRegistry_LastWins 测试重复 token 后注册者胜出
func TestRegistry_LastWins(t *testing.T) {
	first := &fakeUpgrader{protocol: "websocket"}
	second := &fakeUpgrader{protocol: "websocket"}

	r := NewRegistry(first, second)
	require.Equal(t, 1, r.Len())

	got, ok := r.Lookup("websocket")
	require.True(t, ok)
	assert.Same(t, second, got)
}

// TestRegistry_NilUpgraderSkipped 测试 nil 升级器被跳过
func TestRegistry_NilUpgraderSkipped(t *testing.T) {
	r := NewRegistry(nil, &fakeUpgrader{protocol: "h2c"})
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, []string{"h2c"}, r.Protocols())
}
