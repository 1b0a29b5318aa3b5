package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHeaders_AddGet 测试添加与查询
func TestHeaders_AddGet(t *testing.T) {
	h := NewHeaders()
	h.Add("Upgrade", "websocket")
	h.Add("Connection", "upgrade")

	v, ok := h.Get("upgrade")
	require.True(t, ok)
	assert.Equal(t, "websocket", v)

	// 名称不区分大小写
	v, ok = h.Get("UPGRADE")
	require.True(t, ok)
	assert.Equal(t, "websocket", v)

	_, ok = h.Get("Host")
	assert.False(t, ok)
}

// TestHeaders_Set 测试 Set 移除同名项
func TestHeaders_Set(t *testing.T) {
	h := NewHeaders()
	h.Add("X-Test", "a")
	h.Add("x-test", "b")
	h.Set("X-Test", "c")

	assert.Equal(t, []string{"c"}, h.Values("X-Test"))
	assert.Equal(t, 1, h.Len())
}

// TestHeaders_CanonicalTokens 测试规范化 token 列表
func TestHeaders_CanonicalTokens(t *testing.T) {
	h := NewHeaders()
	h.Add("Upgrade", "websocket/13, irc/6.9 ")
	h.Add("Upgrade", " h2c ,, ")

	tokens := h.CanonicalTokens("upgrade")
	assert.Equal(t, []string{"websocket/13", "irc/6.9", "h2c"}, tokens)
}

// TestHeaders_CanonicalTokens_Missing 测试缺失头部
func TestHeaders_CanonicalTokens_Missing(t *testing.T) {
	h := NewHeaders()
	assert.Empty(t, h.CanonicalTokens("Upgrade"))
}

// TestHeaders_ContainsToken 测试 token 查询不区分大小写
func TestHeaders_ContainsToken(t *testing.T) {
	h := NewHeaders()
	h.Add("Connection", "Upgrade, Keep-Alive")

	assert.True(t, h.ContainsToken("connection", "upgrade"))
	assert.True(t, h.ContainsToken("Connection", "keep-alive"))
	assert.False(t, h.ContainsToken("Connection", "close"))
}

// TestHeaders_Names 测试名称集合
func TestHeaders_Names(t *testing.T) {
	h := NewHeaders()
	h.Add("Sec-WebSocket-Key", "abc")
	h.Add("Connection", "upgrade")

	names := h.Names()
	assert.Contains(t, names, "sec-websocket-key")
	assert.Contains(t, names, "connection")
	assert.Len(t, names, 2)
}

// TestHeaders_Clone 测试深拷贝
func TestHeaders_Clone(t *testing.T) {
	h := NewHeaders()
	h.Add("A", "1")

	c := h.Clone()
	c.Add("B", "2")

	assert.Equal(t, 1, h.Len())
	assert.Equal(t, 2, c.Len())
}

// TestHeaders_Range 测试按插入顺序遍历
func TestHeaders_Range(t *testing.T) {
	h := NewHeaders()
	h.Add("A", "1")
	h.Add("B", "2")
	h.Add("C", "3")

	var got []string
	h.Range(func(name, value string) bool {
		got = append(got, name+"="+value)
		return name != "B"
	})
	assert.Equal(t, []string{"A=1", "B=2"}, got)
}

// TestHeaders_NilReceiver 测试 nil 接收者的只读方法安全
func TestHeaders_NilReceiver(t *testing.T) {
	var h *Headers

	_, ok := h.Get("Upgrade")
	assert.False(t, ok)
	assert.Nil(t, h.Values("Upgrade"))
	assert.Nil(t, h.CanonicalTokens("Upgrade"))
	assert.False(t, h.ContainsToken("Connection", "upgrade"))
	assert.Empty(t, h.Names())
	assert.False(t, h.Contains("Host"))
	assert.Zero(t, h.Len())
	h.Range(func(string, string) bool {
		t.Fatal("空列表不应有遍历项")
		return false
	})

	c := h.Clone()
	require.NotNil(t, c)
	assert.Zero(t, c.Len())
}
