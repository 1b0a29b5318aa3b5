// Package types 定义 WirePulse 的公共数据结构
//
// 本文件定义 HTTP 头部列表类型。
package types

import "strings"

// ============================================================================
//                              Headers - 头部列表
// ============================================================================

// headerEntry 单个头部项
type headerEntry struct {
	name  string
	value string
}

// Headers HTTP 头部列表
//
// 保持插入顺序的多值头部容器。名称比较不区分大小写，
// 存储时保留原始大小写。
//
// 所有只读方法对 nil 接收者安全，等同于空列表；
// 写方法（Add、Set）要求非 nil 接收者。
//
// CanonicalTokens 提供规范化的逗号分隔多值查询：
// 将同名头部的所有值按逗号拆分、去除首尾空白、丢弃空项，
// 用于 Upgrade 和 Connection 头部的 token 列表解析。
type Headers struct {
	entries []headerEntry
}

// NewHeaders 创建空头部列表
func NewHeaders() *Headers {
	return &Headers{}
}

// Add 追加一个头部项（保留已有同名项）
func (h *Headers) Add(name, value string) *Headers {
	h.entries = append(h.entries, headerEntry{name: name, value: value})
	return h
}

// Set 设置头部值（移除所有同名项后追加）
func (h *Headers) Set(name, value string) *Headers {
	kept := h.entries[:0]
	for _, e := range h.entries {
		if !strings.EqualFold(e.name, name) {
			kept = append(kept, e)
		}
	}
	h.entries = append(kept, headerEntry{name: name, value: value})
	return h
}

// Get 返回第一个同名头部的值
func (h *Headers) Get(name string) (string, bool) {
	if h == nil {
		return "", false
	}
	for _, e := range h.entries {
		if strings.EqualFold(e.name, name) {
			return e.value, true
		}
	}
	return "", false
}

// Values 返回所有同名头部的值（按插入顺序）
func (h *Headers) Values(name string) []string {
	if h == nil {
		return nil
	}
	var values []string
	for _, e := range h.entries {
		if strings.EqualFold(e.name, name) {
			values = append(values, e.value)
		}
	}
	return values
}

// CanonicalTokens 返回规范化的 token 列表
//
// 将所有同名头部的值按逗号拆分、去除空白、丢弃空项，
// 保持出现顺序。token 大小写保留原样，由调用方决定是否归一化。
func (h *Headers) CanonicalTokens(name string) []string {
	if h == nil {
		return nil
	}
	var tokens []string
	for _, e := range h.entries {
		if !strings.EqualFold(e.name, name) {
			continue
		}
		for _, tok := range strings.Split(e.value, ",") {
			tok = strings.TrimSpace(tok)
			if tok != "" {
				tokens = append(tokens, tok)
			}
		}
	}
	return tokens
}

// ContainsToken 判断指定头部是否包含 token（不区分大小写）
func (h *Headers) ContainsToken(name, token string) bool {
	for _, tok := range h.CanonicalTokens(name) {
		if strings.EqualFold(tok, token) {
			return true
		}
	}
	return false
}

// Names 返回所有头部名称的集合（小写）
func (h *Headers) Names() map[string]struct{} {
	if h == nil {
		return map[string]struct{}{}
	}
	names := make(map[string]struct{}, len(h.entries))
	for _, e := range h.entries {
		names[strings.ToLower(e.name)] = struct{}{}
	}
	return names
}

// Contains 判断是否存在指定名称的头部
func (h *Headers) Contains(name string) bool {
	_, ok := h.Get(name)
	return ok
}

// Len 返回头部项数量
func (h *Headers) Len() int {
	if h == nil {
		return 0
	}
	return len(h.entries)
}

// Range 按插入顺序遍历所有头部项
//
// fn 返回 false 时停止遍历。
func (h *Headers) Range(fn func(name, value string) bool) {
	if h == nil {
		return
	}
	for _, e := range h.entries {
		if !fn(e.name, e.value) {
			return
		}
	}
}

// Clone 返回头部列表的深拷贝
func (h *Headers) Clone() *Headers {
	if h == nil {
		return NewHeaders()
	}
	c := &Headers{entries: make([]headerEntry, len(h.entries))}
	copy(c.entries, h.entries)
	return c
}
