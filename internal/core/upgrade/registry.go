// Package upgrade 实现 HTTP 协议升级状态机
package upgrade

import (
	pkgif "github.com/wirepulse/go-wirepulse/pkg/interfaces"
)

// Registry 协议升级器注册表
//
// 按升级器的 SupportedProtocol token 建立只读映射，构建一次后
// 由所有连接并发共享。token 重复时后注册者胜出（设计选择，
// 不强制唯一）。查询对存储的 token 区分大小写：状态机在查询前
// 将请求头中的 token 归一化为小写。
type Registry struct {
	upgraders map[string]pkgif.ProtocolUpgrader
}

// NewRegistry 从升级器列表构建注册表
func NewRegistry(upgraders ...pkgif.ProtocolUpgrader) *Registry {
	m := make(map[string]pkgif.ProtocolUpgrader, len(upgraders))
	for _, u := range upgraders {
		if u == nil {
			continue
		}
		m[u.SupportedProtocol()] = u
	}
	return &Registry{upgraders: m}
}

// Lookup 查询协议 token 对应的升级器
func (r *Registry) Lookup(token string) (pkgif.ProtocolUpgrader, bool) {
	u, ok := r.upgraders[token]
	return u, ok
}

// Len 返回注册的升级器数量
func (r *Registry) Len() int {
	return len(r.upgraders)
}

// Protocols 返回注册的协议 token 列表（无序）
func (r *Registry) Protocols() []string {
	out := make([]string, 0, len(r.upgraders))
	for token := range r.upgraders {
		out = append(out, token)
	}
	return out
}
