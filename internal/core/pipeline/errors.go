// Package pipeline 实现连接流水线
package pipeline

import (
	"errors"

	"github.com/wirepulse/go-wirepulse/pkg/types"
)

var (
	// ErrClosed 流水线已关闭
	//
	// 与公共哨兵 types.ErrPipelineClosed 是同一错误值，
	// errors.Is 在门面层可直接匹配。
	ErrClosed = types.ErrPipelineClosed

	// ErrNoSink 未配置出站终点
	ErrNoSink = errors.New("pipeline: no sink configured")

	// ErrDuplicateName 处理器名重复
	ErrDuplicateName = errors.New("pipeline: duplicate handler name")

	// ErrNilHandler 处理器为空
	ErrNilHandler = errors.New("pipeline: nil handler")
)
