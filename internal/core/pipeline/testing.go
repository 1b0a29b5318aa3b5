// Package pipeline 实现连接流水线
package pipeline

import (
	"sync"
)

// RecordingSink 测试用出站终点，记录写出的消息
type RecordingSink struct {
	mu       sync.Mutex
	messages []any

	// FailWith 非 nil 时所有写出失败
	FailWith error
}

// WriteAndFlush 记录消息
func (s *RecordingSink) WriteAndFlush(msg any) error {
	if s.FailWith != nil {
		return s.FailWith
	}
	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.mu.Unlock()
	return nil
}

// Messages 返回已写出的消息
func (s *RecordingSink) Messages() []any {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]any, len(s.messages))
	copy(out, s.messages)
	return out
}
