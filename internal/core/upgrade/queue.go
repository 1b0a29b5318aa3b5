// Package upgrade 实现 HTTP 协议升级状态机
package upgrade

// eventQueue 协商期间的入站事件缓冲
//
// 仅在 upgrading 为真时入队；按到达顺序恰好排空一次。
type eventQueue struct {
	events []any
}

// Push 追加一个事件
func (q *eventQueue) Push(ev any) {
	q.events = append(q.events, ev)
}

// Len 返回缓冲长度
func (q *eventQueue) Len() int {
	return len(q.events)
}

// Drain 取出全部事件并清空缓冲
func (q *eventQueue) Drain() []any {
	events := q.events
	q.events = nil
	return events
}

// Clear 丢弃全部事件
func (q *eventQueue) Clear() {
	q.events = nil
}
