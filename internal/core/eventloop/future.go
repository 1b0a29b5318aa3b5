// Package eventloop 实现单线程事件循环执行器
package eventloop

import (
	"sync"

	pkgif "github.com/wirepulse/go-wirepulse/pkg/interfaces"
)

// 确保实现了接口
var _ pkgif.Promise = (*Promise)(nil)

// Promise Future 实现
//
// 完成回调统一通过所属执行器调度，绝不在注册或完成现场内联，
// 因此回调之间保持注册顺序，且始终在执行器 goroutine 上运行。
type Promise struct {
	executor pkgif.Executor

	mu        sync.Mutex
	completed bool
	byClose   bool // 因循环关闭而失败
	err       error
	callbacks []func(error)

	done chan struct{}
}

// NewPromise 创建未完成的 Promise
//
// 执行器为 Loop 时，Promise 被登记到循环上；循环关闭时
// 尚未完成的 Promise 以 ErrLoopClosed 失败。
func NewPromise(executor pkgif.Executor) *Promise {
	p := &Promise{
		executor: executor,
		done:     make(chan struct{}),
	}
	if l, ok := executor.(*Loop); ok {
		l.track(p)
	}
	return p
}

// NewSucceededFuture 创建已成功完成的 Future
func NewSucceededFuture(executor pkgif.Executor) pkgif.Future {
	p := NewPromise(executor)
	p.Complete(nil)
	return p
}

// NewFailedFuture 创建已失败完成的 Future
func NewFailedFuture(executor pkgif.Executor, err error) pkgif.Future {
	p := NewPromise(executor)
	p.Complete(err)
	return p
}

// Complete 完成操作
//
// 重复完成 panic（编程错误）。已注册的回调按注册顺序
// 调度到执行器上。若 Promise 已因循环关闭失败，迟到的
// 完成被静默丢弃而非 panic：生产方无从感知关闭竞争。
func (p *Promise) Complete(err error) {
	p.mu.Lock()
	if p.completed {
		byClose := p.byClose
		p.mu.Unlock()
		if byClose {
			return
		}
		panic(ErrCompletedTwice)
	}
	p.completed = true
	p.err = err
	callbacks := p.callbacks
	p.callbacks = nil
	close(p.done)
	p.mu.Unlock()

	if l, ok := p.executor.(*Loop); ok {
		l.untrack(p)
	}

	for _, cb := range callbacks {
		cb := cb
		p.executor.Submit(func() { cb(err) })
	}
}

// failOnClose 以 ErrLoopClosed 失败（循环关闭路径专用）
func (p *Promise) failOnClose() {
	p.mu.Lock()
	if p.completed {
		p.mu.Unlock()
		return
	}
	p.completed = true
	p.byClose = true
	p.err = ErrLoopClosed
	callbacks := p.callbacks
	p.callbacks = nil
	close(p.done)
	p.mu.Unlock()

	for _, cb := range callbacks {
		cb := cb
		p.executor.Submit(func() { cb(ErrLoopClosed) })
	}
}

// OnComplete 注册完成回调
//
// 若已完成，回调仍被调度到执行器上（不内联）。
func (p *Promise) OnComplete(fn func(err error)) {
	p.mu.Lock()
	if !p.completed {
		p.callbacks = append(p.callbacks, fn)
		p.mu.Unlock()
		return
	}
	err := p.err
	p.mu.Unlock()

	p.executor.Submit(func() { fn(err) })
}

// Done 返回完成通知通道
func (p *Promise) Done() <-chan struct{} {
	return p.done
}

// Err 返回操作结果（仅在 Done 关闭后有效）
func (p *Promise) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}
